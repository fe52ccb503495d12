package httpserver

import (
	"castingagency/actor"
	"castingagency/auth"
	"castingagency/movie"
	"castingagency/pkg/config"
	"errors"

	"go.uber.org/zap"
)

type Options func(s *Server) error

func WithConfig(cfg *config.Config) Options {
	return func(s *Server) error {
		if cfg == nil {
			return errors.New("httpserver: nil config")
		}
		s.Config = cfg
		return nil
	}
}

func WithLogger(l *zap.SugaredLogger) Options {
	return func(s *Server) error {
		s.Logger = l
		return nil
	}
}

func WithActorService(svc actor.Service) Options {
	return func(s *Server) error {
		s.ActorService = svc
		return nil
	}
}

func WithMovieService(svc movie.Service) Options {
	return func(s *Server) error {
		s.MovieService = svc
		return nil
	}
}

func WithAuthService(svc auth.Service) Options {
	return func(s *Server) error {
		s.AuthService = svc
		return nil
	}
}

// WithDatabase enables the database probe on /healthcheck.
func WithDatabase(db Pinger) Options {
	return func(s *Server) error {
		s.DB = db
		return nil
	}
}
