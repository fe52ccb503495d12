package httpserver

import (
	"castingagency/actor"
	"castingagency/auth"
	"castingagency/errs"
	"castingagency/movie"
	"castingagency/pkg/config"
	"castingagency/pkg/logger"
	"castingagency/pkg/sentry"
	"context"
	"errors"
	"net/http"

	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

type Server struct {
	// Router is the Echo router instance
	Router *echo.Echo

	// Addr represents the address the server will listen on
	Addr string

	Config  *config.Config
	Logger  *zap.SugaredLogger
	Metrics *Metrics

	ActorService actor.Service
	MovieService movie.Service
	AuthService  auth.Service
	DB           Pinger
}

func New(options ...Options) (*Server, error) {
	s := Server{
		Router:  echo.New(),
		Addr:    ":8080",
		Config:  config.Empty,
		Logger:  logger.NOOPLogger,
		Metrics: NewMetrics(),
	}

	for _, fn := range options {
		if err := fn(&s); err != nil {
			return nil, err
		}
	}

	s.Router.HideBanner = true
	s.Router.HidePort = true
	s.Router.Validator = NewValidator()
	s.Router.HTTPErrorHandler = s.httpErrorHandler

	s.RegisterGlobalMiddlewares()
	s.RegisterHealthRoutes()
	s.RegisterMetricsRoutes()
	s.RegisterActorRoutes()
	s.RegisterMovieRoutes()

	return &s, nil
}

func (s *Server) RegisterGlobalMiddlewares() {
	s.Router.Use(middleware.Recover())
	s.Router.Use(middleware.Secure())
	s.Router.Use(middleware.RequestID())
	s.Router.Use(middleware.Gzip())
	s.Router.Use(sentryecho.New(sentryecho.Options{Repanic: true}))

	// CORS
	if origins := s.Config.Origins(); len(origins) > 0 {
		s.Router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: origins,
			AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
			AllowMethods: []string{
				http.MethodGet, http.MethodPost, http.MethodPatch,
				http.MethodDelete, http.MethodOptions,
			},
		}))
	}

	s.Router.Use(s.Metrics.Middleware())
	s.Router.Use(s.requestLogger())
}

func (s *Server) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogRequestID: true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.Logger.Infow("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
				zap.String("request_id", v.RequestID),
			)
			return nil
		},
	})
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) Start() error {
	return s.Router.Start(s.Addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.Router.Shutdown(ctx)
}

// httpErrorHandler writes every failure in the error envelope. Echo's own
// errors keep their status; application errors map through errs.HTTPStatus.
func (s *Server) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status, message := resolveError(err)

	if status >= http.StatusInternalServerError {
		s.Logger.Errorw(err.Error(),
			zap.String("request_id", s.requestID(c)),
			zap.String("route", c.Path()),
		)
		sentry.WithContext(c).
			WithTags(map[string]string{"route": c.Path()}).
			WithExtras(map[string]interface{}{
				"method": c.Request().Method,
				"uri":    c.Request().RequestURI,
				"status": status,
			}).
			Error(err)
	} else {
		s.Logger.Debugw(err.Error(), zap.String("request_id", s.requestID(c)))
	}

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(status)
	} else {
		err = writeError(c, status, message)
	}
	if err != nil {
		s.Logger.Errorw("cannot write error response", zap.Error(err))
	}
}

func resolveError(err error) (int, string) {
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, statusMessage(he.Code)
	}

	var appErr *errs.Error
	if errors.As(err, &appErr) {
		status := errs.HTTPStatus(err)
		if status == http.StatusInternalServerError && appErr.Message == "" {
			return status, statusMessage(status)
		}
		return status, appErr.Message
	}

	return http.StatusInternalServerError, statusMessage(http.StatusInternalServerError)
}

func statusMessage(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "Bad Request"
	case http.StatusUnauthorized:
		return "Unauthorized"
	case http.StatusNotFound:
		return "Resource not found"
	case http.StatusMethodNotAllowed:
		return "Method Not Allowed"
	case http.StatusUnprocessableEntity:
		return "Unprocessable"
	case http.StatusInternalServerError:
		return "Internal Server Error"
	}
	return http.StatusText(status)
}

func (s *Server) requestID(c echo.Context) string {
	return c.Response().Header().Get(echo.HeaderXRequestID)
}
