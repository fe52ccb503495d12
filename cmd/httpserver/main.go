package main

import (
	"castingagency/actor"
	"castingagency/auth"
	"castingagency/httpserver"
	"castingagency/movie"
	"castingagency/pkg/config"
	"castingagency/pkg/jwt"
	"castingagency/pkg/logger"
	"castingagency/pkg/sentry"
	"castingagency/postgres"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	sentrygo "github.com/getsentry/sentry-go"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot load config:", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.AppEnv, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot build logger:", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	if err := run(cfg, log); err != nil {
		log.Errorw("server stopped with error", zap.Error(err))
		sentrygo.Flush(sentry.FlushTime)
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *zap.SugaredLogger) error {
	err := sentrygo.Init(sentrygo.ClientOptions{
		Dsn:              cfg.SentryDSN,
		Environment:      cfg.AppEnv,
		AttachStacktrace: true,
	})
	if err != nil {
		return fmt.Errorf("init sentry: %w", err)
	}
	defer sentrygo.Flush(sentry.FlushTime)

	db, err := postgres.NewConnection(postgres.Options{
		URL:          cfg.DB.URL,
		MaxOpenConns: cfg.DB.MaxOpenConns,
		MaxIdleConns: cfg.DB.MaxIdleConns,
		MaxLifetime:  30 * time.Minute,
	})
	if err != nil {
		return fmt.Errorf("open postgres connection: %w", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("get sql.DB: %w", err)
	}
	defer sqlDB.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	verifier, err := jwt.NewVerifier(ctx, jwt.Options{
		Domain:    cfg.Auth.Domain,
		Audience:  cfg.Auth.Audience,
		Algorithm: cfg.Auth.Algorithm,
	})
	if err != nil {
		return fmt.Errorf("build token verifier: %w", err)
	}

	tx := postgres.NewTxManager(db, log)
	actors := postgres.NewActorRepository(db)

	server, err := httpserver.New(
		httpserver.WithConfig(cfg),
		httpserver.WithLogger(log),
		httpserver.WithDatabase(sqlDB),
		httpserver.WithAuthService(auth.NewUsecase(verifier)),
		httpserver.WithActorService(actor.NewUsecase(actors, tx)),
		httpserver.WithMovieService(movie.NewUsecase(postgres.NewMovieRepository(db), actors, tx)),
	)
	if err != nil {
		return fmt.Errorf("build http server: %w", err)
	}
	server.Addr = fmt.Sprintf(":%d", cfg.Port)

	if err := server.Metrics.RegisterDB(sqlDB, "castingagency"); err != nil {
		return fmt.Errorf("register db metrics: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		log.Infow("server started", "addr", server.Addr)
		errCh <- server.Start()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}
