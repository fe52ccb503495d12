package main

import (
	"castingagency/actor"
	"castingagency/movie"
	"castingagency/pkg/config"
	"castingagency/pkg/logger"
	"castingagency/postgres"
	"context"
	"flag"
	"fmt"
	"os"

	migrate "github.com/rubenv/sql-migrate"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	var (
		reset     bool
		dir       string
		moviesCSV string
	)
	flag.BoolVar(&reset, "reset", false, "Drop and recreate the schema before seeding")
	flag.StringVar(&dir, "dir", "migrations", "Directory holding the migration files")
	flag.StringVar(&moviesCSV, "movies", "", "Import movies from a CSV file instead of the sample data")
	flag.Parse()

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

	db, err := postgres.NewConnection(postgres.Options{URL: cfg.DB.URL})
	if err != nil {
		log.Fatalw("cannot open postgres connection", zap.Error(err))
	}

	if reset {
		if err := resetSchema(db, dir); err != nil {
			log.Fatalw("reset failed", zap.Error(err))
		}
		log.Info("schema recreated")
	}

	tx := postgres.NewTxManager(db, log)
	actorRepo := postgres.NewActorRepository(db)
	s := seeder{
		actors: actor.NewUsecase(actorRepo, tx),
		movies: movie.NewUsecase(postgres.NewMovieRepository(db), actorRepo, tx),
	}

	ctx := context.Background()
	if moviesCSV == "" {
		if err := s.sample(ctx); err != nil {
			log.Fatalw("seed failed", zap.Error(err))
		}
		log.Info("sample data inserted")
		return
	}

	count, err := s.importMovies(ctx, moviesCSV)
	if err != nil {
		log.Fatalw("import failed", "rows", count, zap.Error(err))
	}
	log.Infow("import completed", "rows", count)
}

func resetSchema(db *gorm.DB, dir string) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}

	migrations := &migrate.FileMigrationSource{Dir: dir}
	if _, err := migrate.Exec(sqlDB, "postgres", migrations, migrate.Down); err != nil {
		return fmt.Errorf("migrate down: %w", err)
	}
	if _, err := migrate.Exec(sqlDB, "postgres", migrations, migrate.Up); err != nil {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}
