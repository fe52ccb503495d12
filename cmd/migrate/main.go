package main

import (
	"castingagency/pkg/config"
	"castingagency/pkg/logger"
	"database/sql"
	"flag"
	"fmt"
	"os"

	_ "github.com/lib/pq"
	migrate "github.com/rubenv/sql-migrate"
	"go.uber.org/zap"
)

func main() {
	var (
		dir   string
		down  bool
		limit int
	)
	flag.StringVar(&dir, "dir", "migrations", "Directory holding the migration files")
	flag.BoolVar(&down, "down", false, "Roll migrations back instead of applying them")
	flag.IntVar(&limit, "limit", 0, "Maximum number of migrations to run (0 = all)")
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

	db, err := sql.Open("postgres", cfg.DB.URL)
	if err != nil {
		log.Fatalw("cannot open db", zap.Error(err))
	}
	defer db.Close()

	direction := migrate.Up
	if down {
		direction = migrate.Down
	}

	migrations := &migrate.FileMigrationSource{
		Dir: dir,
	}

	total, err := migrate.ExecMax(db, "postgres", migrations, direction, limit)
	if err != nil {
		log.Fatalw("cannot execute migration", zap.Error(err))
	}

	log.Infow("applied migrations", "total", total, "down", down)
}
