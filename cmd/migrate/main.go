// Command migrate applies or rolls back the SQL migrations in migrations/.
//
// Usage:
//
//	migrate [-dir migrations] up|down|status
//
// Exit codes: 0 = success, 1 = error, 2 = usage.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/heartmarshall/questclock-backend/internal/app"
	"github.com/heartmarshall/questclock-backend/internal/config"
)

func main() {
	dir := flag.String("dir", "migrations", "directory with goose SQL migrations")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: migrate [-dir migrations] up|down|status")
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	db, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		logger.Error("open database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, os.DirFS(*dir))
	if err != nil {
		logger.Error("init migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := run(ctx, logger, provider, flag.Arg(0)); err != nil {
		logger.Error("migrate failed", slog.String("command", flag.Arg(0)), slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(ctx context.Context, logger *slog.Logger, p *goose.Provider, command string) error {
	switch command {
	case "up":
		results, err := p.Up(ctx)
		for _, r := range results {
			logger.Info("applied", slog.Int64("version", r.Source.Version), slog.Duration("took", r.Duration))
		}
		return err
	case "down":
		r, err := p.Down(ctx)
		if r != nil {
			logger.Info("rolled back", slog.Int64("version", r.Source.Version))
		}
		return err
	case "status":
		statuses, err := p.Status(ctx)
		if err != nil {
			return err
		}
		for _, s := range statuses {
			logger.Info("migration",
				slog.Int64("version", s.Source.Version),
				slog.String("state", string(s.State)),
			)
		}
		return nil
	default:
		return fmt.Errorf("unknown command %q", command)
	}
}
