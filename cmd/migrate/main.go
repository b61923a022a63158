// Command migrate applies the embedded schema migrations.
//
// Usage: migrate <up|down|status|version|redo> [args...]
package main

import (
	"context"
	"log/slog"
	"os"

	"campus/config"
	"campus/internal/errors"
	"campus/internal/infra/persistence/migrations"

	pgLib "github.com/slighter12/go-lib/database/postgres"
)

func main() {
	command := migrations.CommandUp
	var args []string
	if len(os.Args) > 1 {
		command, args = os.Args[1], os.Args[2:]
	}

	if err := run(context.Background(), command, args...); err != nil {
		slog.Error("Migration failed", slog.String("command", command), slog.Any("error", err))
		os.Exit(1)
	}
}

func run(ctx context.Context, command string, args ...string) error {
	cfg, err := config.New()
	if err != nil {
		return err
	}
	if cfg.Postgres == nil {
		return errors.New("postgres configuration must be provided")
	}

	db, err := pgLib.New(cfg.Postgres)
	if err != nil {
		return errors.Wrap(err, "failed to create PostgreSQL client")
	}

	sqlDB, err := db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}
	defer sqlDB.Close()

	return migrations.Run(ctx, sqlDB, command, args...)
}
