// Package migrations embeds the SQL schema and applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"slices"

	"github.com/pkg/errors"
	"github.com/pressly/goose/v3"
)

//go:embed sql/*.sql
var files embed.FS

const dir = "sql"

// Commands supported by Run.
const (
	CommandUp      = "up"
	CommandDown    = "down"
	CommandStatus  = "status"
	CommandVersion = "version"
	CommandRedo    = "redo"
)

var commands = []string{CommandUp, CommandDown, CommandStatus, CommandVersion, CommandRedo}

// gooseRun is replaced in tests.
var gooseRun = func(ctx context.Context, command string, db *sql.DB, dir string, args ...string) error {
	return goose.RunContext(ctx, command, db, dir, args...)
}

// Run applies a goose command to db using the embedded migrations.
func Run(ctx context.Context, db *sql.DB, command string, args ...string) error {
	if !slices.Contains(commands, command) {
		return errors.Errorf("unsupported migration command %q", command)
	}

	goose.SetBaseFS(files)
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "failed to set goose dialect")
	}

	if err := gooseRun(ctx, command, db, dir, args...); err != nil {
		return errors.Wrapf(err, "migration %s failed", command)
	}

	return nil
}

// Up applies every pending migration.
func Up(ctx context.Context, db *sql.DB) error {
	return Run(ctx, db, CommandUp)
}
