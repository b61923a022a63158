package migrations

import (
	"context"
	"database/sql"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubGooseRun(t *testing.T, fn func(ctx context.Context, command string, db *sql.DB, dir string, args ...string) error) {
	t.Helper()

	orig := gooseRun
	gooseRun = fn
	t.Cleanup(func() { gooseRun = orig })
}

func TestRun_Up(t *testing.T) {
	var gotCommand, gotDir string
	stubGooseRun(t, func(_ context.Context, command string, _ *sql.DB, dir string, _ ...string) error {
		gotCommand, gotDir = command, dir

		return nil
	})

	require.NoError(t, Up(context.Background(), nil))
	assert.Equal(t, CommandUp, gotCommand)
	assert.Equal(t, "sql", gotDir)
}

func TestRun_PropagatesError(t *testing.T) {
	stubGooseRun(t, func(context.Context, string, *sql.DB, string, ...string) error {
		return assert.AnError
	})

	err := Run(context.Background(), nil, CommandDown)
	require.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "migration down failed")
}

func TestRun_RejectsUnknownCommand(t *testing.T) {
	stubGooseRun(t, func(context.Context, string, *sql.DB, string, ...string) error {
		t.Fatal("goose must not run")

		return nil
	})

	assert.Error(t, Run(context.Background(), nil, "reset"))
}

func TestEmbeddedMigrations_NameConstraints(t *testing.T) {
	var schema strings.Builder
	err := fs.WalkDir(files, dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		content, err := fs.ReadFile(files, path)
		if err != nil {
			return err
		}
		assert.Contains(t, string(content), "-- +goose Up", path)
		assert.Contains(t, string(content), "-- +goose Down", path)
		schema.Write(content)

		return nil
	})
	require.NoError(t, err)

	for _, name := range []string{
		"lecturers_email_key",
		"locations_name_key",
		"groups_name_key",
		"students_phone_number_key",
		"groups_location_id_fkey",
		"students_group_id_fkey",
		"location_messages_location_id_fkey",
		"group_messages_group_id_fkey",
	} {
		assert.Contains(t, schema.String(), name)
	}
}
