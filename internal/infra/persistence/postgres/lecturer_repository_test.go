package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"campus/internal/domain/entity"
	domainerrors "campus/internal/domain/errors"
	"campus/internal/domain/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var lecturerColumns = []string{"id", "email", "password_hash", "created_at"}

func TestLecturerRepository_FindByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLecturerRepository(db)

	id := uuid.New()
	createdAt := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT \* FROM "lecturers" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(lecturerColumns).AddRow(id.String(), "ada@example.com", "$2a$04$hash", createdAt))

	lecturer, err := repo.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.Equal(t, &entity.Lecturer{
		ID:           id,
		Email:        "ada@example.com",
		PasswordHash: "$2a$04$hash",
		CreatedAt:    createdAt,
	}, lecturer)
}

func TestLecturerRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLecturerRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "lecturers" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows(lecturerColumns))

	lecturer, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrLecturerNotFound)
	assert.Nil(t, lecturer)
}

func TestLecturerRepository_FindByEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLecturerRepository(db)

	id := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "lecturers" WHERE email = \$1`).
		WillReturnRows(sqlmock.NewRows(lecturerColumns).AddRow(id.String(), "ada@example.com", "hash", time.Now()))

	lecturer, err := repo.FindByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, id, lecturer.ID)
	assert.Equal(t, "hash", lecturer.PasswordHash)
}

func TestLecturerRepository_FindByEmail_DBError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLecturerRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "lecturers" WHERE email = \$1`).
		WillReturnError(errors.New("connection reset"))

	_, err := repo.FindByEmail(context.Background(), "ada@example.com")
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrLecturerNotFound)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestLecturerRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLecturerRepository(db)

	lecturer := &entity.Lecturer{ID: uuid.New(), Email: "ada@example.com", PasswordHash: "hash"}
	mock.ExpectExec(`INSERT INTO "lecturers" \("id","email","password_hash","created_at"\) VALUES \(\$1,\$2,\$3,\$4\)`).
		WithArgs(lecturer.ID.String(), "ada@example.com", "hash", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), lecturer))
	assert.False(t, lecturer.CreatedAt.IsZero())
}

func TestLecturerRepository_Create_DuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLecturerRepository(db)

	mock.ExpectExec(`INSERT INTO "lecturers"`).
		WillReturnError(&pgconn.PgError{Code: pgCodeUniqueViolation, ConstraintName: constraintLecturersEmailKey})

	err := repo.Create(context.Background(), &entity.Lecturer{ID: uuid.New(), Email: "ada@example.com", PasswordHash: "hash"})
	assert.ErrorIs(t, err, domainerrors.ErrEmailInUse)
}

func TestLecturerRepository_Create_DBError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLecturerRepository(db)

	mock.ExpectExec(`INSERT INTO "lecturers"`).
		WillReturnError(errors.New("disk full"))

	err := repo.Create(context.Background(), &entity.Lecturer{ID: uuid.New(), Email: "ada@example.com", PasswordHash: "hash"})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.HTTPCode())
}
