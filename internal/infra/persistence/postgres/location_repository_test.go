package postgres

import (
	"context"
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

func TestLocationRepository_FindAll(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLocationRepository(db)

	first, second := uuid.New(), uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "locations" ORDER BY name ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}).
			AddRow(first.String(), "Aula", time.Now()).
			AddRow(second.String(), "Library", time.Now()))

	locations, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	require.Len(t, locations, 2)
	assert.Equal(t, first, locations[0].ID)
	assert.Equal(t, "Library", locations[1].Name)
}

func TestLocationRepository_FindAll_Empty(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLocationRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "locations"`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}))

	locations, err := repo.FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, locations)
	assert.Empty(t, locations)
}

func TestLocationRepository_FindByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLocationRepository(db)

	mock.ExpectQuery(`SELECT \* FROM "locations" WHERE id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "created_at"}))

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, repository.ErrLocationNotFound)
}

func TestLocationRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLocationRepository(db)

	location := &entity.Location{ID: uuid.New(), Name: "Library"}
	mock.ExpectExec(`INSERT INTO "locations" \("id","name","created_at"\)`).
		WithArgs(location.ID.String(), "Library", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), location))
	assert.False(t, location.CreatedAt.IsZero())
}

func TestLocationRepository_Create_DuplicateName(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewLocationRepository(db)

	mock.ExpectExec(`INSERT INTO "locations"`).
		WillReturnError(&pgconn.PgError{Code: pgCodeUniqueViolation, ConstraintName: constraintLocationsNameKey})

	err := repo.Create(context.Background(), &entity.Location{ID: uuid.New(), Name: "Library"})
	assert.ErrorIs(t, err, domainerrors.ErrLocationNameExists)
}
