package postgres

import (
	"context"
	"testing"
	"time"

	"campus/internal/domain/entity"
	domainerrors "campus/internal/domain/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStudentRepository_FindByGroup(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStudentRepository(db)

	groupID := uuid.New()
	mock.ExpectQuery(`SELECT \* FROM "students" WHERE group_id = \$1 ORDER BY name ASC,id ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "group_id", "name", "phone_number", "created_at"}).
			AddRow(uuid.NewString(), groupID.String(), "Ana", "+386 40 111 222", time.Now()).
			AddRow(uuid.NewString(), groupID.String(), "Bor", "+386 40 333 444", time.Now()))

	students, err := repo.FindByGroup(context.Background(), groupID)
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Equal(t, "Ana", students[0].Name)
	assert.Equal(t, groupID, students[1].GroupID)
}

func TestStudentRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewStudentRepository(db)

	student := &entity.Student{ID: uuid.New(), GroupID: uuid.New(), Name: "Ana", PhoneNumber: "+386 40 111 222"}
	mock.ExpectExec(`INSERT INTO "students" \("id","group_id","name","phone_number","created_at"\)`).
		WithArgs(student.ID.String(), student.GroupID.String(), "Ana", "+386 40 111 222", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Create(context.Background(), student))
}

func TestStudentRepository_Create_ConstraintViolations(t *testing.T) {
	tests := []struct {
		name    string
		dbErr   error
		wantErr error
	}{
		{
			name:    "duplicate phone number",
			dbErr:   &pgconn.PgError{Code: pgCodeUniqueViolation, ConstraintName: constraintStudentsPhoneNumberKey},
			wantErr: domainerrors.ErrPhoneNumberInUse,
		},
		{
			name:    "missing group",
			dbErr:   &pgconn.PgError{Code: pgCodeForeignKeyViolation, ConstraintName: constraintStudentsGroupIDFkey},
			wantErr: domainerrors.ErrUnknownGroup,
		},
		{
			name:    "null column",
			dbErr:   &pgconn.PgError{Code: pgCodeNotNullViolation, ColumnName: "name"},
			wantErr: domainerrors.ErrValidationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			repo := NewStudentRepository(db)

			mock.ExpectExec(`INSERT INTO "students"`).WillReturnError(tt.dbErr)

			err := repo.Create(context.Background(), &entity.Student{ID: uuid.New(), GroupID: uuid.New(), Name: "Ana", PhoneNumber: "12345"})
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
