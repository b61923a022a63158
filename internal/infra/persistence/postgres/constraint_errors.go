package postgres

import (
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes for integrity constraint violations.
const (
	pgCodeNotNullViolation    = "23502"
	pgCodeForeignKeyViolation = "23503"
	pgCodeUniqueViolation     = "23505"
	pgCodeCheckViolation      = "23514"
)

// Constraint names created by the migrations.
const (
	constraintLecturersEmailKey              = "lecturers_email_key"
	constraintLocationsNameKey               = "locations_name_key"
	constraintGroupsNameKey                  = "groups_name_key"
	constraintStudentsPhoneNumberKey         = "students_phone_number_key"
	constraintGroupsLocationIDFkey           = "groups_location_id_fkey"
	constraintStudentsGroupIDFkey            = "students_group_id_fkey"
	constraintLocationMessagesLocationIDFkey = "location_messages_location_id_fkey"
	constraintGroupMessagesGroupIDFkey       = "group_messages_group_id_fkey"
)

// asPgError extracts the driver error, if any.
func asPgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}

	return nil, false
}

// violatesConstraint reports whether err is a violation of the given SQLSTATE code.
// When the driver error carries a constraint name it must equal constraint; an empty
// constraint matches any name. GORM's translated errors carry no name and match by kind.
func violatesConstraint(err error, code, constraint string) bool {
	if err == nil {
		return false
	}

	if pgErr, ok := asPgError(err); ok {
		if pgErr.Code != code {
			return false
		}

		return constraint == "" || pgErr.ConstraintName == "" || pgErr.ConstraintName == constraint
	}

	switch code {
	case pgCodeUniqueViolation:
		return errors.Is(err, gorm.ErrDuplicatedKey)
	case pgCodeForeignKeyViolation:
		return errors.Is(err, gorm.ErrForeignKeyViolated)
	case pgCodeCheckViolation:
		return errors.Is(err, gorm.ErrCheckConstraintViolated)
	default:
		return false
	}
}

func isUniqueConstraintViolation(err error, constraint string) bool {
	return violatesConstraint(err, pgCodeUniqueViolation, constraint)
}

func isForeignKeyConstraintViolation(err error, constraint string) bool {
	return violatesConstraint(err, pgCodeForeignKeyViolation, constraint)
}

func isNotNullConstraintViolation(err error) bool {
	return violatesConstraint(err, pgCodeNotNullViolation, "")
}
