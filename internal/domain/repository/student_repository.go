package repository

import (
	"context"

	"campus/internal/domain/entity"

	"github.com/google/uuid"
)

// StudentRepository defines persistence operations for enrolled students.
type StudentRepository interface {
	// FindByGroup returns the students of a group ordered by name, ascending.
	FindByGroup(ctx context.Context, groupID uuid.UUID) ([]*entity.Student, error)

	// Create persists a new student. A duplicate phone number yields
	// domainerrors.ErrPhoneNumberInUse, an unknown group yields domainerrors.ErrUnknownGroup.
	Create(ctx context.Context, student *entity.Student) error
}
