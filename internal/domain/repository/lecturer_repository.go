// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"campus/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrLecturerNotFound is returned when no lecturer matches a lookup.
var ErrLecturerNotFound = errors.New("lecturer not found")

// LecturerRepository is the credential store. It is append-only: lecturers are
// created and read, never updated.
type LecturerRepository interface {
	// FindByID returns the lecturer with the given ID or ErrLecturerNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Lecturer, error)

	// FindByEmail returns the lecturer with the given email or ErrLecturerNotFound.
	FindByEmail(ctx context.Context, email string) (*entity.Lecturer, error)

	// Create persists a new lecturer. A duplicate email yields domainerrors.ErrEmailInUse.
	Create(ctx context.Context, lecturer *entity.Lecturer) error
}
