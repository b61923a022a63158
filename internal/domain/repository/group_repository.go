package repository

import (
	"context"
	"errors"

	"campus/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrGroupNotFound is returned when no group matches a lookup.
var ErrGroupNotFound = errors.New("group not found")

// GroupRepository defines persistence operations for study groups.
type GroupRepository interface {
	// FindAll returns every group ordered by name.
	FindAll(ctx context.Context) ([]*entity.Group, error)

	// FindByID returns the group with the given ID or ErrGroupNotFound.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Group, error)

	// Create persists a new group. A duplicate name yields domainerrors.ErrGroupNameExists,
	// an unknown location yields domainerrors.ErrUnknownLocation.
	Create(ctx context.Context, group *entity.Group) error
}
