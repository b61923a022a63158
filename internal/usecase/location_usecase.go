package usecase

import (
	"context"

	"campus/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateLocationInput defines the data required to create a location.
type CreateLocationInput struct {
	Name string
}

// LocationUsecase defines operations on locations.
type LocationUsecase interface {
	ListLocations(ctx context.Context) ([]*entity.Location, error)
	GetLocation(ctx context.Context, id uuid.UUID) (*entity.Location, error)
	CreateLocation(ctx context.Context, input *CreateLocationInput) (*entity.Location, error)
}
