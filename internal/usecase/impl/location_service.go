package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "campus/internal/delivery/context"
	"campus/internal/domain/entity"
	domainerrors "campus/internal/domain/errors"
	"campus/internal/domain/repository"
	"campus/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// locationService implements the LocationUsecase interface.
type locationService struct {
	locationRepo repository.LocationRepository
	now          func() time.Time
	logger       *slog.Logger
}

// NewLocationService is the constructor for locationService.
func NewLocationService(locationRepo repository.LocationRepository, logger *slog.Logger) usecase.LocationUsecase {
	return &locationService{
		locationRepo: locationRepo,
		now:          time.Now,
		logger:       logger,
	}
}

func (srv *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListLocations returns every location ordered by name.
func (srv *locationService) ListLocations(ctx context.Context) ([]*entity.Location, error) {
	locations, err := srv.locationRepo.FindAll(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list locations")
	}

	return locations, nil
}

// GetLocation returns one location.
func (srv *locationService) GetLocation(ctx context.Context, id uuid.UUID) (*entity.Location, error) {
	location, err := srv.locationRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrLocationNotFound) {
		return nil, domainerrors.ErrLocationNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to get location")
	}

	return location, nil
}

// CreateLocation adds a location with a unique name.
func (srv *locationService) CreateLocation(ctx context.Context, input *usecase.CreateLocationInput) (*entity.Location, error) {
	location := &entity.Location{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(input.Name),
		CreatedAt: srv.now(),
	}
	if err := srv.locationRepo.Create(ctx, location); err != nil {
		return nil, errors.WithStack(err)
	}

	srv.log(ctx).Info("Location created",
		slog.String("locationID", location.ID.String()),
		slog.String("name", location.Name),
	)

	return location, nil
}
