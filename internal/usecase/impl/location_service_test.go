package impl

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"campus/internal/domain/entity"
	domainerrors "campus/internal/domain/errors"
	"campus/internal/domain/repository"
	mockRepo "campus/internal/mocks/repository"
	"campus/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLocationService_ListLocations(t *testing.T) {
	locationRepo := mockRepo.NewMockLocationRepository(t)
	service := NewLocationService(locationRepo, slog.Default())

	ctx := context.Background()
	expected := []*entity.Location{{ID: uuid.New(), Name: "Aula"}, {ID: uuid.New(), Name: "Library"}}
	locationRepo.EXPECT().FindAll(ctx).Return(expected, nil)

	locations, err := service.ListLocations(ctx)
	require.NoError(t, err)
	assert.Equal(t, expected, locations)
}

func TestLocationService_GetLocation_NotFound(t *testing.T) {
	locationRepo := mockRepo.NewMockLocationRepository(t)
	service := NewLocationService(locationRepo, slog.Default())

	id := uuid.New()
	locationRepo.EXPECT().FindByID(mock.Anything, id).Return(nil, repository.ErrLocationNotFound)

	_, err := service.GetLocation(context.Background(), id)
	assert.ErrorIs(t, err, domainerrors.ErrLocationNotFound)
}

func TestLocationService_GetLocation_StoreFailure(t *testing.T) {
	locationRepo := mockRepo.NewMockLocationRepository(t)
	service := NewLocationService(locationRepo, slog.Default())

	locationRepo.EXPECT().FindByID(mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

	_, err := service.GetLocation(context.Background(), uuid.New())
	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrLocationNotFound)
}

func TestLocationService_CreateLocation(t *testing.T) {
	locationRepo := mockRepo.NewMockLocationRepository(t)
	service := NewLocationService(locationRepo, slog.Default())

	locationRepo.EXPECT().
		Create(mock.Anything, mock.MatchedBy(func(l *entity.Location) bool {
			return l.Name == "Library" && l.ID != uuid.Nil
		})).
		Return(nil)

	location, err := service.CreateLocation(context.Background(), &usecase.CreateLocationInput{Name: " Library "})
	require.NoError(t, err)
	assert.Equal(t, "Library", location.Name)
}

func TestLocationService_CreateLocation_DuplicateName(t *testing.T) {
	locationRepo := mockRepo.NewMockLocationRepository(t)
	service := NewLocationService(locationRepo, slog.Default())

	locationRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domainerrors.ErrLocationNameExists)

	_, err := service.CreateLocation(context.Background(), &usecase.CreateLocationInput{Name: "Library"})
	assert.ErrorIs(t, err, domainerrors.ErrLocationNameExists)
}
