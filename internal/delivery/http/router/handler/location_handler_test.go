package handler

import (
	"bytes"
	"net/http"
	"testing"
	"time"

	"campus/internal/domain/entity"
	domainerrors "campus/internal/domain/errors"
	mockUsecase "campus/internal/mocks/usecase"
	"campus/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newLocationTestEcho(t *testing.T) (*echo.Echo, *mockUsecase.MockLocationUsecase) {
	locationUC := mockUsecase.NewMockLocationUsecase(t)
	h := NewLocationHandler(locationUC)

	e := newTestEcho()
	e.GET("/locations", h.List)
	e.POST("/locations", h.Create)
	e.GET("/locations/:id", h.Get)

	return e, locationUC
}

func TestLocationHandler_List(t *testing.T) {
	e, locationUC := newLocationTestEcho(t)
	createdAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	locations := []*entity.Location{
		{ID: uuid.New(), Name: "Annex", CreatedAt: createdAt},
		{ID: uuid.New(), Name: "Main hall", CreatedAt: createdAt},
	}
	locationUC.EXPECT().ListLocations(mock.Anything).Return(locations, nil).Once()

	rec, env := serve(t, e, http.MethodGet, "/locations", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, string(env.Data), `"name":"Annex"`)
	assert.Contains(t, string(env.Data), `"name":"Main hall"`)
}

func TestLocationHandler_Get(t *testing.T) {
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		e, locationUC := newLocationTestEcho(t)
		locationUC.EXPECT().GetLocation(mock.Anything, id).Return(&entity.Location{ID: id, Name: "Annex"}, nil).Once()

		rec, env := serve(t, e, http.MethodGet, "/locations/"+id.String(), "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, string(env.Data), id.String())
	})

	t.Run("not found", func(t *testing.T) {
		e, locationUC := newLocationTestEcho(t)
		locationUC.EXPECT().GetLocation(mock.Anything, id).Return(nil, domainerrors.ErrLocationNotFound).Once()

		rec, env := serve(t, e, http.MethodGet, "/locations/"+id.String(), "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "LOCATION_NOT_FOUND", env.Error.Code)
	})

	t.Run("invalid id", func(t *testing.T) {
		e, _ := newLocationTestEcho(t)

		rec, env := serve(t, e, http.MethodGet, "/locations/not-a-uuid", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "INVALID_ID", env.Error.Code)
	})
}

func TestLocationHandler_Create(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		e, locationUC := newLocationTestEcho(t)
		created := &entity.Location{ID: uuid.New(), Name: "Annex"}
		locationUC.EXPECT().
			CreateLocation(mock.Anything, &usecase.CreateLocationInput{Name: "Annex"}).
			Return(created, nil).
			Once()

		rec, env := serve(t, e, http.MethodPost, "/locations", `{"name":"Annex"}`)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, string(env.Data), created.ID.String())
	})

	t.Run("duplicate name", func(t *testing.T) {
		e, locationUC := newLocationTestEcho(t)
		locationUC.EXPECT().CreateLocation(mock.Anything, mock.Anything).Return(nil, domainerrors.ErrLocationNameExists).Once()

		rec, env := serve(t, e, http.MethodPost, "/locations", `{"name":"Annex"}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "LOCATION_NAME_EXISTS", env.Error.Code)
	})

	t.Run("blank name", func(t *testing.T) {
		e, _ := newLocationTestEcho(t)

		rec, env := serve(t, e, http.MethodPost, "/locations", `{"name":"  "}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	})
}

func TestLocationHandler_List_DatabaseError(t *testing.T) {
	e, locationUC := newLocationTestEcho(t)
	locationUC.EXPECT().
		ListLocations(mock.Anything).
		Return(nil, domainerrors.NewDatabaseExecuteError(assert.AnError, "connection reset")).
		Once()

	rec, env := serve(t, e, http.MethodGet, "/locations", "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", env.Error.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestLocationHandler_Create_DatabaseErrorIsLogged(t *testing.T) {
	locationUC := mockUsecase.NewMockLocationUsecase(t)
	locationUC.EXPECT().
		CreateLocation(mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewDatabaseExecuteError(assert.AnError, "insert failed")).
		Once()

	var logs bytes.Buffer
	e := newTestEchoWithLog(&logs)
	e.POST("/locations", NewLocationHandler(locationUC).Create)

	rec, env := serve(t, e, http.MethodPost, "/locations", `{"name":"Annex"}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	require.NotNil(t, env.Error)
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", env.Error.Code)
	assert.Contains(t, logs.String(), "DATABASE_EXECUTE_FAILED")
}
