package handler

import (
	"net/http"

	"campus/internal/delivery/http/response"
	"campus/internal/usecase"

	"github.com/labstack/echo/v4"
)

// LocationHandler serves the location routes.
type LocationHandler struct {
	locationUC usecase.LocationUsecase
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(locationUC usecase.LocationUsecase) *LocationHandler {
	return &LocationHandler{locationUC: locationUC}
}

// CreateLocationRequest represents the request body for creating a location
type CreateLocationRequest struct {
	Name string `json:"name" validate:"notblank,max=255"`
}

// List returns every location ordered by name.
func (h *LocationHandler) List(c echo.Context) error {
	locations, err := h.locationUC.ListLocations(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, locations)
}

// Get returns a single location.
func (h *LocationHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	location, err := h.locationUC.GetLocation(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, location)
}

// Create adds a location.
func (h *LocationHandler) Create(c echo.Context) error {
	var req CreateLocationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	location, err := h.locationUC.CreateLocation(c.Request().Context(), &usecase.CreateLocationInput{Name: req.Name})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, location)
}
