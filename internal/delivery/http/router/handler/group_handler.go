package handler

import (
	"net/http"

	"campus/internal/delivery/http/response"
	"campus/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// GroupHandler serves the group and student routes.
type GroupHandler struct {
	groupUC usecase.GroupUsecase
}

// NewGroupHandler is the constructor for GroupHandler
func NewGroupHandler(groupUC usecase.GroupUsecase) *GroupHandler {
	return &GroupHandler{groupUC: groupUC}
}

// CreateGroupRequest represents the request body for creating a group
type CreateGroupRequest struct {
	LocationID string `json:"location_id" validate:"required,uuid"`
	Name       string `json:"name" validate:"notblank,max=255"`
}

// EnrollStudentRequest represents the request body for adding a student to a group
type EnrollStudentRequest struct {
	Name        string `json:"name" validate:"notblank,max=255"`
	PhoneNumber string `json:"phone_number" validate:"required,phone"`
}

// List returns every group ordered by name.
func (h *GroupHandler) List(c echo.Context) error {
	groups, err := h.groupUC.ListGroups(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, groups)
}

// Get returns a single group.
func (h *GroupHandler) Get(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	group, err := h.groupUC.GetGroup(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, group)
}

// Create adds a group at an existing location.
func (h *GroupHandler) Create(c echo.Context) error {
	var req CreateGroupRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	group, err := h.groupUC.CreateGroup(c.Request().Context(), &usecase.CreateGroupInput{
		// Already checked by the uuid tag.
		LocationID: uuid.MustParse(req.LocationID),
		Name:       req.Name,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, group)
}

// ListStudents returns the students of a group ordered by name.
func (h *GroupHandler) ListStudents(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	students, err := h.groupUC.ListStudents(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, students)
}

// EnrollStudent adds a student to a group.
func (h *GroupHandler) EnrollStudent(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req EnrollStudentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	student, err := h.groupUC.EnrollStudent(c.Request().Context(), id, &usecase.EnrollStudentInput{
		Name:        req.Name,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, student)
}
