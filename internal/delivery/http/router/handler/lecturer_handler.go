package handler

import (
	"net/http"

	deliverycontext "campus/internal/delivery/context"
	"campus/internal/delivery/http/response"
	domainerrors "campus/internal/domain/errors"
	"campus/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// LecturerHandlerParams holds dependencies for LecturerHandler, injected by Fx.
type LecturerHandlerParams struct {
	fx.In

	AuthUC usecase.AuthUsecase
}

// LecturerHandler holds dependencies for lecturer account handlers
type LecturerHandler struct {
	authUC usecase.AuthUsecase
}

// NewLecturerHandler is the constructor for LecturerHandler
func NewLecturerHandler(params LecturerHandlerParams) *LecturerHandler {
	return &LecturerHandler{
		authUC: params.AuthUC,
	}
}

// CredentialsRequest is the body of both registration and login.
// Password length is checked by the auth usecase against the configured policy.
type CredentialsRequest struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required"`
}

// Register creates a lecturer account.
func (h *LecturerHandler) Register(c echo.Context) error {
	var req CredentialsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	lecturer, err := h.authUC.Register(c.Request().Context(), &usecase.RegisterLecturerInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, lecturer)
}

// Login exchanges credentials for a session token.
func (h *LecturerHandler) Login(c echo.Context) error {
	var req CredentialsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	out, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, out)
}

// Me returns the lecturer resolved by the auth middleware.
func (h *LecturerHandler) Me(c echo.Context) error {
	lecturer, ok := deliverycontext.GetLecturer(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	return response.Success(c, http.StatusOK, lecturer)
}
