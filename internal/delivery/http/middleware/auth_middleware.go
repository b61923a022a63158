package middleware

import (
	deliverycontext "campus/internal/delivery/context"
	"campus/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware guards handlers behind a lecturer session token.
type AuthMiddleware struct {
	authUC usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(authUC usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{authUC: authUC}
}

// Authenticate resolves the lecturer from the Authorization header and stores the
// public view in the echo context. Failures go to the central error handler.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		lecturer, err := m.authUC.VerifyRequest(c.Request().Context(), c.Request().Header.Get(echo.HeaderAuthorization))
		if err != nil {
			return err
		}

		deliverycontext.SetLecturer(c, lecturer)

		return next(c)
	}
}

// RequireAuth wraps a single handler so it only runs for an authenticated lecturer.
func (m *AuthMiddleware) RequireAuth(h echo.HandlerFunc) echo.HandlerFunc {
	return m.Authenticate(h)
}
