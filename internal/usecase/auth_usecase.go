// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"campus/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterLecturerInput defines the data required to create a lecturer account.
type RegisterLecturerInput struct {
	Email    string
	Password string
}

// LoginInput defines the credentials a lecturer logs in with.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// LoginOutput carries the session token issued on a successful login.
type LoginOutput struct {
	Token     string               `json:"token"`
	ExpiresAt time.Time            `json:"expires_at"`
	Lecturer  *entity.LecturerView `json:"lecturer"`
}

// AuthUsecase defines lecturer registration, login and request authentication.
type AuthUsecase interface {
	// Register creates a lecturer with a hashed password.
	Register(ctx context.Context, input *RegisterLecturerInput) (*entity.LecturerView, error)

	// Login checks the credentials and issues a session token. A wrong password and an
	// unknown email both yield domainerrors.ErrInvalidCredentials.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// VerifyRequest resolves the lecturer named by an Authorization header value.
	VerifyRequest(ctx context.Context, authHeader string) (*entity.LecturerView, error)
}
