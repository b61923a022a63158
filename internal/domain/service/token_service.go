package service

import (
	"time"

	"github.com/google/uuid"
)

// TokenService issues and verifies lecturer session tokens.
// Both operations are pure functions of their inputs and the process-wide secret.
type TokenService interface {
	// Issue returns a signed token asserting lecturerID, valid from now for the configured TTL.
	Issue(lecturerID uuid.UUID, now time.Time) (string, error)

	// Verify checks the token at time now and returns the lecturer ID it asserts.
	// Failures are domainerrors.ErrTokenMalformed, ErrTokenSignatureInvalid,
	// ErrTokenExpired or ErrTokenSubjectInvalid, checked in that order.
	Verify(token string, now time.Time) (uuid.UUID, error)

	// TTL returns the validity duration of issued tokens.
	TTL() time.Duration
}
