// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Lecturer is the credential record of a lecturer account.
// A lecturer is never updated in place once created.
type Lecturer struct {
	ID           uuid.UUID // Generated at creation, never reused.
	Email        string    // Unique login identifier.
	PasswordHash string    `json:"-"` // bcrypt hash; must never leave the service.
	CreatedAt    time.Time
}

// LecturerView is the only outward representation of a lecturer.
type LecturerView struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// View returns the public projection of the lecturer, without the password hash.
func (l *Lecturer) View() *LecturerView {
	if l == nil {
		return nil
	}

	return &LecturerView{
		ID:    l.ID,
		Email: l.Email,
	}
}
