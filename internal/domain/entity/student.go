package entity

import (
	"time"

	"github.com/google/uuid"
)

// Student is a person enrolled in exactly one group.
type Student struct {
	ID          uuid.UUID `json:"id"`
	GroupID     uuid.UUID `json:"group_id"`
	Name        string    `json:"name"`
	PhoneNumber string    `json:"phone_number"` // Unique across students.
	CreatedAt   time.Time `json:"created_at"`
}
