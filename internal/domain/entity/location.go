package entity

import (
	"time"

	"github.com/google/uuid"
)

// Location is a place where study groups meet.
type Location struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"` // Unique across locations.
	CreatedAt time.Time `json:"created_at"`
}
