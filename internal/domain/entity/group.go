package entity

import (
	"time"

	"github.com/google/uuid"
)

// Group is a study group held at a single location.
type Group struct {
	ID         uuid.UUID `json:"id"`
	LocationID uuid.UUID `json:"location_id"`
	Name       string    `json:"name"` // Unique across groups.
	CreatedAt  time.Time `json:"created_at"`
}
