package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationModel mirrors the 'locations' table.
type LocationModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);not null;uniqueIndex:locations_name_key"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationModel) TableName() string {
	return "locations"
}
