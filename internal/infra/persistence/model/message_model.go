package model

import (
	"time"

	"github.com/google/uuid"
)

// LocationMessageModel mirrors the 'location_messages' table.
type LocationMessageModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	LocationID  uuid.UUID `gorm:"type:uuid;not null;index"`
	ScheduledAt time.Time `gorm:"not null"`
	Message     string    `gorm:"type:text;not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (LocationMessageModel) TableName() string {
	return "location_messages"
}

// GroupMessageModel mirrors the 'group_messages' table.
type GroupMessageModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	GroupID     uuid.UUID `gorm:"type:uuid;not null;index"`
	ScheduledAt time.Time `gorm:"not null"`
	Message     string    `gorm:"type:text;not null"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (GroupMessageModel) TableName() string {
	return "group_messages"
}
