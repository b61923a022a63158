package model

import (
	"time"

	"github.com/google/uuid"
)

// GroupModel mirrors the 'groups' table. LocationID references locations.id.
type GroupModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	LocationID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name       string    `gorm:"type:varchar(255);not null;uniqueIndex:groups_name_key"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (GroupModel) TableName() string {
	return "groups"
}

// StudentModel mirrors the 'students' table. GroupID references groups.id.
type StudentModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	GroupID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	PhoneNumber string    `gorm:"type:varchar(32);not null;uniqueIndex:students_phone_number_key"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (StudentModel) TableName() string {
	return "students"
}
