// Package model contains the GORM persistence models. Each mirrors one table
// created by the goose migrations and maps to and from a domain entity.
package model

import (
	"time"

	"github.com/google/uuid"
)

// LecturerModel mirrors the 'lecturers' table.
type LecturerModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex:lecturers_email_key"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (LecturerModel) TableName() string {
	return "lecturers"
}
