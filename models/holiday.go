package models

import "github.com/google/uuid"

// Holiday is a company-wide non-working range shown on the timeline.
// It has no relation to projects or tasks.
type Holiday struct {
	ID    uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name  string    `json:"name" db:"name" gorm:"type:text;not null"`
	Start Date      `json:"start" db:"start" gorm:"not null"`
	End   Date      `json:"end" db:"end" gorm:"not null"`
}
