package models

import "github.com/google/uuid"

// Foreman is a catalog entry used to populate assignment pickers.
// TaskForeman links deliberately store a free-text label rather than a
// reference to this table, so renaming a foreman here never rewrites
// history on existing tasks.
type Foreman struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	FirstName string    `json:"firstName" db:"first_name" gorm:"type:text;not null"`
	LastName  string    `json:"lastName" db:"last_name" gorm:"type:text;not null"`
}
