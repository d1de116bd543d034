package models

import "github.com/google/uuid"

// TaskTemplate is a static catalog row (category + task name) used to
// populate the task-creation picker. Templates are not live tasks and
// nothing references them.
type TaskTemplate struct {
	ID   uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Type string    `json:"type" db:"type" gorm:"type:text;not null"`
	Task string    `json:"task" db:"task" gorm:"type:text;not null"`
}
