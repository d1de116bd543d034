package models

import "github.com/google/uuid"

// TaskForeman labels a task with the crew or company responsible for
// it. Exactly one row exists per task; the unique index backs that
// invariant and a duplicate insert surfaces as a conflict, not a crash.
type TaskForeman struct {
	ID     uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name   string    `json:"name" db:"name" gorm:"type:text;not null"`
	TaskID uuid.UUID `json:"taskId" db:"task_id" gorm:"type:uuid;not null;uniqueIndex:idx_task_foreman_task_id"`
}
