package models

import "github.com/google/uuid"

// Task is a scheduled bar on the timeline. ProjectID is a lookup
// reference, not a gorm association: tasks outlive their project's
// completion and the projection queries them independently.
//
// Name always holds the base name. When a task needs attention the
// annotation lives in ActionText only and the prefixed title shown to
// clients is computed per read, so converting a task back and forth
// never mutates the stored name.
type Task struct {
	ID         uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	ProjectID  uuid.UUID `json:"projectId" db:"project_id" gorm:"type:uuid;not null;index:idx_task_project_id"`
	Name       string    `json:"name" db:"name" gorm:"type:text;not null"`
	Color      *string   `json:"color" db:"color" gorm:"type:text"`
	ActionText *string   `json:"actionText" db:"action_text" gorm:"type:text"`
	Start      Date      `json:"start" db:"start" gorm:"not null"`
	End        Date      `json:"end" db:"end" gorm:"not null"`
}

// Status decodes the task's color marker.
func (t Task) Status() TaskStatus {
	return StatusFromColor(t.Color)
}

// DisplayName is the title rendered on the timeline: the action
// annotation prefixed onto the base name, matching what the original
// frontend expects for action-needed tasks.
func (t Task) DisplayName() string {
	if t.ActionText != nil && *t.ActionText != "" {
		return *t.ActionText + t.Name
	}
	return t.Name
}
