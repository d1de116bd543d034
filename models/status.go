package models

// Project.Status values. "on-hold" is never written by the status
// engine; a project is reported on hold when one of its tasks carries
// the hold marker, but the stored field can still hold the value if a
// client supplied it at creation time.
const (
	ProjectStatusActive   = "active"
	ProjectStatusOnHold   = "on-hold"
	ProjectStatusComplete = "complete"
)

// Color markers carried on tasks. The frontend renders these literally,
// so they double as the wire encoding of task status and must not
// change.
const (
	ColorOnHold       = "#FF0000"
	ColorActionNeeded = "#E1CA00"
)

// TaskStatus is the internal classification of a task. Storage and the
// HTTP boundary keep the historical color-string encoding; everything
// else in the codebase works with this enum.
type TaskStatus int

const (
	TaskStatusNormal TaskStatus = iota
	TaskStatusOnHold
	TaskStatusActionNeeded
)

func (s TaskStatus) String() string {
	switch s {
	case TaskStatusOnHold:
		return "on-hold"
	case TaskStatusActionNeeded:
		return "action-needed"
	default:
		return "active"
	}
}

// ColorMarker returns the stored color sentinel for the status, nil for
// a normal task.
func (s TaskStatus) ColorMarker() *string {
	switch s {
	case TaskStatusOnHold:
		c := ColorOnHold
		return &c
	case TaskStatusActionNeeded:
		c := ColorActionNeeded
		return &c
	default:
		return nil
	}
}

// StatusFromColor decodes a stored color marker. Unrecognized values
// are treated as normal so a stray display color never puts a project
// on hold.
func StatusFromColor(color *string) TaskStatus {
	if color == nil {
		return TaskStatusNormal
	}
	switch *color {
	case ColorOnHold:
		return TaskStatusOnHold
	case ColorActionNeeded:
		return TaskStatusActionNeeded
	default:
		return TaskStatusNormal
	}
}
