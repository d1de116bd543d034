package models

import "testing"

func TestStatusColorRoundTrip(t *testing.T) {
	for _, status := range []TaskStatus{TaskStatusNormal, TaskStatusOnHold, TaskStatusActionNeeded} {
		if got := StatusFromColor(status.ColorMarker()); got != status {
			t.Errorf("StatusFromColor(%v.ColorMarker()) = %v", status, got)
		}
	}
}

func TestStatusFromColorUnknownMarker(t *testing.T) {
	blue := "#0000FF"
	if got := StatusFromColor(&blue); got != TaskStatusNormal {
		t.Errorf("unknown color marker classified as %v, want normal", got)
	}
}

func TestTaskDisplayName(t *testing.T) {
	note := "CALL INSPECTOR "
	tests := []struct {
		name string
		task Task
		want string
	}{
		{name: "plain task", task: Task{Name: "Grading"}, want: "Grading"},
		{name: "annotated task", task: Task{Name: "Grading", ActionText: &note}, want: "CALL INSPECTOR Grading"},
		{name: "empty annotation ignored", task: Task{Name: "Grading", ActionText: strPtr("")}, want: "Grading"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.task.DisplayName(); got != tt.want {
				t.Errorf("DisplayName() = %q, want %q", got, tt.want)
			}
		})
	}
}

func strPtr(s string) *string { return &s }
