package api

import (
	"github.com/crewtrack/timeline-backend/errs"
	"github.com/crewtrack/timeline-backend/models"
)

// Request payloads. Field names mirror what the existing frontend
// sends; notably the create-project task rows carry the task name
// under "task" while the standalone create-task payload uses "name".

type createProjectTask struct {
	Task  string `json:"task"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type createProjectRequest struct {
	Name        string              `json:"name"`
	CompanyName string              `json:"companyName"`
	Status      string              `json:"status"`
	Start       string              `json:"start"`
	End         string              `json:"end"`
	Tasks       []createProjectTask `json:"tasks"`
}

type createTaskRequest struct {
	Name      string `json:"name"`
	ProjectID string `json:"project_id"`
	Start     string `json:"start"`
	End       string `json:"end"`
}

type editTaskRequest struct {
	Start   string `json:"start"`
	End     string `json:"end"`
	Foreman string `json:"foreman"`
}

// updateTaskRequest is the full-replace payload. Dates arrive as Unix
// epoch seconds here, unlike every other endpoint.
type updateTaskRequest struct {
	Title      string  `json:"title"`
	ActionText *string `json:"actionText"`
	Color      *string `json:"color"`
	Start      int64   `json:"start"`
	End        int64   `json:"end"`
}

type createHolidayRequest struct {
	Name  string `json:"name"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type createForemanRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
}

// taskStatusRequest converts a task between active, on-hold and
// action-needed. Text is required only for action-needed.
type taskStatusRequest struct {
	Status string `json:"status"`
	Text   string `json:"text"`
}

type projectStatusRequest struct {
	Status string `json:"status"`
}

// statusChangeResponse echoes the fields the frontend refreshes after
// a conversion.
type statusChangeResponse struct {
	Message string `json:"message"`
	Task    any    `json:"task,omitempty"`
	Project any    `json:"project,omitempty"`
}

// parseDateField parses an ISO-8601 date or datetime-with-Z request
// field into a calendar date, reporting the offending field on error.
func parseDateField(field, value string) (models.Date, error) {
	if value == "" {
		return models.Date{}, errs.NewMissingRequiredFieldError(field)
	}
	d, err := models.ParseDate(value)
	if err != nil {
		return models.Date{}, errs.NewInvalidFieldError(field, err.Error())
	}
	return d, nil
}
