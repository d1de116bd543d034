package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/crewtrack/timeline-backend/errs"
	"github.com/crewtrack/timeline-backend/models"
	"github.com/crewtrack/timeline-backend/services"
)

type projectHandler struct {
	responder Responder
	logger    zerolog.Logger
	status    services.StatusService
	linkage   services.LinkageService
}

func newProjectHandler(status services.StatusService, linkage services.LinkageService) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder: NewResponder(logger),
		logger:    logger,
		status:    status,
		linkage:   linkage,
	}
}

// listActive returns projects derived active: not complete and owning
// no on-hold-marked task.
func (h projectHandler) listActive() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.status.ActiveProjects()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, projects)
	}
}

// listOnHold returns projects owning at least one on-hold-marked task.
func (h projectHandler) listOnHold() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.status.OnHoldProjects()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, projects)
	}
}

// listCompleted returns projects with stored status "complete".
func (h projectHandler) listCompleted() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.status.CompletedProjects()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, projects)
	}
}

// create inserts a project and its initial task set atomically and
// echoes the request payload on success, as the frontend expects.
func (h projectHandler) create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createProjectRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode project request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if req.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}
		if req.CompanyName == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("companyName"))
			return
		}

		input := services.CreateProjectInput{
			Name:        req.Name,
			CompanyName: req.CompanyName,
			Status:      req.Status,
		}

		var err error
		if input.Start, err = parseDateField("start", req.Start); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if input.End, err = parseDateField("end", req.End); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		for _, t := range req.Tasks {
			if t.Task == "" {
				h.responder.WriteError(w, errs.NewMissingRequiredFieldError("task"))
				return
			}
			taskIn := services.TaskInput{Name: t.Task}
			if taskIn.Start, err = parseDateField("start", t.Start); err != nil {
				h.responder.WriteError(w, err)
				return
			}
			if taskIn.End, err = parseDateField("end", t.End); err != nil {
				h.responder.WriteError(w, err)
				return
			}
			input.Tasks = append(input.Tasks, taskIn)
		}

		if _, err := h.linkage.CreateProject(input); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, req)
	}
}

// remove hard-deletes a project. Its tasks and their foreman links go
// with it in the same transaction.
func (h projectHandler) remove() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.linkage.DeleteProject(projectID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{"message": "Project deleted successfully"})
	}
}

// convertStatus flips a project's stored status. "complete" is the only
// supported target: active/on-hold are derived from task markers and
// cannot be stored from here.
func (h projectHandler) convertStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseIDParam(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req projectStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if req.Status != models.ProjectStatusComplete {
			h.responder.WriteError(w, errs.NewInvalidFieldError("status", "only \"complete\" can be stored on a project"))
			return
		}

		project, err := h.status.MarkProjectComplete(projectID)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, statusChangeResponse{
			Message: "Project status updated successfully",
			Project: map[string]any{
				"id":     project.ID,
				"name":   project.Name,
				"status": project.Status,
			},
		})
	}
}

// parseIDParam reads and validates a uuid path parameter.
func parseIDParam(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return uuid.Nil, errs.NewMissingRequiredFieldError(name)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errs.NewInvalidFieldError(name, "not a valid id")
	}
	return id, nil
}
