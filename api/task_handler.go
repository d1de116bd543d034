package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/crewtrack/timeline-backend/errs"
	"github.com/crewtrack/timeline-backend/models"
	"github.com/crewtrack/timeline-backend/services"
)

type taskHandler struct {
	responder Responder
	logger    zerolog.Logger
	status    services.StatusService
	linkage   services.LinkageService
	timeline  services.TimelineService
}

func newTaskHandler(status services.StatusService, linkage services.LinkageService, timeline services.TimelineService) taskHandler {
	logger := log.With().Str("handlerName", "taskHandler").Logger()

	return taskHandler{
		responder: NewResponder(logger),
		logger:    logger,
		status:    status,
		linkage:   linkage,
		timeline:  timeline,
	}
}

// create adds a task to an existing project and echoes the payload.
// 404 when the project does not resolve.
func (h taskHandler) create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createTaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.logger.Error().Err(err).Msg("Failed to decode task request body")
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if req.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
			return
		}
		projectID, err := uuid.Parse(req.ProjectID)
		if err != nil {
			h.responder.WriteError(w, errs.NewInvalidFieldError("project_id", "not a valid id"))
			return
		}
		start, err := parseDateField("start", req.Start)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		end, err := parseDateField("end", req.End)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.linkage.CreateTask(projectID, req.Name, start, end); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, req)
	}
}

// edit updates a task's dates and relabels the foreman project-wide.
func (h taskHandler) edit() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		taskID, err := parseIDParam(r, "taskID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req editTaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if req.Foreman == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("foreman"))
			return
		}
		start, err := parseDateField("start", req.Start)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		end, err := parseDateField("end", req.End)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		task, err := h.linkage.EditTask(taskID, start, end, req.Foreman)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, statusChangeResponse{
			Message: "Task updated successfully",
			Task: map[string]any{
				"id":         task.ID,
				"color":      task.Color,
				"actionText": task.ActionText,
			},
		})
	}
}

// fullUpdate replaces every mutable field. Dates arrive as epoch
// seconds and the endpoint answers in plain text, both for
// compatibility with its existing caller.
func (h taskHandler) fullUpdate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		taskID, err := parseIDParam(r, "taskID")
		if err != nil {
			h.responder.WriteText(w, http.StatusNotFound, "Item not found")
			return
		}

		var req updateTaskRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}
		if req.Title == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("title"))
			return
		}

		start := models.DateFromUnix(req.Start)
		end := models.DateFromUnix(req.End)

		if _, err := h.linkage.UpdateTask(taskID, req.Title, req.ActionText, req.Color, start, end); err != nil {
			if errs.IsNotFound(err) {
				h.responder.WriteText(w, http.StatusNotFound, "Item not found")
				return
			}
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteText(w, http.StatusOK, "Item updated successfully")
	}
}

// remove hard-deletes a task and its foreman link.
func (h taskHandler) remove() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		taskID, err := parseIDParam(r, "taskID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.linkage.DeleteTask(taskID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, map[string]string{"message": "Task deleted successfully"})
	}
}

// convertStatus moves a task between active, on-hold and
// action-needed. Action-needed requires annotation text.
func (h taskHandler) convertStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		taskID, err := parseIDParam(r, "taskID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var req taskStatusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		var task *models.Task
		switch req.Status {
		case "active":
			task, err = h.status.MarkTaskActive(taskID)
		case "on-hold":
			task, err = h.status.MarkTaskOnHold(taskID)
		case "action-needed":
			task, err = h.status.MarkTaskActionNeeded(taskID, req.Text)
		default:
			h.responder.WriteError(w, errs.NewInvalidFieldError("status", "must be active, on-hold or action-needed"))
			return
		}
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, statusChangeResponse{
			Message: "Task status updated successfully",
			Task: map[string]any{
				"id":         task.ID,
				"color":      task.Color,
				"actionText": task.ActionText,
			},
		})
	}
}

// foremanMap returns taskId → foreman label for every link row.
func (h taskHandler) foremanMap() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		m, err := h.timeline.ForemanMap()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, m)
	}
}
