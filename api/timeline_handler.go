package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/crewtrack/timeline-backend/services"
)

type timelineHandler struct {
	responder Responder
	logger    zerolog.Logger
	timeline  services.TimelineService
}

func newTimelineHandler(timeline services.TimelineService) timelineHandler {
	logger := log.With().Str("handlerName", "timelineHandler").Logger()

	return timelineHandler{
		responder: NewResponder(logger),
		logger:    logger,
		timeline:  timeline,
	}
}

// combined returns the Gantt payload: non-complete projects as groups,
// all tasks as items.
func (h timelineHandler) combined() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		view, err := h.timeline.Timeline(r.Context())
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, view)
	}
}

// taskTemplates returns the picker catalog.
func (h timelineHandler) taskTemplates() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		templates, err := h.timeline.TaskTemplates()
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		h.responder.WriteJSON(w, templates)
	}
}
