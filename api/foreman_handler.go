package api

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/crewtrack/timeline-backend/database"
	"github.com/crewtrack/timeline-backend/errs"
	"github.com/crewtrack/timeline-backend/models"
)

type foremanHandler struct {
	responder   Responder
	logger      zerolog.Logger
	foremanRepo *database.ForemanRepo
}

func newForemanHandler(foremanRepo *database.ForemanRepo) foremanHandler {
	logger := log.With().Str("handlerName", "foremanHandler").Logger()

	return foremanHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		foremanRepo: foremanRepo,
	}
}

func (h foremanHandler) list() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		foremen, err := h.foremanRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("list", "foremen", err))
			return
		}
		h.responder.WriteJSON(w, foremen)
	}
}

func (h foremanHandler) create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createForemanRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if req.FirstName == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("firstName"))
			return
		}
		if req.LastName == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("lastName"))
			return
		}

		foreman := models.Foreman{
			ID:        uuid.New(),
			FirstName: req.FirstName,
			LastName:  req.LastName,
		}
		if err := h.foremanRepo.Add(&foreman); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "foreman", err))
			return
		}

		h.responder.WriteJSON(w, foreman)
	}
}
