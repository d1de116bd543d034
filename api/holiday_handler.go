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

type holidayHandler struct {
	responder   Responder
	logger      zerolog.Logger
	holidayRepo *database.HolidayRepo
}

func newHolidayHandler(holidayRepo *database.HolidayRepo) holidayHandler {
	logger := log.With().Str("handlerName", "holidayHandler").Logger()

	return holidayHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		holidayRepo: holidayRepo,
	}
}

func (h holidayHandler) list() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		holidays, err := h.holidayRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("list", "holidays", err))
			return
		}
		h.responder.WriteJSON(w, holidays)
	}
}

func (h holidayHandler) create() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req createHolidayRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			h.responder.WriteError(w, errs.NewInvalidJSONError(err))
			return
		}

		if req.Name == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("name"))
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

		holiday := models.Holiday{
			ID:    uuid.New(),
			Name:  req.Name,
			Start: start,
			End:   end,
		}
		if err := h.holidayRepo.Add(&holiday); err != nil {
			h.responder.WriteError(w, errs.NewDatabaseError("create", "holiday", err))
			return
		}

		h.responder.WriteJSON(w, holiday)
	}
}
