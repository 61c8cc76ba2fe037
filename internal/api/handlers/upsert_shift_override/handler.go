package upsert_shift_override

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/sosuke1217/mobilis-ticket-sub000/internal/api/handlers"
	"github.com/sosuke1217/mobilis-ticket-sub000/internal/domain"
	"github.com/sosuke1217/mobilis-ticket-sub000/internal/service/schedule/models"
)

const (
	msgInvalidDate        = "некорректная дата, ожидается формат YYYY-MM-DD"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "ошибка валидации переопределения смены"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/shift-overrides/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	date, err := time.Parse(domain.DateFormat, vars["date"])
	if err != nil {
		h.logger.Warn("PUT /shift-overrides/{date} - Invalid date: %q", vars["date"])
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	var req models.UpsertOverrideRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /shift-overrides/{date} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.Date = date

	override, err := h.service.UpsertOverride(r.Context(), &req)
	if err != nil {
		var fieldErrs models.ValidationErrors
		if errors.As(err, &fieldErrs) {
			h.logger.Warn("PUT /shift-overrides/{date} - Validation failed: date=%s, errors=%v",
				date.Format(domain.DateFormat), fieldErrs)
			handlers.RespondValidationErrors(w, msgValidationFailed, fieldErrs)
			return
		}

		h.logger.Error("PUT /shift-overrides/{date} - Failed: date=%s, error=%v",
			date.Format(domain.DateFormat), err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /shift-overrides/{date} - Override upserted: date=%s, shiftType=%s",
		date.Format(domain.DateFormat), req.ShiftType)
	handlers.RespondJSON(w, http.StatusOK, override)
}
