package delete_shift_override

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/sosuke1217/mobilis-ticket-sub000/internal/api/handlers"
	"github.com/sosuke1217/mobilis-ticket-sub000/internal/domain"
	"github.com/sosuke1217/mobilis-ticket-sub000/internal/service/schedule"
)

const (
	msgInvalidDate      = "некорректная дата, ожидается формат YYYY-MM-DD"
	msgOverrideNotFound = "переопределение смены на эту дату не найдено"
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

// Handle DELETE /api/v1/shift-overrides/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	date, err := time.Parse(domain.DateFormat, vars["date"])
	if err != nil {
		h.logger.Warn("DELETE /shift-overrides/{date} - Invalid date: %q", vars["date"])
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	if err := h.service.DeleteOverride(r.Context(), date); err != nil {
		switch {
		case errors.Is(err, schedule.ErrOverrideNotFound):
			h.logger.Warn("DELETE /shift-overrides/{date} - Not found: date=%s",
				date.Format(domain.DateFormat))
			handlers.RespondNotFound(w, msgOverrideNotFound)

		default:
			h.logger.Error("DELETE /shift-overrides/{date} - Failed: date=%s, error=%v",
				date.Format(domain.DateFormat), err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /shift-overrides/{date} - Override deleted: date=%s",
		date.Format(domain.DateFormat))
	handlers.RespondNoContent(w)
}
