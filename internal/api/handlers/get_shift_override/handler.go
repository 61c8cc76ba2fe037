package get_shift_override

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
	msgInvalidPeriod    = "некорректный период, ожидаются параметры from и to в формате YYYY-MM-DD"
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

// Handle GET /api/v1/shift-overrides/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	date, err := time.Parse(domain.DateFormat, vars["date"])
	if err != nil {
		h.logger.Warn("GET /shift-overrides/{date} - Invalid date: %q", vars["date"])
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	override, err := h.service.GetOverride(r.Context(), date)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrOverrideNotFound):
			handlers.RespondNotFound(w, msgOverrideNotFound)

		default:
			h.logger.Error("GET /shift-overrides/{date} - Failed: date=%s, error=%v",
				date.Format(domain.DateFormat), err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, override)
}

// HandleList GET /api/v1/shift-overrides?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	from, err := time.Parse(domain.DateFormat, query.Get("from"))
	if err != nil {
		h.logger.Warn("GET /shift-overrides - Invalid from: %q", query.Get("from"))
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	to, err := time.Parse(domain.DateFormat, query.Get("to"))
	if err != nil {
		h.logger.Warn("GET /shift-overrides - Invalid to: %q", query.Get("to"))
		handlers.RespondBadRequest(w, msgInvalidPeriod)
		return
	}

	overrides, err := h.service.ListOverrides(r.Context(), from, to)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("GET /shift-overrides - Invalid period: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)

		default:
			h.logger.Error("GET /shift-overrides - Failed: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, overrides)
}
