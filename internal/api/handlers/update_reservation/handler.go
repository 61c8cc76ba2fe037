package update_reservation

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/sosuke1217/mobilis-ticket-sub000/internal/api/handlers"
	updateReservation "github.com/sosuke1217/mobilis-ticket-sub000/internal/usecase/update_reservation"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidReservationID = "некорректный идентификатор записи"
	msgInvalidDateOrTime    = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgReservationNotFound  = "запись не найдена"
	msgNotUpdatable         = "запись в текущем статусе нельзя изменить"
	msgSlotConflict         = "выбранный временной интервал уже занят"
	msgSalonClosed          = "салон закрыт в выбранную дату"
	msgInvalidDate          = "некорректная дата записи"
	msgDateTooFar           = "дата записи слишком далеко в будущем"
	msgInvalidTimeSlot      = "некорректный временной интервал"
	msgInvalidInput         = "некорректные данные записи"
)

type Handler struct {
	useCase UpdateReservationUseCase
	logger  Logger
}

func NewHandler(useCase UpdateReservationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id, err := strconv.ParseInt(vars["reservationId"], 10, 64)
	if err != nil || id <= 0 {
		h.logger.Warn("PUT /reservations/{id} - Invalid id: %q", vars["reservationId"])
		handlers.RespondBadRequest(w, msgInvalidReservationID)
		return
	}

	var req UpdateReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(id)
	if err != nil {
		h.logger.Warn("PUT /reservations/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, updateReservation.ErrReservationNotFound):
			h.logger.Warn("PUT /reservations/{id} - Not found: id=%d", id)
			handlers.RespondNotFound(w, msgReservationNotFound)

		case errors.Is(err, updateReservation.ErrNotUpdatable):
			h.logger.Warn("PUT /reservations/{id} - Not updatable: id=%d", id)
			handlers.RespondError(w, http.StatusConflict, msgNotUpdatable)

		case errors.Is(err, updateReservation.ErrSlotConflict):
			h.logger.Warn("PUT /reservations/{id} - Slot conflict: id=%d", id)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, updateReservation.ErrSalonClosed):
			h.logger.Warn("PUT /reservations/{id} - Salon closed: id=%d", id)
			handlers.RespondBadRequest(w, msgSalonClosed)

		case errors.Is(err, updateReservation.ErrInvalidDate):
			h.logger.Warn("PUT /reservations/{id} - Invalid date: id=%d", id)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, updateReservation.ErrDateTooFarInFuture):
			h.logger.Warn("PUT /reservations/{id} - Date too far: id=%d", id)
			handlers.RespondBadRequest(w, msgDateTooFar)

		case errors.Is(err, updateReservation.ErrInvalidTimeSlot):
			h.logger.Warn("PUT /reservations/{id} - Invalid time slot: id=%d", id)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, updateReservation.ErrInvalidInput):
			h.logger.Warn("PUT /reservations/{id} - Invalid input: id=%d, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PUT /reservations/{id} - Failed: id=%d, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /reservations/{id} - Reservation updated: id=%d", id)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
