package notify

import (
	"time"

	"github.com/google/uuid"

	"github.com/sosuke1217/mobilis-ticket-sub000/internal/domain"
)

// Типы событий, которые консьюмит внешний сервис уведомлений (LINE/email)
const (
	EventReservationCreated   = "booking_created"
	EventReservationUpdated   = "booking_updated"
	EventReservationCancelled = "booking_cancelled"
)

// ReservationEvent payload события бронирования
// Времена передаются в ISO-8601, идентификатор события uuid для дедупликации
// на стороне консьюмера
type ReservationEvent struct {
	Event         string  `json:"event"`
	EventID       string  `json:"eventId"`
	ReservationID int64   `json:"reservationId"`
	UserRef       *int64  `json:"userRef,omitempty"`
	StartTime     string  `json:"startTime"`
	EndTime       string  `json:"endTime"`
	Reason        *string `json:"reason,omitempty"`
	EmittedAt     string  `json:"emittedAt"`
}

// newReservationEvent собирает payload события из доменной модели
func newReservationEvent(eventType string, res *domain.Reservation, reason *string) ReservationEvent {
	return ReservationEvent{
		Event:         eventType,
		EventID:       uuid.NewString(),
		ReservationID: res.ID,
		UserRef:       res.UserID,
		StartTime:     res.StartTime.OnDate(res.Date).Format(time.RFC3339),
		EndTime:       res.EndTime.OnDate(res.Date).Format(time.RFC3339),
		Reason:        reason,
		EmittedAt:     time.Now().Format(time.RFC3339),
	}
}
