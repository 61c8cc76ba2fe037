package models

import (
	"errors"
	"time"

	"github.com/sosuke1217/mobilis-ticket-sub000/internal/domain"
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid reservation status")
)

// Request модели

// CancelReservationRequest запрос на отмену записи
type CancelReservationRequest struct {
	CancellationReason string `json:"cancellationReason"`
}

// UpdateStatusRequest запрос на обновление статуса записи
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// ListReservationsRequest запрос на получение записей с фильтрацией
type ListReservationsRequest struct {
	StartDate       *time.Time `json:"startDate,omitempty"`       // Начало периода (опционально)
	EndDate         *time.Time `json:"endDate,omitempty"`         // Конец периода (опционально)
	UserID          *int64     `json:"userId,omitempty"`          // Фильтр по пользователю (опционально)
	Status          *string    `json:"status,omitempty"`          // Фильтр по статусу (опционально)
	IncludeInactive bool       `json:"includeInactive,omitempty"` // Включить отменённые записи
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListReservationsRequest) ToDomainFilter() (domain.ReservationsFilter, error) {
	filter := domain.ReservationsFilter{
		StartDate:       r.StartDate,
		EndDate:         r.EndDate,
		UserID:          r.UserID,
		IncludeInactive: r.IncludeInactive,
	}

	if r.Status != nil {
		status, err := ToDomainReservationStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	return filter, nil
}

// Response модели

// ReservationResponse ответ с данными записи
type ReservationResponse struct {
	ID            int64  `json:"id"`
	UserID        *int64 `json:"userId,omitempty"`
	TicketID      *int64 `json:"ticketId,omitempty"`
	CustomerName  string `json:"customerName"`
	Date          string `json:"date"`      // "2025-10-15"
	StartTime     string `json:"startTime"` // "10:00"
	EndTime       string `json:"endTime"`   // "11:00"
	Course        string `json:"course,omitempty"`
	Status        string `json:"status"`
	StatusDisplay string `json:"statusDisplay"`

	IndividualIntervalMinutes *int    `json:"individualIntervalMinutes,omitempty"`
	IsBreak                   bool    `json:"isBreak"`
	Notes                     *string `json:"notes,omitempty"`

	CancellationReason *string `json:"cancellationReason,omitempty"`
	CancelledAt        *string `json:"cancelledAt,omitempty"` // ISO 8601 format

	Recurring      bool    `json:"recurring,omitempty"`
	RecurringType  *string `json:"recurringType,omitempty"`
	RecurringUntil *string `json:"recurringUntil,omitempty"` // "2025-12-31"

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse ответ со списком записей
type ReservationListResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
}

// Методы конвертации

// FromDomainReservation конвертирует domain модель в DTO
func FromDomainReservation(r *domain.Reservation) *ReservationResponse {
	if r == nil {
		return nil
	}

	resp := &ReservationResponse{
		ID:                        r.ID,
		UserID:                    r.UserID,
		TicketID:                  r.TicketID,
		CustomerName:              r.CustomerName,
		Date:                      r.Date.Format(domain.DateFormat),
		StartTime:                 r.StartTime.String(),
		EndTime:                   r.EndTime.String(),
		Course:                    string(r.Course),
		Status:                    string(r.Status),
		StatusDisplay:             r.Status.Display(),
		IndividualIntervalMinutes: r.IndividualIntervalMinutes,
		IsBreak:                   r.IsBreak,
		Notes:                     r.Notes,
		CancellationReason:        r.CancellationReason,
		Recurring:                 r.Recurring,
		RecurringType:             r.RecurringType,
		CreatedAt:                 r.CreatedAt,
		UpdatedAt:                 r.UpdatedAt,
	}

	if r.CancelledAt != nil {
		cancelledAt := r.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledAt
	}

	if r.RecurringUntil != nil {
		until := r.RecurringUntil.Format(domain.DateFormat)
		resp.RecurringUntil = &until
	}

	return resp
}

// FromDomainReservationList конвертирует список domain моделей в DTO
func FromDomainReservationList(reservations []*domain.Reservation) *ReservationListResponse {
	out := make([]ReservationResponse, 0, len(reservations))
	for _, r := range reservations {
		out = append(out, *FromDomainReservation(r))
	}
	return &ReservationListResponse{Reservations: out}
}

// ToDomainReservationStatus конвертирует строку в domain статус
func ToDomainReservationStatus(s string) (domain.ReservationStatus, error) {
	status := domain.ReservationStatus(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}
