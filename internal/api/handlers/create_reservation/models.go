package create_reservation

import (
	"time"

	"github.com/sosuke1217/mobilis-ticket-sub000/internal/domain"
	createReservation "github.com/sosuke1217/mobilis-ticket-sub000/internal/usecase/create_reservation"
	"github.com/sosuke1217/mobilis-ticket-sub000/pkg/types"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	UserID       *int64 `json:"userId,omitempty"`
	TicketID     *int64 `json:"ticketId,omitempty"`
	CustomerName string `json:"customerName"`
	Date         string `json:"date"`      // "2025-10-15"
	StartTime    string `json:"startTime"` // "10:00"
	EndTime      string `json:"endTime"`   // "11:00"
	Course       string `json:"course,omitempty"`
	Confirmed    bool   `json:"confirmed,omitempty"`

	IndividualIntervalMinutes *int    `json:"individualIntervalMinutes,omitempty"`
	IsBreak                   bool    `json:"isBreak,omitempty"`
	Notes                     *string `json:"notes,omitempty"`

	Recurring      bool    `json:"recurring,omitempty"`
	RecurringType  *string `json:"recurringType,omitempty"`
	RecurringUntil *string `json:"recurringUntil,omitempty"` // "2025-12-31"
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID           int64  `json:"id"`
	UserID       *int64 `json:"userId,omitempty"`
	TicketID     *int64 `json:"ticketId,omitempty"`
	CustomerName string `json:"customerName"`
	Date         string `json:"date"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	Course       string `json:"course,omitempty"`
	Status       string `json:"status"`

	IndividualIntervalMinutes *int    `json:"individualIntervalMinutes,omitempty"`
	IsBreak                   bool    `json:"isBreak"`
	Notes                     *string `json:"notes,omitempty"`

	Recurring      bool    `json:"recurring,omitempty"`
	RecurringType  *string `json:"recurringType,omitempty"`
	RecurringUntil *string `json:"recurringUntil,omitempty"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	req := &createReservation.Request{
		UserID:                    r.UserID,
		TicketID:                  r.TicketID,
		CustomerName:              r.CustomerName,
		Date:                      date,
		StartTime:                 startTime,
		EndTime:                   endTime,
		Course:                    domain.Course(r.Course),
		Confirmed:                 r.Confirmed,
		IndividualIntervalMinutes: r.IndividualIntervalMinutes,
		IsBreak:                   r.IsBreak,
		Notes:                     r.Notes,
		Recurring:                 r.Recurring,
		RecurringType:             r.RecurringType,
	}

	if r.RecurringUntil != nil {
		until, err := time.Parse(domain.DateFormat, *r.RecurringUntil)
		if err != nil {
			return nil, err
		}
		req.RecurringUntil = &until
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response) *ReservationResponse {
	out := &ReservationResponse{
		ID:                        resp.ID,
		UserID:                    resp.UserID,
		TicketID:                  resp.TicketID,
		CustomerName:              resp.CustomerName,
		Date:                      resp.Date.Format(domain.DateFormat),
		StartTime:                 resp.StartTime.String(),
		EndTime:                   resp.EndTime.String(),
		Course:                    resp.Course,
		Status:                    resp.Status,
		IndividualIntervalMinutes: resp.IndividualIntervalMinutes,
		IsBreak:                   resp.IsBreak,
		Notes:                     resp.Notes,
		Recurring:                 resp.Recurring,
		RecurringType:             resp.RecurringType,
		CreatedAt:                 resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:                 resp.UpdatedAt.Format(time.RFC3339),
	}

	if resp.RecurringUntil != nil {
		until := resp.RecurringUntil.Format(domain.DateFormat)
		out.RecurringUntil = &until
	}

	return out
}
