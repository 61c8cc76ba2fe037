package update_reservation

import (
	"time"

	"github.com/sosuke1217/mobilis-ticket-sub000/internal/domain"
	updateReservation "github.com/sosuke1217/mobilis-ticket-sub000/internal/usecase/update_reservation"
	"github.com/sosuke1217/mobilis-ticket-sub000/pkg/types"
)

// UpdateReservationRequest HTTP request model
// Отсутствующие поля остаются без изменений
type UpdateReservationRequest struct {
	CustomerName *string `json:"customerName,omitempty"`
	Date         *string `json:"date,omitempty"`      // "2025-10-15"
	StartTime    *string `json:"startTime,omitempty"` // "10:00"
	EndTime      *string `json:"endTime,omitempty"`   // "11:00"
	Course       *string `json:"course,omitempty"`

	IndividualIntervalMinutes *int    `json:"individualIntervalMinutes,omitempty"`
	Notes                     *string `json:"notes,omitempty"`
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

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateReservationRequest) ToUseCaseRequest(id int64) (*updateReservation.Request, error) {
	req := &updateReservation.Request{
		ID:                        id,
		CustomerName:              r.CustomerName,
		IndividualIntervalMinutes: r.IndividualIntervalMinutes,
		Notes:                     r.Notes,
	}

	if r.Date != nil {
		date, err := time.Parse(domain.DateFormat, *r.Date)
		if err != nil {
			return nil, err
		}
		req.Date = &date
	}

	if r.StartTime != nil {
		startTime, err := types.NewTimeStringFromString(*r.StartTime)
		if err != nil {
			return nil, err
		}
		req.StartTime = &startTime
	}

	if r.EndTime != nil {
		endTime, err := types.NewTimeStringFromString(*r.EndTime)
		if err != nil {
			return nil, err
		}
		req.EndTime = &endTime
	}

	if r.Course != nil {
		course := domain.Course(*r.Course)
		req.Course = &course
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateReservation.Response) *ReservationResponse {
	return &ReservationResponse{
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
		CreatedAt:                 resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:                 resp.UpdatedAt.Format(time.RFC3339),
	}
}
