package update_reservation

import (
	"time"

	"github.com/sosuke1217/mobilis-ticket-sub000/internal/domain"
	"github.com/sosuke1217/mobilis-ticket-sub000/pkg/types"
)

// Request модель запроса на изменение записи
// Nil-поля остаются без изменений (частичное обновление)
type Request struct {
	ID int64

	CustomerName *string
	Date         *time.Time
	StartTime    *types.TimeString
	EndTime      *types.TimeString
	Course       *domain.Course

	IndividualIntervalMinutes *int
	Notes                     *string
}

// Response модель ответа с обновленной записью
type Response struct {
	ID           int64
	UserID       *int64
	TicketID     *int64
	CustomerName string
	Date         time.Time
	StartTime    types.TimeString
	EndTime      types.TimeString
	Course       string
	Status       string

	IndividualIntervalMinutes *int
	IsBreak                   bool
	Notes                     *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func toResponse(res *domain.Reservation) *Response {
	return &Response{
		ID:                        res.ID,
		UserID:                    res.UserID,
		TicketID:                  res.TicketID,
		CustomerName:              res.CustomerName,
		Date:                      res.Date,
		StartTime:                 res.StartTime,
		EndTime:                   res.EndTime,
		Course:                    string(res.Course),
		Status:                    string(res.Status),
		IndividualIntervalMinutes: res.IndividualIntervalMinutes,
		IsBreak:                   res.IsBreak,
		Notes:                     res.Notes,
		CreatedAt:                 res.CreatedAt,
		UpdatedAt:                 res.UpdatedAt,
	}
}

// applyChanges переносит непустые поля запроса в запись
func applyChanges(res *domain.Reservation, req *Request) {
	if req.CustomerName != nil {
		res.CustomerName = *req.CustomerName
	}
	if req.Date != nil {
		res.Date = *req.Date
	}
	if req.StartTime != nil {
		res.StartTime = *req.StartTime
	}
	if req.EndTime != nil {
		res.EndTime = *req.EndTime
	}
	if req.Course != nil {
		res.Course = *req.Course
	}
	if req.IndividualIntervalMinutes != nil {
		res.IndividualIntervalMinutes = req.IndividualIntervalMinutes
	}
	if req.Notes != nil {
		res.Notes = req.Notes
	}
}
