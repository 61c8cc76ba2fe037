package create_reservation

import (
	"time"

	"github.com/sosuke1217/mobilis-ticket-sub000/internal/domain"
	"github.com/sosuke1217/mobilis-ticket-sub000/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	UserID       *int64           // Идентификатор пользователя (nil для записей без аккаунта)
	TicketID     *int64           // Идентификатор тикета, который потребляет визит
	CustomerName string           // Имя клиента (обязательно, кроме перерывов)
	Date         time.Time        // Дата записи (без времени)
	StartTime    types.TimeString // Время начала, кратное 10 минутам
	EndTime      types.TimeString // Время окончания, кратное 10 минутам
	Course       domain.Course    // Курс, определяющий длительность (обязателен, кроме перерывов)
	Confirmed    bool             // Создать сразу со статусом confirmed вместо tentative

	IndividualIntervalMinutes *int    // Индивидуальный буфер вместо глобального
	IsBreak                   bool    // Перерыв: блокирующий интервал без клиента
	Notes                     *string // Заметки администратора

	Recurring      bool       // Повторяющаяся запись (хранится, не разворачивается)
	RecurringType  *string    // Тип повторения
	RecurringUntil *time.Time // Дата окончания повторений
}

// Response модель ответа с созданной записью
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

	Recurring      bool
	RecurringType  *string
	RecurringUntil *time.Time

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
		Recurring:                 res.Recurring,
		RecurringType:             res.RecurringType,
		RecurringUntil:            res.RecurringUntil,
		CreatedAt:                 res.CreatedAt,
		UpdatedAt:                 res.UpdatedAt,
	}
}
