package update_reservation

import (
	"context"
	"time"

	"github.com/sosuke1217/mobilis-ticket-sub000/internal/domain"
)

// ReservationRepository интерфейс репозитория записей
type ReservationRepository interface {
	// GetByID получает запись; внутри транзакции строка блокируется
	// через FOR UPDATE
	GetByID(ctx context.Context, id int64) (*domain.Reservation, error)
	GetByDate(ctx context.Context, date time.Time, includeInactive bool) ([]*domain.Reservation, error)
	Update(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error)
}

// CalendarProvider источник настроек календаря
type CalendarProvider interface {
	GetOrCreateDefault(ctx context.Context) (*domain.SalonCalendarConfig, error)
}

// OverrideProvider источник переопределений смен по дате
type OverrideProvider interface {
	GetByDate(ctx context.Context, date time.Time) (*domain.ShiftOverride, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier интерфейс отправки событий о записях
type Notifier interface {
	ReservationUpdated(ctx context.Context, res *domain.Reservation)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
