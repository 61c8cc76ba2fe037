package get_available_slots

import (
	"context"
	"time"

	"github.com/sosuke1217/mobilis-ticket-sub000/internal/domain"
)

// ReservationRepository интерфейс репозитория записей
type ReservationRepository interface {
	// GetByDate получает все записи на конкретную дату
	GetByDate(ctx context.Context, date time.Time, includeInactive bool) ([]*domain.Reservation, error)
}

// CalendarProvider источник настроек календаря
// Отсутствующая строка настроек лечится созданием дефолтной, наружу
// ошибка "не найдено" не выходит
type CalendarProvider interface {
	GetOrCreateDefault(ctx context.Context) (*domain.SalonCalendarConfig, error)
}

// OverrideProvider источник переопределений смен по дате
type OverrideProvider interface {
	GetByDate(ctx context.Context, date time.Time) (*domain.ShiftOverride, error)
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
