package schedule

import (
	"context"
	"time"

	"github.com/sosuke1217/mobilis-ticket-sub000/internal/domain"
)

// CalendarRepository интерфейс репозитория настроек календаря
type CalendarRepository interface {
	GetOrCreateDefault(ctx context.Context) (*domain.SalonCalendarConfig, error)
	Update(ctx context.Context, cfg *domain.SalonCalendarConfig) (*domain.SalonCalendarConfig, error)
}

// OverrideRepository интерфейс репозитория переопределений смен
type OverrideRepository interface {
	GetByDate(ctx context.Context, date time.Time) (*domain.ShiftOverride, error)
	GetByDateRange(ctx context.Context, from, to time.Time) ([]*domain.ShiftOverride, error)
	Upsert(ctx context.Context, override *domain.ShiftOverride) (*domain.ShiftOverride, error)
	Delete(ctx context.Context, date time.Time) error
}

// SettingsCacheInvalidator сбрасывает кэш настроек после записи
type SettingsCacheInvalidator interface {
	Invalidate(ctx context.Context)
}

// OverrideCacheInvalidator сбрасывает кэш переопределения на дату после записи
type OverrideCacheInvalidator interface {
	Invalidate(ctx context.Context, date time.Time)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
