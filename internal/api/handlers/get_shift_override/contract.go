package get_shift_override

import (
	"context"
	"time"

	"github.com/sosuke1217/mobilis-ticket-sub000/internal/service/schedule/models"
)

type ScheduleService interface {
	GetOverride(ctx context.Context, date time.Time) (*models.OverrideResponse, error)
	ListOverrides(ctx context.Context, from, to time.Time) (*models.OverrideListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
