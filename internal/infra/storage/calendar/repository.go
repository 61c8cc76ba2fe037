package calendar

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/sosuke1217/mobilis-ticket-sub000/internal/domain"
	"github.com/sosuke1217/mobilis-ticket-sub000/pkg/dbtx"
	"github.com/sosuke1217/mobilis-ticket-sub000/pkg/psqlbuilder"
)

// singletonID id единственной строки настроек (enforced CHECK-ом в схеме)
const singletonID = 1

var configColumns = []string{
	"id",
	"business_start",
	"business_end",
	"slot_interval_minutes",
	"reservation_interval_minutes",
	"max_advance_booking_days",
	"min_advance_booking_hours",
	"sunday_closed",
	"created_at",
	"updated_at",
}

// Repository репозиторий настроек календаря (singleton-строка)
type Repository struct {
	db dbtx.Executor
}

// NewRepository создает новый экземпляр репозитория настроек
func NewRepository(db dbtx.Executor) *Repository {
	return &Repository{db: db}
}

// Get получает строку настроек
// Возвращает ErrConfigNotFound, если строка ещё не создана
func (r *Repository) Get(ctx context.Context) (*domain.SalonCalendarConfig, error) {
	executor := dbtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(configColumns...).
		From("salon_settings").
		Where(squirrel.Eq{"id": singletonID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Get - build select query: %v", ErrBuildQuery, err)
	}

	cfg, err := r.scanConfig(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - scan config: %v", ErrScanRow, err)
	}

	return cfg, nil
}

// GetOrCreateDefault получает настройки, создавая дефолтную строку при её отсутствии
// ON CONFLICT DO NOTHING защищает от гонки двух одновременных инициализаций
func (r *Repository) GetOrCreateDefault(ctx context.Context) (*domain.SalonCalendarConfig, error) {
	cfg, err := r.Get(ctx)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, ErrConfigNotFound) {
		return nil, err
	}

	def := domain.DefaultCalendarConfig()

	executor := dbtx.GetExecutor(ctx, r.db)
	query, args, err := psqlbuilder.Insert("salon_settings").
		Columns(
			"id",
			"business_start",
			"business_end",
			"slot_interval_minutes",
			"reservation_interval_minutes",
			"max_advance_booking_days",
			"min_advance_booking_hours",
			"sunday_closed",
		).
		Values(
			singletonID,
			def.BusinessStart,
			def.BusinessEnd,
			def.SlotIntervalMinutes,
			def.ReservationIntervalMinutes,
			def.MaxAdvanceBookingDays,
			def.MinAdvanceBookingHours,
			def.SundayClosed,
		).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetOrCreateDefault - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return nil, fmt.Errorf("%w: GetOrCreateDefault - execute insert: %v", ErrExecQuery, err)
	}

	return r.Get(ctx)
}

// Update обновляет строку настроек in place
func (r *Repository) Update(ctx context.Context, cfg *domain.SalonCalendarConfig) (*domain.SalonCalendarConfig, error) {
	executor := dbtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("salon_settings").
		Set("business_start", cfg.BusinessStart).
		Set("business_end", cfg.BusinessEnd).
		Set("slot_interval_minutes", cfg.SlotIntervalMinutes).
		Set("reservation_interval_minutes", cfg.ReservationIntervalMinutes).
		Set("max_advance_booking_days", cfg.MaxAdvanceBookingDays).
		Set("min_advance_booking_hours", cfg.MinAdvanceBookingHours).
		Set("sunday_closed", cfg.SundayClosed).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": singletonID}).
		Suffix("RETURNING updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrConfigNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Update - execute update: %v", ErrExecQuery, err)
	}

	cfg.ID = singletonID
	cfg.UpdatedAt = updatedAt.Time
	return cfg, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *Repository) scanConfig(row rowScanner) (*domain.SalonCalendarConfig, error) {
	var cfg domain.SalonCalendarConfig
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&cfg.ID,
		&cfg.BusinessStart,
		&cfg.BusinessEnd,
		&cfg.SlotIntervalMinutes,
		&cfg.ReservationIntervalMinutes,
		&cfg.MaxAdvanceBookingDays,
		&cfg.MinAdvanceBookingHours,
		&cfg.SundayClosed,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	cfg.CreatedAt = createdAt.Time
	cfg.UpdatedAt = updatedAt.Time
	return &cfg, nil
}
