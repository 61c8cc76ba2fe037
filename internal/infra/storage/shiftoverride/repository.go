package shiftoverride

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/sosuke1217/mobilis-ticket-sub000/internal/domain"
	"github.com/sosuke1217/mobilis-ticket-sub000/pkg/dbtx"
	"github.com/sosuke1217/mobilis-ticket-sub000/pkg/psqlbuilder"
	"github.com/sosuke1217/mobilis-ticket-sub000/pkg/types"
)

var overrideColumns = []string{
	"id",
	"override_date",
	"shift_type",
	"start_time",
	"end_time",
	"breaks",
	"created_at",
	"updated_at",
}

// Repository репозиторий переопределений смен (не более одного на дату)
type Repository struct {
	db dbtx.Executor
}

// NewRepository создает новый экземпляр репозитория переопределений
func NewRepository(db dbtx.Executor) *Repository {
	return &Repository{db: db}
}

// GetByDate получает переопределение смены на дату
// Возвращает ErrOverrideNotFound, если переопределения нет
func (r *Repository) GetByDate(ctx context.Context, date time.Time) (*domain.ShiftOverride, error) {
	executor := dbtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(overrideColumns...).
		From("shift_overrides").
		Where(squirrel.Eq{"override_date": date}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - build select query: %v", ErrBuildQuery, err)
	}

	override, err := scanOverride(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrOverrideNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDate - scan override: %v", ErrScanRow, err)
	}

	return override, nil
}

// GetByDateRange получает переопределения за период для админского календаря
func (r *Repository) GetByDateRange(ctx context.Context, from, to time.Time) ([]*domain.ShiftOverride, error) {
	executor := dbtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(overrideColumns...).
		From("shift_overrides").
		Where(squirrel.GtOrEq{"override_date": from}).
		Where(squirrel.LtOrEq{"override_date": to}).
		OrderBy("override_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	overrides := make([]*domain.ShiftOverride, 0)
	for rows.Next() {
		override, err := scanOverride(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: GetByDateRange - scan row: %v", ErrScanRow, err)
		}
		overrides = append(overrides, override)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetByDateRange - rows error: %v", ErrScanRow, err)
	}

	return overrides, nil
}

// Upsert создает или обновляет переопределение на дату
// Уникальность даты обеспечивается constraint-ом override_date
func (r *Repository) Upsert(ctx context.Context, override *domain.ShiftOverride) (*domain.ShiftOverride, error) {
	executor := dbtx.GetExecutor(ctx, r.db)

	breaksJSON, err := json.Marshal(override.Breaks)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - marshal breaks: %v", ErrEncodeBreaks, err)
	}

	query, args, err := psqlbuilder.Insert("shift_overrides").
		Columns(
			"override_date",
			"shift_type",
			"start_time",
			"end_time",
			"breaks",
		).
		Values(
			override.Date,
			override.ShiftType,
			override.StartTime,
			override.EndTime,
			breaksJSON,
		).
		Suffix(`ON CONFLICT (override_date) DO UPDATE SET
			shift_type = EXCLUDED.shift_type,
			start_time = EXCLUDED.start_time,
			end_time = EXCLUDED.end_time,
			breaks = EXCLUDED.breaks,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&override.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	override.CreatedAt = createdAt.Time
	override.UpdatedAt = updatedAt.Time

	return override, nil
}

// Delete удаляет переопределение на дату
func (r *Repository) Delete(ctx context.Context, date time.Time) error {
	executor := dbtx.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("shift_overrides").
		Where(squirrel.Eq{"override_date": date}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrOverrideNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOverride(row rowScanner) (*domain.ShiftOverride, error) {
	var override domain.ShiftOverride
	var startTime, endTime sql.NullString
	var breaksJSON []byte
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&override.ID,
		&override.Date,
		&override.ShiftType,
		&startTime,
		&endTime,
		&breaksJSON,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if startTime.Valid {
		ts := truncateTime(startTime.String)
		override.StartTime = &ts
	}
	if endTime.Valid {
		ts := truncateTime(endTime.String)
		override.EndTime = &ts
	}

	if len(breaksJSON) > 0 {
		if err := json.Unmarshal(breaksJSON, &override.Breaks); err != nil {
			return nil, err
		}
	}

	override.CreatedAt = createdAt.Time
	override.UpdatedAt = updatedAt.Time

	return &override, nil
}

// truncateTime обрезает секунды из значения TIME-колонки ("10:00:00" -> "10:00")
func truncateTime(s string) types.TimeString {
	if len(s) > 5 {
		s = s[:5]
	}
	return types.TimeString(s)
}
