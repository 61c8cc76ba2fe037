package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sosuke1217/mobilis-ticket-sub000/internal/domain"
	overrideRepo "github.com/sosuke1217/mobilis-ticket-sub000/internal/infra/storage/shiftoverride"
	"github.com/sosuke1217/mobilis-ticket-sub000/internal/service/schedule/models"
)

// Service сервис для администрирования расписания: настройки календаря
// и переопределения смен по датам
type Service struct {
	calendarRepo  CalendarRepository
	overrideRepo  OverrideRepository
	settingsCache SettingsCacheInvalidator
	overrideCache OverrideCacheInvalidator
	logger        Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	calendarRepo CalendarRepository,
	overrideRepo OverrideRepository,
	settingsCache SettingsCacheInvalidator,
	overrideCache OverrideCacheInvalidator,
	logger Logger,
) *Service {
	return &Service{
		calendarRepo:  calendarRepo,
		overrideRepo:  overrideRepo,
		settingsCache: settingsCache,
		overrideCache: overrideCache,
		logger:        logger,
	}
}

// GetSettings получает настройки календаря
// Отсутствующая строка настроек создается с дефолтами
func (s *Service) GetSettings(ctx context.Context) (*models.SettingsResponse, error) {
	s.logger.Info("GetSettings: fetching calendar settings")

	cfg, err := s.calendarRepo.GetOrCreateDefault(ctx)
	if err != nil {
		s.logger.Error("GetSettings: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetSettings - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainConfig(cfg), nil
}

// UpdateSettings полностью обновляет настройки календаря
// Ошибки валидации возвращаются с привязкой к полям
func (s *Service) UpdateSettings(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	s.logger.Info("UpdateSettings: updating calendar settings: start=%d, end=%d, interval=%d",
		req.BusinessStart, req.BusinessEnd, req.ReservationIntervalMinutes)

	if errs := validateSettings(req); len(errs) > 0 {
		s.logger.Warn("UpdateSettings: validation failed: %v", errs)
		return nil, errs
	}

	updated, err := s.calendarRepo.Update(ctx, req.ToDomainConfig())
	if err != nil {
		s.logger.Error("UpdateSettings: repository error: %v", err)
		return nil, fmt.Errorf("%w: UpdateSettings - repository error: %v", ErrInternal, err)
	}

	// Кэш сбрасывается после фиксации, чтобы читатели не успели
	// перезаписать его старым значением
	s.settingsCache.Invalidate(ctx)

	s.logger.Info("UpdateSettings: successfully updated calendar settings")
	return models.FromDomainConfig(updated), nil
}

// GetOverride получает переопределение смены на дату
func (s *Service) GetOverride(ctx context.Context, date time.Time) (*models.OverrideResponse, error) {
	s.logger.Info("GetOverride: fetching override for date=%s", date.Format(domain.DateFormat))

	override, err := s.overrideRepo.GetByDate(ctx, date)
	if err != nil {
		if errors.Is(err, overrideRepo.ErrOverrideNotFound) {
			s.logger.Warn("GetOverride: no override for date=%s", date.Format(domain.DateFormat))
			return nil, ErrOverrideNotFound
		}
		s.logger.Error("GetOverride: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: GetOverride - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainOverride(override), nil
}

// ListOverrides получает переопределения смен за период
func (s *Service) ListOverrides(ctx context.Context, from, to time.Time) (*models.OverrideListResponse, error) {
	s.logger.Info("ListOverrides: fetching overrides from=%s to=%s",
		from.Format(domain.DateFormat), to.Format(domain.DateFormat))

	if to.Before(from) {
		s.logger.Warn("ListOverrides: invalid period from=%s to=%s",
			from.Format(domain.DateFormat), to.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: period end must not precede period start", ErrInvalidInput)
	}

	overrides, err := s.overrideRepo.GetByDateRange(ctx, from, to)
	if err != nil {
		s.logger.Error("ListOverrides: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListOverrides - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListOverrides: successfully fetched %d overrides", len(overrides))
	return models.FromDomainOverrideList(overrides), nil
}

// UpsertOverride создает или обновляет переопределение смены на дату
// На дату существует не более одного переопределения
func (s *Service) UpsertOverride(ctx context.Context, req *models.UpsertOverrideRequest) (*models.OverrideResponse, error) {
	s.logger.Info("UpsertOverride: upserting override for date=%s, shiftType=%s",
		req.Date.Format(domain.DateFormat), req.ShiftType)

	override, errs := buildOverride(req)
	if len(errs) > 0 {
		s.logger.Warn("UpsertOverride: validation failed: %v", errs)
		return nil, errs
	}

	saved, err := s.overrideRepo.Upsert(ctx, override)
	if err != nil {
		s.logger.Error("UpsertOverride: repository error for date=%s: %v",
			req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: UpsertOverride - repository error: %v", ErrInternal, err)
	}

	s.overrideCache.Invalidate(ctx, req.Date)

	s.logger.Info("UpsertOverride: successfully upserted override for date=%s",
		req.Date.Format(domain.DateFormat))
	return models.FromDomainOverride(saved), nil
}

// DeleteOverride удаляет переопределение смены на дату
func (s *Service) DeleteOverride(ctx context.Context, date time.Time) error {
	s.logger.Info("DeleteOverride: deleting override for date=%s", date.Format(domain.DateFormat))

	if err := s.overrideRepo.Delete(ctx, date); err != nil {
		if errors.Is(err, overrideRepo.ErrOverrideNotFound) {
			s.logger.Warn("DeleteOverride: no override for date=%s", date.Format(domain.DateFormat))
			return ErrOverrideNotFound
		}
		s.logger.Error("DeleteOverride: repository error for date=%s: %v", date.Format(domain.DateFormat), err)
		return fmt.Errorf("%w: DeleteOverride - repository error: %v", ErrInternal, err)
	}

	s.overrideCache.Invalidate(ctx, date)

	s.logger.Info("DeleteOverride: successfully deleted override for date=%s", date.Format(domain.DateFormat))
	return nil
}
