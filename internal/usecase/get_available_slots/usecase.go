package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/sosuke1217/mobilis-ticket-sub000/internal/domain"
	overrideRepo "github.com/sosuke1217/mobilis-ticket-sub000/internal/infra/storage/shiftoverride"
)

// UseCase use case для получения доступных слотов для записи
type UseCase struct {
	reservationRepo  ReservationRepository
	calendarProvider CalendarProvider
	overrideProvider OverrideProvider
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	calendarProvider CalendarProvider,
	overrideProvider OverrideProvider,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo:  reservationRepo,
		calendarProvider: calendarProvider,
		overrideProvider: overrideProvider,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case получения доступных слотов
// Чистая функция от даты и текущего состояния записей: повторный вызов
// без промежуточных записей дает идентичный результат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: date=%s, duration=%d",
		req.Date.Format(domain.DateFormat), req.DurationMinutes)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем настройки календаря (создаются с дефолтами при отсутствии)
	cfg, err := uc.calendarProvider.GetOrCreateDefault(ctx)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get calendar config: %v", err)
		return nil, fmt.Errorf("%w: failed to get calendar config: %v", ErrInternal, err)
	}

	// 4. Валидация даты с учетом окна бронирования
	if err := validateDate(req.Date, now, cfg.MaxAdvanceBookingDays); err != nil {
		uc.logger.Warn("GetAvailableSlots: date validation failed: %v", err)
		return nil, err
	}

	// 5. Получаем переопределение смены на дату (если есть)
	override, err := uc.overrideProvider.GetByDate(ctx, req.Date)
	if err != nil && !errors.Is(err, overrideRepo.ErrOverrideNotFound) {
		uc.logger.Error("GetAvailableSlots: failed to get shift override: %v", err)
		return nil, fmt.Errorf("%w: failed to get shift override: %v", ErrInternal, err)
	}

	// 6. Резолвим рабочие часы на дату
	hours := domain.ResolveEffectiveHours(cfg, override, req.Date)
	if hours.Closed {
		uc.logger.Info("GetAvailableSlots: salon is closed on %s", req.Date.Format(domain.DateFormat))
		return &Response{
			Date:            req.Date,
			DurationMinutes: req.DurationMinutes,
			Slots:           []Slot{},
		}, nil
	}

	// 7. Получаем активные записи на дату
	reservations, err := uc.reservationRepo.GetByDate(ctx, req.Date, false)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
	}

	// 8. Генерируем слоты
	slots, err := generateSlots(hours, req.DurationMinutes, req.Date, now, reservations, cfg)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: generated %d slots for date=%s, duration=%d",
		len(slots), req.Date.Format(domain.DateFormat), req.DurationMinutes)

	return &Response{
		Date:            req.Date,
		DurationMinutes: req.DurationMinutes,
		Slots:           slots,
	}, nil
}
