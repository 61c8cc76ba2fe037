package update_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/sosuke1217/mobilis-ticket-sub000/internal/domain"
	reservationRepo "github.com/sosuke1217/mobilis-ticket-sub000/internal/infra/storage/reservation"
	overrideRepo "github.com/sosuke1217/mobilis-ticket-sub000/internal/infra/storage/shiftoverride"
)

// UseCase use case для изменения записи (перенос времени, смена курса)
type UseCase struct {
	reservationRepo  ReservationRepository
	calendarProvider CalendarProvider
	overrideProvider OverrideProvider
	txManager        TransactionManager
	notifier         Notifier
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	calendarProvider CalendarProvider,
	overrideProvider OverrideProvider,
	txManager TransactionManager,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo:  reservationRepo,
		calendarProvider: calendarProvider,
		overrideProvider: overrideProvider,
		txManager:        txManager,
		notifier:         notifier,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case изменения записи
// Конфликты проверяются заново с исключением самой записи; чтение и
// сохранение идут в одной сериализуемой транзакции, как и при создании
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateReservation: id=%d", req.ID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	var result *domain.Reservation
	timeChanged := req.Date != nil || req.StartTime != nil || req.EndTime != nil

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем запись с блокировкой (FOR UPDATE)
		res, err := uc.reservationRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, reservationRepo.ErrReservationNotFound) {
				uc.logger.Warn("UpdateReservation: reservation id=%d not found", req.ID)
				return ErrReservationNotFound
			}
			uc.logger.Error("UpdateReservation: failed to get reservation id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to get reservation: %v", ErrInternal, err)
		}

		// 3.2. Терминальные статусы изменению не подлежат
		if !res.CanBeUpdated() {
			uc.logger.Warn("UpdateReservation: reservation id=%d in status=%s cannot be updated",
				req.ID, res.Status)
			return ErrNotUpdatable
		}

		// 3.3. Применяем изменения и валидируем итоговый интервал
		applyChanges(res, req)

		if err := validateInterval(res); err != nil {
			uc.logger.Warn("UpdateReservation: interval validation failed: %v", err)
			return err
		}

		// 3.4. При изменении времени проверяем рабочие часы и конфликты заново
		if timeChanged {
			cfg, err := uc.calendarProvider.GetOrCreateDefault(txCtx)
			if err != nil {
				uc.logger.Error("UpdateReservation: failed to get calendar config: %v", err)
				return fmt.Errorf("%w: failed to get calendar config: %v", ErrInternal, err)
			}

			override, err := uc.overrideProvider.GetByDate(txCtx, res.Date)
			if err != nil && !errors.Is(err, overrideRepo.ErrOverrideNotFound) {
				uc.logger.Error("UpdateReservation: failed to get shift override: %v", err)
				return fmt.Errorf("%w: failed to get shift override: %v", ErrInternal, err)
			}

			hours := domain.ResolveEffectiveHours(cfg, override, res.Date)
			if hours.Closed {
				uc.logger.Warn("UpdateReservation: salon is closed on %s", res.Date.Format(domain.DateFormat))
				return ErrSalonClosed
			}

			if err := validateHours(hours, res); err != nil {
				uc.logger.Warn("UpdateReservation: hours validation failed: %v", err)
				return err
			}

			if !res.IsBreak {
				if err := validateDate(res.Date, now, cfg.MaxAdvanceBookingDays); err != nil {
					uc.logger.Warn("UpdateReservation: date validation failed: %v", err)
					return err
				}
			}

			// Записи нового дня читаются с блокировкой (FOR UPDATE)
			reservations, err := uc.reservationRepo.GetByDate(txCtx, res.Date, false)
			if err != nil {
				uc.logger.Error("UpdateReservation: failed to get reservations: %v", err)
				return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
			}

			if conflict := domain.FindConflict(reservations, res.StartTime, res.EndTime, cfg.ReservationIntervalMinutes, &res.ID); conflict != nil {
				uc.logger.Warn("UpdateReservation: slot %s-%s conflicts with reservation id=%d (%s-%s)",
					res.StartTime, res.EndTime, conflict.ID, conflict.StartTime, conflict.EndTime)
				return ErrSlotConflict
			}
		}

		// 3.5. Сохраняем изменения
		updated, err := uc.reservationRepo.Update(txCtx, res)
		if err != nil {
			uc.logger.Error("UpdateReservation: failed to update reservation id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to update reservation: %v", ErrInternal, err)
		}

		result = updated
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateReservation: successfully updated reservation id=%d", result.ID)

	// 4. Уведомление о переносе отправляется после фиксации транзакции
	if timeChanged && !result.IsBreak {
		uc.notifier.ReservationUpdated(ctx, result)
	}

	return toResponse(result), nil
}
