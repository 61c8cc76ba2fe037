package create_reservation

import (
	"context"
	"errors"
	"fmt"

	"github.com/sosuke1217/mobilis-ticket-sub000/internal/domain"
	overrideRepo "github.com/sosuke1217/mobilis-ticket-sub000/internal/infra/storage/shiftoverride"
)

// UseCase use case для создания записи
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

// Execute выполняет use case создания записи
// Проверка конфликтов и сохранение выполняются в одной сериализуемой
// транзакции: повторное чтение записей дня идет с блокировкой FOR UPDATE,
// поэтому два параллельных запроса на один интервал не пройдут оба
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: customer=%q, date=%s, time=%s-%s, isBreak=%v",
		req.CustomerName, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime, req.IsBreak)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	var result *domain.Reservation

	// 3. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Получаем настройки календаря
		cfg, err := uc.calendarProvider.GetOrCreateDefault(txCtx)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get calendar config: %v", err)
			return fmt.Errorf("%w: failed to get calendar config: %v", ErrInternal, err)
		}

		// 3.2. Получаем переопределение смены на дату
		override, err := uc.overrideProvider.GetByDate(txCtx, req.Date)
		if err != nil && !errors.Is(err, overrideRepo.ErrOverrideNotFound) {
			uc.logger.Error("CreateReservation: failed to get shift override: %v", err)
			return fmt.Errorf("%w: failed to get shift override: %v", ErrInternal, err)
		}

		// 3.3. Резолвим рабочие часы и проверяем интервал
		hours := domain.ResolveEffectiveHours(cfg, override, req.Date)
		if hours.Closed {
			uc.logger.Warn("CreateReservation: salon is closed on %s", req.Date.Format(domain.DateFormat))
			return ErrSalonClosed
		}

		if err := validateHours(hours, req); err != nil {
			uc.logger.Warn("CreateReservation: hours validation failed: %v", err)
			return err
		}

		// 3.4. Окно бронирования не применяется к перерывам: их создает
		// администратор, в том числе задним числом на сегодня
		if !req.IsBreak {
			if err := validateDate(req.Date, now, cfg.MaxAdvanceBookingDays); err != nil {
				uc.logger.Warn("CreateReservation: date validation failed: %v", err)
				return err
			}

			if err := validateAdvanceNotice(req, now, cfg.MinAdvanceBookingHours); err != nil {
				uc.logger.Warn("CreateReservation: advance notice validation failed: %v", err)
				return err
			}
		}

		// 3.5. Получаем активные записи на дату с блокировкой (FOR UPDATE)
		reservations, err := uc.reservationRepo.GetByDate(txCtx, req.Date, false)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to get reservations: %v", err)
			return fmt.Errorf("%w: failed to get reservations: %v", ErrInternal, err)
		}

		// 3.6. Проверяем конфликт с учетом буферов существующих записей
		if conflict := domain.FindConflict(reservations, req.StartTime, req.EndTime, cfg.ReservationIntervalMinutes, nil); conflict != nil {
			uc.logger.Warn("CreateReservation: slot %s-%s conflicts with reservation id=%d (%s-%s)",
				req.StartTime, req.EndTime, conflict.ID, conflict.StartTime, conflict.EndTime)
			return ErrSlotConflict
		}

		// 3.7. Создаем запись
		status := domain.StatusTentative
		if req.Confirmed || req.IsBreak {
			status = domain.StatusConfirmed
		}

		res := &domain.Reservation{
			UserID:                    req.UserID,
			TicketID:                  req.TicketID,
			CustomerName:              req.CustomerName,
			Date:                      req.Date,
			StartTime:                 req.StartTime,
			EndTime:                   req.EndTime,
			Course:                    req.Course,
			Status:                    status,
			IndividualIntervalMinutes: req.IndividualIntervalMinutes,
			IsBreak:                   req.IsBreak,
			Notes:                     req.Notes,
			Recurring:                 req.Recurring,
			RecurringType:             req.RecurringType,
			RecurringUntil:            req.RecurringUntil,
		}

		created, err := uc.reservationRepo.Create(txCtx, res)
		if err != nil {
			uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
			return fmt.Errorf("%w: failed to create reservation: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateReservation: successfully created reservation id=%d, status=%s",
		result.ID, result.Status)

	// 4. Уведомление отправляется после фиксации транзакции; перерывы
	// событий не порождают
	if !result.IsBreak {
		uc.notifier.ReservationCreated(ctx, result)
	}

	return toResponse(result), nil
}
