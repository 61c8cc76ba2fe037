package reservations

import (
	"context"
	"errors"
	"fmt"

	"github.com/sosuke1217/mobilis-ticket-sub000/internal/domain"
	reservationRepo "github.com/sosuke1217/mobilis-ticket-sub000/internal/infra/storage/reservation"
	"github.com/sosuke1217/mobilis-ticket-sub000/internal/service/reservations/models"
)

// Service сервис для работы с жизненным циклом записей
// Создание и перенос времени идут через отдельные usecase со своей
// транзакционной проверкой конфликтов; здесь живут остальные переходы
type Service struct {
	reservationRepo ReservationRepository
	notifier        Notifier
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(
	reservationRepo ReservationRepository,
	notifier Notifier,
	logger Logger,
) *Service {
	return &Service{
		reservationRepo: reservationRepo,
		notifier:        notifier,
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%d", id)

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%d not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched reservation id=%d", id)
	return models.FromDomainReservation(res), nil
}

// List получает записи с гибкой фильтрацией
// Поддерживает фильтрацию по периоду, пользователю, статусу и включению
// отменённых записей
func (s *Service) List(ctx context.Context, req *models.ListReservationsRequest) (*models.ReservationListResponse, error) {
	s.logger.Info("List: fetching reservations, includeInactive=%v", req.IncludeInactive)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	reservations, err := s.reservationRepo.ListWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d reservations", len(reservations))
	return models.FromDomainReservationList(reservations), nil
}

// Cancel отменяет запись с обязательной причиной
// Повторная отмена не перезаписывает отметку времени первой отмены
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelReservationRequest) error {
	s.logger.Info("Cancel: cancelling reservation id=%d", id)

	if req.CancellationReason == "" {
		s.logger.Warn("Cancel: blank cancellation reason for reservation id=%d", id)
		return ErrReasonRequired
	}

	if len(req.CancellationReason) > domain.MaxCancellationReasonLength {
		s.logger.Warn("Cancel: cancellation reason too long for reservation id=%d", id)
		return fmt.Errorf("%w: cancellation reason must not exceed %d characters",
			ErrInvalidInput, domain.MaxCancellationReasonLength)
	}

	res, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if res.IsCancelled() {
		s.logger.Warn("Cancel: reservation id=%d is already cancelled", id)
		return ErrAlreadyCancelled
	}

	if !res.CanBeCancelled() {
		s.logger.Warn("Cancel: reservation id=%d cannot be cancelled, status=%s", id, res.Status)
		return ErrCannotCancel
	}

	if err := s.reservationRepo.Cancel(ctx, id, req.CancellationReason); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Cancel: reservation id=%d not found during cancellation", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Cancel: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled reservation id=%d", id)

	// Перерывы событий не порождают
	if !res.IsBreak {
		s.notifier.ReservationCancelled(ctx, res, req.CancellationReason)
	}

	return nil
}

// UpdateStatus обновляет статус записи
// Отмена идет только через Cancel: ей нужна причина и отметка времени
func (s *Service) UpdateStatus(ctx context.Context, id int64, req *models.UpdateStatusRequest) error {
	s.logger.Info("UpdateStatus: updating reservation id=%d to status=%s", id, req.Status)

	newStatus, err := models.ToDomainReservationStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for reservation id=%d", req.Status, id)
		return fmt.Errorf("%w: %s", ErrInvalidStatus, req.Status)
	}

	if newStatus == domain.StatusCancelled {
		s.logger.Warn("UpdateStatus: cancellation of reservation id=%d must go through Cancel", id)
		return fmt.Errorf("%w: cancellation requires a reason", ErrInvalidStatus)
	}

	if _, err := s.reservationRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("UpdateStatus: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("UpdateStatus: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if err := s.reservationRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("UpdateStatus: reservation id=%d not found during update", id)
			return ErrReservationNotFound
		}
		s.logger.Error("UpdateStatus: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: successfully updated reservation id=%d to status=%s", id, newStatus)
	return nil
}

// Complete помечает запись завершённой
func (s *Service) Complete(ctx context.Context, id int64) error {
	return s.UpdateStatus(ctx, id, &models.UpdateStatusRequest{Status: string(domain.StatusCompleted)})
}

// MarkNoShow помечает запись как неявку
func (s *Service) MarkNoShow(ctx context.Context, id int64) error {
	return s.UpdateStatus(ctx, id, &models.UpdateStatusRequest{Status: string(domain.StatusNoShow)})
}

// Destroy безусловно удаляет запись (жёсткое удаление администратором)
// Статус записи не проверяется
func (s *Service) Destroy(ctx context.Context, id int64) error {
	s.logger.Info("Destroy: deleting reservation id=%d", id)

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Destroy: reservation id=%d not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Destroy: repository error for reservation id=%d: %v", id, err)
		return fmt.Errorf("%w: Destroy - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Destroy: successfully deleted reservation id=%d", id)
	return nil
}
