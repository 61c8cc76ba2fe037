package update_reservation

import (
	"fmt"
	"time"

	"github.com/sosuke1217/mobilis-ticket-sub000/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ID <= 0 {
		return fmt.Errorf("%w: id must be positive", ErrInvalidInput)
	}

	if req.CustomerName != nil && *req.CustomerName == "" {
		return fmt.Errorf("%w: customerName must not be blank", ErrInvalidInput)
	}

	if req.StartTime != nil {
		if err := req.StartTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
		}
	}

	if req.EndTime != nil {
		if err := req.EndTime.Validate(); err != nil {
			return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
		}
	}

	if req.Course != nil && !req.Course.IsValid() {
		return fmt.Errorf("%w: invalid course", ErrInvalidInput)
	}

	if req.IndividualIntervalMinutes != nil &&
		(*req.IndividualIntervalMinutes < domain.MinReservationIntervalMinutes ||
			*req.IndividualIntervalMinutes > domain.MaxReservationIntervalMinutes) {
		return fmt.Errorf("%w: individualIntervalMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinReservationIntervalMinutes, domain.MaxReservationIntervalMinutes)
	}

	return nil
}

// validateInterval валидирует итоговый интервал записи после применения изменений
func validateInterval(res *domain.Reservation) error {
	if !res.EndTime.IsAfter(res.StartTime) {
		return fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
	}

	if !res.StartTime.AlignedTo(domain.TimeAlignmentMinutes) {
		return fmt.Errorf("%w: startTime must be aligned to %d minutes", ErrInvalidTimeSlot, domain.TimeAlignmentMinutes)
	}

	if !res.EndTime.AlignedTo(domain.TimeAlignmentMinutes) {
		return fmt.Errorf("%w: endTime must be aligned to %d minutes", ErrInvalidTimeSlot, domain.TimeAlignmentMinutes)
	}

	return nil
}

// validateHours проверяет, что интервал лежит внутри рабочего окна и не
// пересекает перерывы
func validateHours(hours domain.EffectiveHours, res *domain.Reservation) error {
	if res.StartTime.IsBefore(hours.Start) || res.EndTime.IsAfter(hours.End) {
		return fmt.Errorf("%w: time is outside business hours %s-%s",
			ErrInvalidTimeSlot, hours.Start, hours.End)
	}

	for _, b := range hours.Breaks {
		if b.Overlaps(res.StartTime, res.EndTime) {
			return fmt.Errorf("%w: time overlaps a break %s-%s", ErrInvalidTimeSlot, b.Start, b.End)
		}
	}

	return nil
}

// validateDate проверяет, что дата попадает в окно бронирования
func validateDate(reservationDate time.Time, now time.Time, maxAdvanceBookingDays int) error {
	dateOnly := time.Date(reservationDate.Year(), reservationDate.Month(), reservationDate.Day(), 0, 0, 0, 0, reservationDate.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if dateOnly.Before(nowOnly) {
		return ErrInvalidDate
	}

	maxDate := nowOnly.AddDate(0, 0, maxAdvanceBookingDays)
	if dateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, maxAdvanceBookingDays)
	}

	return nil
}
