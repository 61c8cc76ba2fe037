package create_reservation

import (
	"fmt"
	"time"

	"github.com/sosuke1217/mobilis-ticket-sub000/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if req.EndTime.IsZero() {
		return fmt.Errorf("%w: endTime is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime format: %v", ErrInvalidInput, err)
	}

	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime format: %v", ErrInvalidInput, err)
	}

	if !req.EndTime.IsAfter(req.StartTime) {
		return fmt.Errorf("%w: endTime must be after startTime", ErrInvalidInput)
	}

	// Все записи выровнены по 10-минутной сетке
	if !req.StartTime.AlignedTo(domain.TimeAlignmentMinutes) {
		return fmt.Errorf("%w: startTime must be aligned to %d minutes", ErrInvalidTimeSlot, domain.TimeAlignmentMinutes)
	}

	if !req.EndTime.AlignedTo(domain.TimeAlignmentMinutes) {
		return fmt.Errorf("%w: endTime must be aligned to %d minutes", ErrInvalidTimeSlot, domain.TimeAlignmentMinutes)
	}

	// Перерывы создаются администратором без клиента и курса
	if !req.IsBreak {
		if req.CustomerName == "" {
			return fmt.Errorf("%w: customerName is required", ErrInvalidInput)
		}

		if !req.Course.IsValid() {
			return fmt.Errorf("%w: invalid course", ErrInvalidInput)
		}
	}

	if req.IndividualIntervalMinutes != nil &&
		(*req.IndividualIntervalMinutes < domain.MinReservationIntervalMinutes ||
			*req.IndividualIntervalMinutes > domain.MaxReservationIntervalMinutes) {
		return fmt.Errorf("%w: individualIntervalMinutes must be between %d and %d",
			ErrInvalidInput, domain.MinReservationIntervalMinutes, domain.MaxReservationIntervalMinutes)
	}

	return nil
}

// validateDate проверяет, что дата попадает в окно бронирования
func validateDate(reservationDate time.Time, now time.Time, maxAdvanceBookingDays int) error {
	if isDateInPast(reservationDate, now) {
		return ErrInvalidDate
	}

	maxDate := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).
		AddDate(0, 0, maxAdvanceBookingDays)

	dateOnly := time.Date(reservationDate.Year(), reservationDate.Month(), reservationDate.Day(), 0, 0, 0, 0, reservationDate.Location())

	if dateOnly.After(maxDate) {
		return fmt.Errorf("%w: can only book %d days in advance", ErrDateTooFarInFuture, maxAdvanceBookingDays)
	}

	return nil
}

// validateHours проверяет, что интервал лежит внутри рабочего окна и не
// пересекает перерывы
func validateHours(hours domain.EffectiveHours, req *Request) error {
	if req.StartTime.IsBefore(hours.Start) || req.EndTime.IsAfter(hours.End) {
		return fmt.Errorf("%w: time is outside business hours %s-%s",
			ErrInvalidTimeSlot, hours.Start, hours.End)
	}

	for _, b := range hours.Breaks {
		if b.Overlaps(req.StartTime, req.EndTime) {
			return fmt.Errorf("%w: time overlaps a break %s-%s", ErrInvalidTimeSlot, b.Start, b.End)
		}
	}

	return nil
}

// validateAdvanceNotice проверяет, что запись не нарушает minAdvanceBookingHours
func validateAdvanceNotice(req *Request, now time.Time, minAdvanceBookingHours int) error {
	minAllowedStart := now.Add(time.Duration(minAdvanceBookingHours) * time.Hour)
	if req.StartTime.OnDate(req.Date).Before(minAllowedStart) {
		return fmt.Errorf("%w: must book at least %d hours in advance", ErrTooLateToBook, minAdvanceBookingHours)
	}
	return nil
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
