package update_reservation

import "errors"

var (
	// ErrReservationNotFound возвращается, когда запись не найдена
	ErrReservationNotFound = errors.New("update_reservation: reservation not found")

	// ErrNotUpdatable возвращается, когда запись в терминальном статусе
	// (отменена, завершена или no-show) и не может быть изменена
	ErrNotUpdatable = errors.New("update_reservation: reservation cannot be updated in its current status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_reservation: invalid input data")

	// ErrInvalidDate возвращается при некорректной дате записи (в прошлом)
	ErrInvalidDate = errors.New("update_reservation: invalid reservation date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение maxAdvanceBookingDays
	ErrDateTooFarInFuture = errors.New("update_reservation: date is too far in the future")

	// ErrSalonClosed возвращается, когда салон закрыт в указанную дату
	ErrSalonClosed = errors.New("update_reservation: salon is closed on this date")

	// ErrInvalidTimeSlot возвращается, когда интервал выходит за рабочие часы,
	// пересекает перерыв или не выровнен по 10-минутной сетке
	ErrInvalidTimeSlot = errors.New("update_reservation: invalid time slot")

	// ErrSlotConflict возвращается при конфликте с другой записью
	ErrSlotConflict = errors.New("update_reservation: slot conflicts with an existing reservation")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_reservation: internal error")
)
