package create_reservation

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_reservation: invalid input data")

	// ErrInvalidDate возвращается при некорректной дате записи (в прошлом)
	ErrInvalidDate = errors.New("create_reservation: invalid reservation date")

	// ErrDateTooFarInFuture возвращается, когда дата превышает ограничение maxAdvanceBookingDays
	ErrDateTooFarInFuture = errors.New("create_reservation: date is too far in the future")

	// ErrTooLateToBook возвращается, когда запись нарушает minAdvanceBookingHours
	ErrTooLateToBook = errors.New("create_reservation: too late to book this slot")

	// ErrSalonClosed возвращается, когда салон закрыт в указанную дату
	ErrSalonClosed = errors.New("create_reservation: salon is closed on this date")

	// ErrInvalidTimeSlot возвращается, когда интервал выходит за рабочие часы,
	// пересекает перерыв или не выровнен по 10-минутной сетке
	ErrInvalidTimeSlot = errors.New("create_reservation: invalid time slot")

	// ErrSlotConflict возвращается при конфликте с существующей записью
	ErrSlotConflict = errors.New("create_reservation: slot conflicts with an existing reservation")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_reservation: internal error")
)
