package schedule

import "errors"

var (
	// ErrOverrideNotFound возвращается, когда на дату нет переопределения смены
	ErrOverrideNotFound = errors.New("shift override not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
