package shiftoverride

import "errors"

var (
	// ErrOverrideNotFound возвращается, когда на дату нет переопределения смены
	ErrOverrideNotFound = errors.New("shiftoverride.repository: override not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("shiftoverride.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("shiftoverride.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("shiftoverride.repository: failed to scan row")

	// ErrEncodeBreaks возвращается при ошибке сериализации перерывов в JSON
	ErrEncodeBreaks = errors.New("shiftoverride.repository: failed to encode breaks")
)
