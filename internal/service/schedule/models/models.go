package models

import (
	"strings"
	"time"

	"github.com/sosuke1217/mobilis-ticket-sub000/internal/domain"
)

// FieldError описывает ошибку валидации конкретного поля
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors набор ошибок валидации по полям
// Реализует error, чтобы сервис мог вернуть его обычным значением ошибки
type ValidationErrors []FieldError

// Error возвращает все ошибки одной строкой
func (e ValidationErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Field+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Request модели

// UpdateSettingsRequest запрос на полное обновление настроек календаря
type UpdateSettingsRequest struct {
	BusinessStart              int  `json:"businessStart"`
	BusinessEnd                int  `json:"businessEnd"`
	SlotIntervalMinutes        int  `json:"slotIntervalMinutes"`
	ReservationIntervalMinutes int  `json:"reservationIntervalMinutes"`
	MaxAdvanceBookingDays      int  `json:"maxAdvanceBookingDays"`
	MinAdvanceBookingHours     int  `json:"minAdvanceBookingHours"`
	SundayClosed               bool `json:"sundayClosed"`
}

// ToDomainConfig конвертирует request в domain модель
func (r *UpdateSettingsRequest) ToDomainConfig() *domain.SalonCalendarConfig {
	return &domain.SalonCalendarConfig{
		BusinessStart:              r.BusinessStart,
		BusinessEnd:                r.BusinessEnd,
		SlotIntervalMinutes:        r.SlotIntervalMinutes,
		ReservationIntervalMinutes: r.ReservationIntervalMinutes,
		MaxAdvanceBookingDays:      r.MaxAdvanceBookingDays,
		MinAdvanceBookingHours:     r.MinAdvanceBookingHours,
		SundayClosed:               r.SundayClosed,
	}
}

// BreakPayload перерыв в запросе на переопределение смены
type BreakPayload struct {
	Start string `json:"start"` // "13:00"
	End   string `json:"end"`   // "14:00"
}

// UpsertOverrideRequest запрос на создание или обновление переопределения смены
type UpsertOverrideRequest struct {
	Date      time.Time      `json:"-"`
	ShiftType string         `json:"shiftType"`
	StartTime *string        `json:"startTime,omitempty"` // "10:00"
	EndTime   *string        `json:"endTime,omitempty"`   // "22:00"
	Breaks    []BreakPayload `json:"breaks,omitempty"`
}

// Response модели

// SettingsResponse ответ с настройками календаря
type SettingsResponse struct {
	BusinessStart              int    `json:"businessStart"`
	BusinessEnd                int    `json:"businessEnd"`
	SlotIntervalMinutes        int    `json:"slotIntervalMinutes"`
	ReservationIntervalMinutes int    `json:"reservationIntervalMinutes"`
	MaxAdvanceBookingDays      int    `json:"maxAdvanceBookingDays"`
	MinAdvanceBookingHours     int    `json:"minAdvanceBookingHours"`
	SundayClosed               bool   `json:"sundayClosed"`
	UpdatedAt                  string `json:"updatedAt,omitempty"` // ISO 8601 format
}

// FromDomainConfig конвертирует domain модель в DTO
func FromDomainConfig(cfg *domain.SalonCalendarConfig) *SettingsResponse {
	if cfg == nil {
		return nil
	}

	resp := &SettingsResponse{
		BusinessStart:              cfg.BusinessStart,
		BusinessEnd:                cfg.BusinessEnd,
		SlotIntervalMinutes:        cfg.SlotIntervalMinutes,
		ReservationIntervalMinutes: cfg.ReservationIntervalMinutes,
		MaxAdvanceBookingDays:      cfg.MaxAdvanceBookingDays,
		MinAdvanceBookingHours:     cfg.MinAdvanceBookingHours,
		SundayClosed:               cfg.SundayClosed,
	}

	if !cfg.UpdatedAt.IsZero() {
		resp.UpdatedAt = cfg.UpdatedAt.Format(time.RFC3339)
	}

	return resp
}

// BreakResponse перерыв в ответе
type BreakResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// OverrideResponse ответ с переопределением смены
type OverrideResponse struct {
	Date             string          `json:"date"` // "2025-10-15"
	ShiftType        string          `json:"shiftType"`
	ShiftTypeDisplay string          `json:"shiftTypeDisplay"`
	StartTime        *string         `json:"startTime,omitempty"`
	EndTime          *string         `json:"endTime,omitempty"`
	Breaks           []BreakResponse `json:"breaks"`
	UpdatedAt        string          `json:"updatedAt,omitempty"` // ISO 8601 format
}

// OverrideListResponse ответ со списком переопределений за период
type OverrideListResponse struct {
	Overrides []OverrideResponse `json:"overrides"`
}

// FromDomainOverride конвертирует domain модель в DTO
func FromDomainOverride(o *domain.ShiftOverride) *OverrideResponse {
	if o == nil {
		return nil
	}

	resp := &OverrideResponse{
		Date:             o.Date.Format(domain.DateFormat),
		ShiftType:        string(o.ShiftType),
		ShiftTypeDisplay: o.ShiftType.Display(),
		Breaks:           make([]BreakResponse, 0, len(o.Breaks)),
	}

	if o.StartTime != nil {
		start := o.StartTime.String()
		resp.StartTime = &start
	}

	if o.EndTime != nil {
		end := o.EndTime.String()
		resp.EndTime = &end
	}

	for _, b := range o.Breaks {
		resp.Breaks = append(resp.Breaks, BreakResponse{
			Start: b.Start.String(),
			End:   b.End.String(),
		})
	}

	if !o.UpdatedAt.IsZero() {
		resp.UpdatedAt = o.UpdatedAt.Format(time.RFC3339)
	}

	return resp
}

// FromDomainOverrideList конвертирует список domain моделей в DTO
func FromDomainOverrideList(overrides []*domain.ShiftOverride) *OverrideListResponse {
	out := make([]OverrideResponse, 0, len(overrides))
	for _, o := range overrides {
		out = append(out, *FromDomainOverride(o))
	}
	return &OverrideListResponse{Overrides: out}
}
