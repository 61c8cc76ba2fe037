package schedule

import (
	"fmt"

	"github.com/sosuke1217/mobilis-ticket-sub000/internal/domain"
	"github.com/sosuke1217/mobilis-ticket-sub000/internal/service/schedule/models"
	"github.com/sosuke1217/mobilis-ticket-sub000/pkg/types"
)

// validateSettings проверяет настройки календаря и собирает ошибки по полям
func validateSettings(req *models.UpdateSettingsRequest) models.ValidationErrors {
	var errs models.ValidationErrors

	if req.BusinessStart < domain.MinBusinessHour || req.BusinessStart > domain.MaxBusinessHour-1 {
		errs = append(errs, models.FieldError{
			Field:   "businessStart",
			Message: fmt.Sprintf("must be between %d and %d", domain.MinBusinessHour, domain.MaxBusinessHour-1),
		})
	}

	if req.BusinessEnd > domain.MaxBusinessHour {
		errs = append(errs, models.FieldError{
			Field:   "businessEnd",
			Message: fmt.Sprintf("must not exceed %d", domain.MaxBusinessHour),
		})
	} else if req.BusinessEnd <= req.BusinessStart {
		errs = append(errs, models.FieldError{
			Field:   "businessEnd",
			Message: "must be after businessStart",
		})
	}

	if !isAllowedSlotInterval(req.SlotIntervalMinutes) {
		errs = append(errs, models.FieldError{
			Field:   "slotIntervalMinutes",
			Message: fmt.Sprintf("must be one of %v", domain.SlotIntervalChoices),
		})
	}

	if req.ReservationIntervalMinutes < domain.MinReservationIntervalMinutes ||
		req.ReservationIntervalMinutes > domain.MaxReservationIntervalMinutes {
		errs = append(errs, models.FieldError{
			Field:   "reservationIntervalMinutes",
			Message: fmt.Sprintf("must be between %d and %d", domain.MinReservationIntervalMinutes, domain.MaxReservationIntervalMinutes),
		})
	}

	if req.MaxAdvanceBookingDays < domain.MinAdvanceBookingDaysLimit ||
		req.MaxAdvanceBookingDays > domain.MaxAdvanceBookingDaysLimit {
		errs = append(errs, models.FieldError{
			Field:   "maxAdvanceBookingDays",
			Message: fmt.Sprintf("must be between %d and %d", domain.MinAdvanceBookingDaysLimit, domain.MaxAdvanceBookingDaysLimit),
		})
	}

	if req.MinAdvanceBookingHours < domain.MinAdvanceBookingHoursLimit ||
		req.MinAdvanceBookingHours > domain.MaxAdvanceBookingHoursLimit {
		errs = append(errs, models.FieldError{
			Field:   "minAdvanceBookingHours",
			Message: fmt.Sprintf("must be between %d and %d", domain.MinAdvanceBookingHoursLimit, domain.MaxAdvanceBookingHoursLimit),
		})
	}

	return errs
}

func isAllowedSlotInterval(minutes int) bool {
	for _, v := range domain.SlotIntervalChoices {
		if v == minutes {
			return true
		}
	}
	return false
}

// buildOverride валидирует запрос и собирает domain модель переопределения
func buildOverride(req *models.UpsertOverrideRequest) (*domain.ShiftOverride, models.ValidationErrors) {
	var errs models.ValidationErrors

	if req.Date.IsZero() {
		errs = append(errs, models.FieldError{Field: "date", Message: "is required"})
	}

	shiftType := domain.ShiftType(req.ShiftType)
	if !shiftType.IsValid() {
		errs = append(errs, models.FieldError{Field: "shiftType", Message: "must be one of normal, extended, shortened, closed, custom"})
		return nil, errs
	}

	override := &domain.ShiftOverride{
		Date:      req.Date,
		ShiftType: shiftType,
	}

	if shiftType.RequiresTimes() {
		start, startErrs := parseTimeField("startTime", req.StartTime)
		end, endErrs := parseTimeField("endTime", req.EndTime)
		errs = append(errs, startErrs...)
		errs = append(errs, endErrs...)

		if len(errs) == 0 {
			if !end.IsAfter(start) {
				errs = append(errs, models.FieldError{Field: "endTime", Message: "must be after startTime"})
			} else {
				override.StartTime = &start
				override.EndTime = &end
				errs = append(errs, validateBreaks(req.Breaks, start, end, override)...)
			}
		}
	} else {
		if req.StartTime != nil || req.EndTime != nil {
			errs = append(errs, models.FieldError{
				Field:   "startTime",
				Message: fmt.Sprintf("must not be set for shiftType %q", shiftType),
			})
		}
		if len(req.Breaks) > 0 {
			errs = append(errs, models.FieldError{
				Field:   "breaks",
				Message: fmt.Sprintf("must not be set for shiftType %q", shiftType),
			})
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}

	return override, nil
}

func parseTimeField(field string, value *string) (types.TimeString, models.ValidationErrors) {
	if value == nil || *value == "" {
		return "", models.ValidationErrors{{Field: field, Message: "is required for this shiftType"}}
	}

	ts, err := types.NewTimeStringFromString(*value)
	if err != nil {
		return "", models.ValidationErrors{{Field: field, Message: "must be in HH:MM format"}}
	}

	return ts, nil
}

// validateBreaks проверяет перерывы: каждый внутри рабочего окна, с
// корректным порядком границ и без взаимных пересечений
func validateBreaks(breaks []models.BreakPayload, start, end types.TimeString, override *domain.ShiftOverride) models.ValidationErrors {
	var errs models.ValidationErrors

	parsed := make([]domain.BreakWindow, 0, len(breaks))

	for i, b := range breaks {
		field := fmt.Sprintf("breaks[%d]", i)

		bStart, err := types.NewTimeStringFromString(b.Start)
		if err != nil {
			errs = append(errs, models.FieldError{Field: field + ".start", Message: "must be in HH:MM format"})
			continue
		}

		bEnd, err := types.NewTimeStringFromString(b.End)
		if err != nil {
			errs = append(errs, models.FieldError{Field: field + ".end", Message: "must be in HH:MM format"})
			continue
		}

		if !bEnd.IsAfter(bStart) {
			errs = append(errs, models.FieldError{Field: field + ".end", Message: "must be after start"})
			continue
		}

		if bStart.IsBefore(start) || bEnd.IsAfter(end) {
			errs = append(errs, models.FieldError{Field: field, Message: "must lie within the working hours"})
			continue
		}

		window := domain.BreakWindow{Start: bStart, End: bEnd}

		for _, prev := range parsed {
			if prev.Overlaps(bStart, bEnd) {
				errs = append(errs, models.FieldError{Field: field, Message: "overlaps another break"})
				break
			}
		}

		parsed = append(parsed, window)
	}

	if len(errs) == 0 {
		override.Breaks = parsed
	}

	return errs
}
