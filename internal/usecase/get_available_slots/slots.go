package get_available_slots

import (
	"time"

	"github.com/sosuke1217/mobilis-ticket-sub000/internal/domain"
	"github.com/sosuke1217/mobilis-ticket-sub000/pkg/types"
)

// generateSlots генерирует доступные слоты на день
// Кандидаты идут от начала рабочего окна с фиксированным шагом
// domain.SlotWalkStepMinutes (настройка slotIntervalMinutes на это не
// влияет: она управляет только сеткой админского календаря)
//
// Кандидат отбрасывается, если:
//   - конец слота выходит за рабочее окно
//   - интервал [start, end) пересекает любой перерыв
//   - начало нарушает minAdvanceBookingHours относительно now
//   - интервал конфликтует с существующей записью с учётом буферов
func generateSlots(
	hours domain.EffectiveHours,
	durationMinutes int,
	date time.Time,
	now time.Time,
	reservations []*domain.Reservation,
	cfg *domain.SalonCalendarConfig,
) ([]Slot, error) {
	if hours.Closed {
		return []Slot{}, nil
	}

	minAllowedStart := now.Add(time.Duration(cfg.MinAdvanceBookingHours) * time.Hour)

	slots := make([]Slot, 0)

	for start := hours.Start; start.IsBefore(hours.End); {
		end, err := start.AddMinutes(durationMinutes)
		if err != nil {
			// Конец слота пересёк границу суток, дальше все кандидаты ещё позже
			break
		}
		if end.IsAfter(hours.End) {
			break
		}

		if !overlapsAnyBreak(hours.Breaks, start, end) &&
			!start.OnDate(date).Before(minAllowedStart) &&
			!domain.HasConflict(reservations, start, end, cfg.ReservationIntervalMinutes, nil) {
			slots = append(slots, Slot{StartTime: start, EndTime: end})
		}

		next, err := start.AddMinutes(domain.SlotWalkStepMinutes)
		if err != nil {
			break
		}
		start = next
	}

	return slots, nil
}

// overlapsAnyBreak проверяет, пересекает ли интервал [start, end) хотя бы один перерыв
// Полуинтервальная семантика: слот, заканчивающийся ровно в начале перерыва
// (или начинающийся ровно в его конце), допустим
func overlapsAnyBreak(breaks []domain.BreakWindow, start, end types.TimeString) bool {
	for _, b := range breaks {
		if b.Overlaps(start, end) {
			return true
		}
	}
	return false
}

// isDateInPast проверяет, что дата в прошлом (раньше сегодняшнего дня)
func isDateInPast(date, now time.Time) bool {
	dateOnly := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	nowOnly := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return dateOnly.Before(nowOnly)
}
