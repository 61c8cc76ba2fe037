package get_available_slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sosuke1217/mobilis-ticket-sub000/internal/domain"
	"github.com/sosuke1217/mobilis-ticket-sub000/pkg/types"
)

func testCalendarConfig() *domain.SalonCalendarConfig {
	return &domain.SalonCalendarConfig{
		BusinessStart:              10,
		BusinessEnd:                20,
		SlotIntervalMinutes:        30,
		ReservationIntervalMinutes: 15,
		MaxAdvanceBookingDays:      30,
		MinAdvanceBookingHours:     24,
		SundayClosed:               true,
	}
}

func openHours(start, end string) domain.EffectiveHours {
	return domain.EffectiveHours{
		Start: types.TimeString(start),
		End:   types.TimeString(end),
	}
}

func TestGenerateSlots_EmptyDay(t *testing.T) {
	cfg := testCalendarConfig()
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC) // понедельник
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	slots, err := generateSlots(openHours("10:00", "20:00"), 60, date, now, nil, cfg)
	require.NoError(t, err)

	// 10:00..19:00 с шагом 30 минут, последний слот 19:00-20:00
	require.Len(t, slots, 19)
	assert.Equal(t, types.TimeString("10:00"), slots[0].StartTime)
	assert.Equal(t, types.TimeString("11:00"), slots[0].EndTime)
	assert.Equal(t, types.TimeString("19:00"), slots[18].StartTime)
	assert.Equal(t, types.TimeString("20:00"), slots[18].EndTime)

	for i := 1; i < len(slots); i++ {
		assert.True(t, slots[i-1].StartTime.IsBefore(slots[i].StartTime),
			"slots must be ordered by start time")
	}
}

func TestGenerateSlots_ClosedDay(t *testing.T) {
	cfg := testCalendarConfig()
	date := time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	slots, err := generateSlots(domain.EffectiveHours{Closed: true}, 60, date, now, nil, cfg)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_ReservationWithBufferBlocksSlots(t *testing.T) {
	cfg := testCalendarConfig()
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	reservations := []*domain.Reservation{
		{
			ID:        1,
			StartTime: types.TimeString("12:00"),
			EndTime:   types.TimeString("13:00"),
			Status:    domain.StatusConfirmed,
		},
	}

	slots, err := generateSlots(openHours("10:00", "20:00"), 60, date, now, reservations, cfg)
	require.NoError(t, err)

	starts := slotStarts(slots)
	// Запись 12:00-13:00 с буфером 15 минут блокирует кандидатов,
	// пересекающих [11:45, 13:15)
	assert.NotContains(t, starts, types.TimeString("11:00"))
	assert.NotContains(t, starts, types.TimeString("11:30"))
	assert.NotContains(t, starts, types.TimeString("12:00"))
	assert.NotContains(t, starts, types.TimeString("12:30"))
	assert.NotContains(t, starts, types.TimeString("13:00"))
	// 10:30-11:30 заканчивается в 11:30, до начала буфера 11:45
	assert.Contains(t, starts, types.TimeString("10:30"))
	assert.Contains(t, starts, types.TimeString("13:30"))
}

func TestGenerateSlots_IndividualIntervalOverridesGlobal(t *testing.T) {
	cfg := testCalendarConfig()
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	interval := 0
	reservations := []*domain.Reservation{
		{
			ID:                        1,
			StartTime:                 types.TimeString("12:00"),
			EndTime:                   types.TimeString("13:00"),
			Status:                    domain.StatusConfirmed,
			IndividualIntervalMinutes: &interval,
		},
	}

	slots, err := generateSlots(openHours("10:00", "20:00"), 60, date, now, reservations, cfg)
	require.NoError(t, err)

	starts := slotStarts(slots)
	// Нулевой индивидуальный буфер: слот 11:00-12:00 примыкает и допустим
	assert.Contains(t, starts, types.TimeString("11:00"))
	assert.Contains(t, starts, types.TimeString("13:00"))
	assert.NotContains(t, starts, types.TimeString("12:00"))
}

func TestGenerateSlots_BreakExcluded(t *testing.T) {
	cfg := testCalendarConfig()
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	hours := openHours("10:00", "20:00")
	hours.Breaks = []domain.BreakWindow{
		{Start: types.TimeString("13:00"), End: types.TimeString("14:00")},
	}

	slots, err := generateSlots(hours, 60, date, now, nil, cfg)
	require.NoError(t, err)

	starts := slotStarts(slots)
	assert.NotContains(t, starts, types.TimeString("12:30"))
	assert.NotContains(t, starts, types.TimeString("13:00"))
	assert.NotContains(t, starts, types.TimeString("13:30"))
	// Полуинтервалы: слот, заканчивающийся ровно в 13:00, допустим
	assert.Contains(t, starts, types.TimeString("12:00"))
	assert.Contains(t, starts, types.TimeString("14:00"))
}

func TestGenerateSlots_MinAdvanceFiltersSameDay(t *testing.T) {
	cfg := testCalendarConfig()
	cfg.MinAdvanceBookingHours = 2
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	// Запрос в 10:30 того же дня: слоты раньше 12:30 недоступны
	now := time.Date(2024, 6, 10, 10, 30, 0, 0, time.UTC)

	slots, err := generateSlots(openHours("10:00", "20:00"), 60, date, now, nil, cfg)
	require.NoError(t, err)

	starts := slotStarts(slots)
	assert.NotContains(t, starts, types.TimeString("10:00"))
	assert.NotContains(t, starts, types.TimeString("12:00"))
	assert.Contains(t, starts, types.TimeString("12:30"))
}

func TestGenerateSlots_DurationLongerThanDay(t *testing.T) {
	cfg := testCalendarConfig()
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	slots, err := generateSlots(openHours("10:00", "20:00"), 601, date, now, nil, cfg)
	require.NoError(t, err)
	assert.Empty(t, slots)
}

func TestGenerateSlots_LastSlotEndsAtClose(t *testing.T) {
	cfg := testCalendarConfig()
	cfg.ReservationIntervalMinutes = 0
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)

	slots, err := generateSlots(openHours("10:00", "20:00"), 600, date, now, nil, cfg)
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, types.TimeString("10:00"), slots[0].StartTime)
	assert.Equal(t, types.TimeString("20:00"), slots[0].EndTime)
}

func slotStarts(slots []Slot) []types.TimeString {
	starts := make([]types.TimeString, 0, len(slots))
	for _, s := range slots {
		starts = append(starts, s.StartTime)
	}
	return starts
}
