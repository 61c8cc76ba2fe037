package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/sosuke1217/mobilis-ticket-sub000/pkg/ptr"
	"github.com/sosuke1217/mobilis-ticket-sub000/pkg/types"
)

var (
	monday = time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	sunday = time.Date(2024, 6, 9, 0, 0, 0, 0, time.UTC)
)

func TestResolveEffectiveHours_BaseConfig(t *testing.T) {
	cfg := DefaultCalendarConfig()

	got := ResolveEffectiveHours(cfg, nil, monday)

	assert.False(t, got.Closed)
	assert.Equal(t, types.TimeString("10:00"), got.Start)
	assert.Equal(t, types.TimeString("20:00"), got.End)
	assert.Empty(t, got.Breaks)
}

func TestResolveEffectiveHours_SundayClosed(t *testing.T) {
	cfg := DefaultCalendarConfig()

	got := ResolveEffectiveHours(cfg, nil, sunday)
	assert.True(t, got.Closed)

	cfg.SundayClosed = false
	got = ResolveEffectiveHours(cfg, nil, sunday)
	assert.False(t, got.Closed)
}

func TestResolveEffectiveHours_OverrideOpensSunday(t *testing.T) {
	cfg := DefaultCalendarConfig()
	override := &ShiftOverride{
		Date:      sunday,
		ShiftType: ShiftCustom,
		StartTime: ptr.Ptr(types.TimeString("12:00")),
		EndTime:   ptr.Ptr(types.TimeString("17:00")),
	}

	got := ResolveEffectiveHours(cfg, override, sunday)

	assert.False(t, got.Closed)
	assert.Equal(t, types.TimeString("12:00"), got.Start)
	assert.Equal(t, types.TimeString("17:00"), got.End)
}

func TestResolveEffectiveHours_ClosedOverride(t *testing.T) {
	cfg := DefaultCalendarConfig()
	override := &ShiftOverride{Date: monday, ShiftType: ShiftClosed}

	got := ResolveEffectiveHours(cfg, override, monday)
	assert.True(t, got.Closed)
}

func TestResolveEffectiveHours_NormalOverrideFallsThrough(t *testing.T) {
	cfg := DefaultCalendarConfig()
	override := &ShiftOverride{Date: sunday, ShiftType: ShiftNormal}

	// a "normal" override does not reopen a closed Sunday
	got := ResolveEffectiveHours(cfg, override, sunday)
	assert.True(t, got.Closed)

	got = ResolveEffectiveHours(cfg, &ShiftOverride{Date: monday, ShiftType: ShiftNormal}, monday)
	assert.False(t, got.Closed)
	assert.Equal(t, types.TimeString("10:00"), got.Start)
}

func TestResolveEffectiveHours_ExtendedWithBreaks(t *testing.T) {
	cfg := DefaultCalendarConfig()
	override := &ShiftOverride{
		Date:      monday,
		ShiftType: ShiftExtended,
		StartTime: ptr.Ptr(types.TimeString("09:00")),
		EndTime:   ptr.Ptr(types.TimeString("22:00")),
		Breaks: []BreakWindow{
			{Start: "12:00", End: "13:00"},
		},
	}

	got := ResolveEffectiveHours(cfg, override, monday)

	assert.Equal(t, types.TimeString("09:00"), got.Start)
	assert.Equal(t, types.TimeString("22:00"), got.End)
	assert.Len(t, got.Breaks, 1)
}

func TestBreakWindow_Overlaps(t *testing.T) {
	brk := BreakWindow{Start: "12:00", End: "13:00"}

	assert.True(t, brk.Overlaps("12:30", "13:30"))
	assert.True(t, brk.Overlaps("11:30", "12:30"))
	assert.True(t, brk.Overlaps("12:00", "13:00"))

	// half-open semantics: touching is not overlapping
	assert.False(t, brk.Overlaps("11:00", "12:00"))
	assert.False(t, brk.Overlaps("13:00", "14:00"))
}
