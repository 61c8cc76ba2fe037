package domain

import (
	"time"

	"github.com/sosuke1217/mobilis-ticket-sub000/pkg/types"
)

// SalonCalendarConfig is the singleton business-hours configuration.
// There is exactly one row; it is created lazily with defaults the first
// time it is read and updated in place afterwards.
type SalonCalendarConfig struct {
	ID int64

	BusinessStart int // opening hour, 0-23
	BusinessEnd   int // closing hour, > BusinessStart, <= 24

	// SlotIntervalMinutes is the admin calendar grid cadence; it affects
	// rendering only. Booking-facing slot generation always walks in
	// SlotWalkStepMinutes steps.
	SlotIntervalMinutes int

	// ReservationIntervalMinutes is the default buffer enforced around
	// existing reservations.
	ReservationIntervalMinutes int

	MaxAdvanceBookingDays  int
	MinAdvanceBookingHours int
	SundayClosed           bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DefaultCalendarConfig returns the configuration materialized when the
// singleton row is absent.
func DefaultCalendarConfig() *SalonCalendarConfig {
	return &SalonCalendarConfig{
		BusinessStart:              DefaultBusinessStart,
		BusinessEnd:                DefaultBusinessEnd,
		SlotIntervalMinutes:        DefaultSlotIntervalMinutes,
		ReservationIntervalMinutes: DefaultReservationIntervalMinutes,
		MaxAdvanceBookingDays:      DefaultMaxAdvanceBookingDays,
		MinAdvanceBookingHours:     DefaultMinAdvanceBookingHours,
		SundayClosed:               true,
	}
}

// OpenTime returns the opening hour as a TimeString.
func (c *SalonCalendarConfig) OpenTime() types.TimeString {
	ts, _ := types.NewTimeStringFromMinutes(c.BusinessStart * 60)
	return ts
}

// CloseTime returns the closing hour as a TimeString.
func (c *SalonCalendarConfig) CloseTime() types.TimeString {
	ts, _ := types.NewTimeStringFromMinutes(c.BusinessEnd * 60)
	return ts
}

// EffectiveHours is the resolved working window for one date.
// A closed date has Closed=true and zero Start/End.
type EffectiveHours struct {
	Closed bool
	Start  types.TimeString
	End    types.TimeString
	Breaks []BreakWindow
}

// ResolveEffectiveHours resolves the working hours for date, giving a
// per-date shift override precedence over the base configuration.
// override may be nil (no override recorded for the date).
func ResolveEffectiveHours(cfg *SalonCalendarConfig, override *ShiftOverride, date time.Time) EffectiveHours {
	if override != nil {
		switch override.ShiftType {
		case ShiftClosed:
			return EffectiveHours{Closed: true}
		case ShiftExtended, ShiftShortened, ShiftCustom:
			return EffectiveHours{
				Start:  *override.StartTime,
				End:    *override.EndTime,
				Breaks: override.Breaks,
			}
		case ShiftNormal:
			// fall through to the base configuration
		}
	}

	if cfg.SundayClosed && date.Weekday() == time.Sunday {
		return EffectiveHours{Closed: true}
	}

	return EffectiveHours{
		Start: cfg.OpenTime(),
		End:   cfg.CloseTime(),
	}
}
