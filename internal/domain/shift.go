package domain

import (
	"time"

	"github.com/sosuke1217/mobilis-ticket-sub000/pkg/types"
)

// ShiftType classifies a per-date working-hours override.
type ShiftType string

const (
	ShiftNormal    ShiftType = "normal"
	ShiftExtended  ShiftType = "extended"
	ShiftShortened ShiftType = "shortened"
	ShiftClosed    ShiftType = "closed"
	ShiftCustom    ShiftType = "custom"
)

// Display returns a human-readable label for the shift type.
// The switch is exhaustive over all defined types.
func (t ShiftType) Display() string {
	switch t {
	case ShiftNormal:
		return "通常営業"
	case ShiftExtended:
		return "延長営業"
	case ShiftShortened:
		return "短縮営業"
	case ShiftClosed:
		return "休業"
	case ShiftCustom:
		return "カスタム"
	default:
		return string(t)
	}
}

// IsValid reports whether the shift type is one of the defined values.
func (t ShiftType) IsValid() bool {
	switch t {
	case ShiftNormal, ShiftExtended, ShiftShortened, ShiftClosed, ShiftCustom:
		return true
	default:
		return false
	}
}

// RequiresTimes reports whether the shift type carries its own
// start and end times.
func (t ShiftType) RequiresTimes() bool {
	return t == ShiftExtended || t == ShiftShortened || t == ShiftCustom
}

// BreakWindow is a half-open [Start, End) pause inside the working hours.
type BreakWindow struct {
	Start types.TimeString `json:"start"`
	End   types.TimeString `json:"end"`
}

// Overlaps reports whether the half-open interval [start, end) intersects
// the break window.
func (b BreakWindow) Overlaps(start, end types.TimeString) bool {
	return b.Start.IsBefore(end) && b.End.IsAfter(start)
}

// ShiftOverride is a per-date exception to the base calendar
// configuration. At most one override exists per date.
type ShiftOverride struct {
	ID        int64
	Date      time.Time // calendar date, time component zero
	ShiftType ShiftType

	// StartTime/EndTime are set iff ShiftType.RequiresTimes().
	StartTime *types.TimeString
	EndTime   *types.TimeString

	Breaks []BreakWindow

	CreatedAt time.Time
	UpdatedAt time.Time
}
