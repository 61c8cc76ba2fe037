package domain

// Default configuration values, materialized when the settings row is absent
const (
	DefaultBusinessStart              = 10
	DefaultBusinessEnd                = 20
	DefaultSlotIntervalMinutes        = 30
	DefaultReservationIntervalMinutes = 15
	DefaultMaxAdvanceBookingDays      = 30
	DefaultMinAdvanceBookingHours     = 24
)

// Business validation constants
const (
	MinBusinessHour = 0
	MaxBusinessHour = 24

	MinReservationIntervalMinutes = 0
	MaxReservationIntervalMinutes = 60

	MinAdvanceBookingDaysLimit = 1
	MaxAdvanceBookingDaysLimit = 365

	MinAdvanceBookingHoursLimit = 0
	MaxAdvanceBookingHoursLimit = 168 // 1 week

	MaxCancellationReasonLength = 500
	MaxNotesLength              = 500
	MaxCustomerNameLength       = 100
)

// SlotWalkStepMinutes is the fixed cadence of booking-facing slot
// generation. It is independent of SlotIntervalMinutes, which only
// controls the admin calendar grid rendering.
const SlotWalkStepMinutes = 30

// TimeAlignmentMinutes is the required alignment of reservation start and
// end times.
const TimeAlignmentMinutes = 10

// SlotIntervalChoices are the allowed values of SlotIntervalMinutes.
var SlotIntervalChoices = []int{10, 15, 30, 60}

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
