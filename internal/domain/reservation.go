package domain

import (
	"time"

	"github.com/sosuke1217/mobilis-ticket-sub000/pkg/types"
)

// ReservationStatus represents the lifecycle state of a reservation
type ReservationStatus string

const (
	StatusTentative ReservationStatus = "tentative"
	StatusConfirmed ReservationStatus = "confirmed"
	StatusCancelled ReservationStatus = "cancelled"
	StatusCompleted ReservationStatus = "completed"
	StatusNoShow    ReservationStatus = "no_show"
)

// Display returns a human-readable label for the status.
// The switch is exhaustive over all defined statuses.
func (s ReservationStatus) Display() string {
	switch s {
	case StatusTentative:
		return "仮予約"
	case StatusConfirmed:
		return "確定"
	case StatusCancelled:
		return "キャンセル"
	case StatusCompleted:
		return "完了"
	case StatusNoShow:
		return "無断キャンセル"
	default:
		return string(s)
	}
}

// IsValid reports whether the status is one of the defined values.
func (s ReservationStatus) IsValid() bool {
	switch s {
	case StatusTentative, StatusConfirmed, StatusCancelled, StatusCompleted, StatusNoShow:
		return true
	default:
		return false
	}
}

// Course is the booked menu item; it determines the reservation duration.
type Course string

const (
	Course40 Course = "course_40"
	Course60 Course = "course_60"
	Course80 Course = "course_80"
)

// DurationMinutes returns the duration implied by the course.
func (c Course) DurationMinutes() int {
	switch c {
	case Course40:
		return 40
	case Course60:
		return 60
	case Course80:
		return 80
	default:
		return 0
	}
}

// Display returns a human-readable label for the course.
func (c Course) Display() string {
	switch c {
	case Course40:
		return "40分コース"
	case Course60:
		return "60分コース"
	case Course80:
		return "80分コース"
	default:
		return string(c)
	}
}

// IsValid reports whether the course is one of the defined values.
func (c Course) IsValid() bool {
	return c.DurationMinutes() > 0
}

// Reservation represents a booked time interval in the salon calendar.
// Break records (IsBreak) are synthetic blocking intervals created by the
// admin; they occupy their slot for conflict detection but have no customer.
type Reservation struct {
	ID           int64
	UserID       *int64 // nil when the user account was deleted
	TicketID     *int64 // optional ticket the visit consumes
	CustomerName string

	Date      time.Time // calendar date, time component zero
	StartTime types.TimeString
	EndTime   types.TimeString
	Course    Course

	Status             ReservationStatus
	CancelledAt        *time.Time
	CancellationReason *string

	// IndividualIntervalMinutes overrides the global buffer around this
	// reservation; nil means the global setting applies.
	IndividualIntervalMinutes *int
	IsBreak                   bool
	Notes                     *string

	// Recurrence is stored but never expanded.
	Recurring           bool
	RecurringType       *string
	RecurringUntil      *time.Time
	ParentReservationID *int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive reports whether the reservation occupies its interval for
// conflict detection. Everything except cancelled blocks the calendar.
func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelled
}

// IsCancelled reports whether the reservation has been cancelled.
func (r *Reservation) IsCancelled() bool {
	return r.Status == StatusCancelled
}

// CanBeCancelled reports whether a cancel transition is allowed.
func (r *Reservation) CanBeCancelled() bool {
	return r.Status == StatusTentative || r.Status == StatusConfirmed
}

// CanBeUpdated reports whether the reservation may still be rescheduled.
func (r *Reservation) CanBeUpdated() bool {
	return r.Status == StatusTentative || r.Status == StatusConfirmed
}

// BufferMinutes returns the exclusion zone applied around this reservation,
// falling back to the global setting when no individual override is set.
func (r *Reservation) BufferMinutes(globalBufferMinutes int) int {
	if r.IndividualIntervalMinutes != nil {
		return *r.IndividualIntervalMinutes
	}
	return globalBufferMinutes
}

// ReservationsFilter narrows reservation listing.
type ReservationsFilter struct {
	StartDate       *time.Time         // period start (inclusive), nil = unbounded
	EndDate         *time.Time         // period end (inclusive), nil = unbounded
	UserID          *int64             // filter by customer
	Status          *ReservationStatus // filter by status
	IncludeInactive bool               // include cancelled reservations
}
