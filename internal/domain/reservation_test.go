package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sosuke1217/mobilis-ticket-sub000/pkg/ptr"
)

func TestReservationStatus(t *testing.T) {
	for _, s := range []ReservationStatus{StatusTentative, StatusConfirmed, StatusCancelled, StatusCompleted, StatusNoShow} {
		assert.True(t, s.IsValid())
		assert.NotEqual(t, string(s), s.Display())
	}
	assert.False(t, ReservationStatus("pending").IsValid())
}

func TestCourse_DurationMinutes(t *testing.T) {
	assert.Equal(t, 40, Course40.DurationMinutes())
	assert.Equal(t, 60, Course60.DurationMinutes())
	assert.Equal(t, 80, Course80.DurationMinutes())
	assert.Equal(t, 0, Course("course_90").DurationMinutes())
	assert.False(t, Course("course_90").IsValid())
}

func TestReservation_TransitionPredicates(t *testing.T) {
	tests := []struct {
		status      ReservationStatus
		active      bool
		cancellable bool
		updatable   bool
	}{
		{StatusTentative, true, true, true},
		{StatusConfirmed, true, true, true},
		{StatusCancelled, false, false, false},
		{StatusCompleted, true, false, false},
		{StatusNoShow, true, false, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			r := &Reservation{Status: tt.status}
			assert.Equal(t, tt.active, r.IsActive())
			assert.Equal(t, tt.cancellable, r.CanBeCancelled())
			assert.Equal(t, tt.updatable, r.CanBeUpdated())
		})
	}
}

func TestReservation_BufferMinutes(t *testing.T) {
	r := &Reservation{}
	assert.Equal(t, 15, r.BufferMinutes(15))

	r.IndividualIntervalMinutes = ptr.Ptr(5)
	assert.Equal(t, 5, r.BufferMinutes(15))

	r.IndividualIntervalMinutes = ptr.Ptr(0)
	assert.Equal(t, 0, r.BufferMinutes(15))
}

func TestShiftType(t *testing.T) {
	assert.True(t, ShiftExtended.RequiresTimes())
	assert.True(t, ShiftShortened.RequiresTimes())
	assert.True(t, ShiftCustom.RequiresTimes())
	assert.False(t, ShiftNormal.RequiresTimes())
	assert.False(t, ShiftClosed.RequiresTimes())

	assert.True(t, ShiftClosed.IsValid())
	assert.False(t, ShiftType("holiday").IsValid())
}
