package notify

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sosuke1217/mobilis-ticket-sub000/internal/domain"
	"github.com/sosuke1217/mobilis-ticket-sub000/pkg/ptr"
)

func TestNewReservationEvent(t *testing.T) {
	res := &domain.Reservation{
		ID:        42,
		UserID:    ptr.Ptr(int64(7)),
		Date:      time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		StartTime: "10:00",
		EndTime:   "11:00",
		Status:    domain.StatusConfirmed,
	}

	event := newReservationEvent(EventReservationCreated, res, nil)

	assert.Equal(t, "booking_created", event.Event)
	assert.Equal(t, int64(42), event.ReservationID)
	assert.NotEmpty(t, event.EventID)
	assert.Equal(t, "2024-06-10T10:00:00Z", event.StartTime)
	assert.Equal(t, "2024-06-10T11:00:00Z", event.EndTime)
	assert.Nil(t, event.Reason)
}

func TestReservationEvent_CancellationJSON(t *testing.T) {
	res := &domain.Reservation{
		ID:        5,
		Date:      time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC),
		StartTime: "14:00",
		EndTime:   "15:00",
	}

	event := newReservationEvent(EventReservationCancelled, res, ptr.Ptr("customer request"))

	body, err := json.Marshal(event)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(body, &decoded))

	assert.Equal(t, "booking_cancelled", decoded["event"])
	assert.Equal(t, "customer request", decoded["reason"])
	// у записи без пользователя userRef опускается
	_, hasUserRef := decoded["userRef"]
	assert.False(t, hasUserRef)
}
