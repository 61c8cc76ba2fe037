package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimeString_Validate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{"valid morning", "09:30", false},
		{"valid midnight", "00:00", false},
		{"valid end of day", "24:00", false},
		{"valid last minute", "23:59", false},
		{"hours out of range", "25:00", true},
		{"minutes out of range", "10:60", true},
		{"24 with minutes", "24:30", true},
		{"missing colon", "1030", true},
		{"garbage", "ab:cd", true},
		{"empty", "", true},
		{"too long", "10:00:00", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := TimeString(tt.value).Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("10:00")

	got, err := ts.AddMinutes(90)
	require.NoError(t, err)
	assert.Equal(t, TimeString("11:30"), got)

	got, err = ts.AddMinutes(14 * 60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("24:00"), got)

	_, err = ts.AddMinutes(15 * 60)
	assert.ErrorIs(t, err, ErrTimeOutOfRange)
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("10:00").IsBefore("10:01"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("18:30").IsAfter("18:00"))
	assert.False(t, TimeString("18:00").IsAfter("18:00"))
}

func TestTimeString_AlignedTo(t *testing.T) {
	assert.True(t, TimeString("10:20").AlignedTo(10))
	assert.True(t, TimeString("10:00").AlignedTo(30))
	assert.False(t, TimeString("10:25").AlignedTo(10))
	assert.False(t, TimeString("10:15").AlignedTo(0))
}

func TestTimeString_OnDate(t *testing.T) {
	date := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	got := TimeString("13:45").OnDate(date)
	assert.Equal(t, time.Date(2024, 6, 10, 13, 45, 0, 0, time.UTC), got)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString
	require.NoError(t, ts.Scan("10:30:00"))
	assert.Equal(t, TimeString("10:30"), ts)

	require.NoError(t, ts.Scan([]byte("09:00")))
	assert.Equal(t, TimeString("09:00"), ts)

	require.NoError(t, ts.Scan(time.Date(2024, 1, 1, 15, 20, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("15:20"), ts)

	require.NoError(t, ts.Scan(nil))
	assert.True(t, ts.IsZero())
}
