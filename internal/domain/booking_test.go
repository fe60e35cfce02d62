package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    BookingStatus
		wantErr bool
	}{
		{name: "pending", input: "pending", want: StatusPending},
		{name: "approved", input: "approved", want: StatusApproved},
		{name: "rejected", input: "rejected", want: StatusRejected},
		{name: "mixed case is not accepted", input: "Approved", wantErr: true},
		{name: "upper case is not accepted", input: "REJECTED", wantErr: true},
		{name: "unknown", input: "cancelled", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseStatus(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBooking_BlocksSlot(t *testing.T) {
	assert.True(t, (&Booking{Status: StatusPending}).BlocksSlot())
	assert.True(t, (&Booking{Status: StatusApproved}).BlocksSlot())
	assert.False(t, (&Booking{Status: StatusRejected}).BlocksSlot())
}

func TestBooking_IsSettled(t *testing.T) {
	assert.False(t, (&Booking{Status: StatusPending}).IsSettled())
	assert.True(t, (&Booking{Status: StatusApproved}).IsSettled())
	assert.True(t, (&Booking{Status: StatusRejected}).IsSettled())
}

func TestBooking_Overlaps(t *testing.T) {
	day := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	booking := &Booking{
		StartTime: day.Add(10 * time.Hour),
		EndTime:   day.Add(11 * time.Hour),
	}

	assert.True(t, booking.Overlaps(day.Add(10*time.Hour), day.Add(11*time.Hour)))
	assert.True(t, booking.Overlaps(day.Add(10*time.Hour+30*time.Minute), day.Add(11*time.Hour+30*time.Minute)))

	// Соседние диапазоны с общей границей не пересекаются
	assert.False(t, booking.Overlaps(day.Add(11*time.Hour), day.Add(12*time.Hour)))
	assert.False(t, booking.Overlaps(day.Add(9*time.Hour), day.Add(10*time.Hour)))
}
