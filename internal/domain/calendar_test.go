package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWeekStart(t *testing.T) {
	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		ref  time.Time
	}{
		{name: "monday maps to itself", ref: monday},
		{name: "wednesday", ref: time.Date(2025, 3, 12, 15, 30, 0, 0, time.UTC)},
		{name: "sunday belongs to the same week", ref: time.Date(2025, 3, 16, 23, 59, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, monday, WeekStart(tt.ref))
		})
	}
}

func TestWeekStart_NextWeek(t *testing.T) {
	nextMonday := time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, nextMonday, WeekStart(time.Date(2025, 3, 17, 8, 0, 0, 0, time.UTC)))
}

func TestWeekWindow(t *testing.T) {
	start, end := WeekWindow(time.Date(2025, 3, 12, 12, 0, 0, 0, time.UTC))

	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2025, 3, 17, 0, 0, 0, 0, time.UTC), end)
	assert.Equal(t, 7*24*time.Hour, end.Sub(start))
}
