package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlots_Catalogue(t *testing.T) {
	slots := Slots()

	require.Len(t, slots, 10)
	assert.Equal(t, 8, slots[0].Hour)
	assert.Equal(t, 17, slots[len(slots)-1].Hour)
	assert.Equal(t, "08:00-09:00", slots[0].String())
	assert.Equal(t, "17:00-18:00", slots[len(slots)-1].String())
}

func TestSlot_StartEnd(t *testing.T) {
	date := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	slot := Slot{Hour: 10}

	assert.Equal(t, time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC), slot.Start(date))
	assert.Equal(t, time.Date(2025, 3, 12, 11, 0, 0, 0, time.UTC), slot.End(date))
}

func TestSlotForHour(t *testing.T) {
	tests := []struct {
		name    string
		hour    int
		wantErr bool
	}{
		{name: "first slot", hour: 8},
		{name: "last slot", hour: 17},
		{name: "midday", hour: 12},
		{name: "before opening", hour: 7, wantErr: true},
		{name: "after last slot", hour: 18, wantErr: true},
		{name: "negative", hour: -1, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			slot, err := SlotForHour(tt.hour)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.hour, slot.Hour)
		})
	}
}

func TestRangesOverlap(t *testing.T) {
	day := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	at := func(h int) time.Time { return day.Add(time.Duration(h) * time.Hour) }

	tests := []struct {
		name   string
		aStart int
		aEnd   int
		bStart int
		bEnd   int
		want   bool
	}{
		{name: "identical ranges", aStart: 10, aEnd: 11, bStart: 10, bEnd: 11, want: true},
		{name: "partial overlap", aStart: 10, aEnd: 12, bStart: 11, bEnd: 13, want: true},
		{name: "contained range", aStart: 9, aEnd: 13, bStart: 10, bEnd: 11, want: true},
		{name: "back to back", aStart: 10, aEnd: 11, bStart: 11, bEnd: 12, want: false},
		{name: "back to back reversed", aStart: 11, aEnd: 12, bStart: 10, bEnd: 11, want: false},
		{name: "disjoint", aStart: 8, aEnd: 9, bStart: 15, bEnd: 16, want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RangesOverlap(at(tt.aStart), at(tt.aEnd), at(tt.bStart), at(tt.bEnd))
			assert.Equal(t, tt.want, got)
		})
	}
}
