package domain

import (
	"fmt"
	"time"
)

// Slot represents one bookable hour of the room's day
type Slot struct {
	Hour int
}

// Start returns the slot's start timestamp on the given date
func (s Slot) Start(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), s.Hour, 0, 0, 0, date.Location())
}

// End returns the slot's end timestamp on the given date
func (s Slot) End(date time.Time) time.Time {
	return s.Start(date).Add(SlotDuration)
}

// String returns the slot label, e.g. "10:00-11:00"
func (s Slot) String() string {
	return fmt.Sprintf("%02d:00-%02d:00", s.Hour, s.Hour+1)
}

// Slots возвращает полный каталог слотов дня (08:00-09:00 ... 17:00-18:00)
func Slots() []Slot {
	slots := make([]Slot, 0, LastSlotHour-FirstSlotHour+1)
	for h := FirstSlotHour; h <= LastSlotHour; h++ {
		slots = append(slots, Slot{Hour: h})
	}
	return slots
}

// SlotForHour возвращает слот с указанным часом начала,
// если он входит в каталог
func SlotForHour(hour int) (Slot, error) {
	if hour < FirstSlotHour || hour > LastSlotHour {
		return Slot{}, fmt.Errorf("domain: hour %d is outside the slot catalogue (%02d:00-%02d:00)",
			hour, FirstSlotHour, LastSlotHour)
	}
	return Slot{Hour: hour}, nil
}

// RangesOverlap reports whether two half-open ranges share any instant
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}
