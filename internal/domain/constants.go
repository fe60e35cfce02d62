package domain

import "time"

// Slot catalogue: a booking always occupies exactly one hourly slot.
// The first slot starts at 08:00, the last at 17:00 (ending 18:00).
const (
	SlotDuration  = time.Hour
	FirstSlotHour = 8
	LastSlotHour  = 17
)

// Calendar display window: the weekly grid shows hours 07:00 through 22:00
const (
	CalendarFirstHour = 7
	CalendarLastHour  = 22
)

// Business validation constants
const (
	MinAttendees         = 1
	MaxAttendees         = 50
	MaxPurposeLength     = 100
	MaxDescriptionLength = 1000
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// BlockingStatuses статусы, при которых бронирование занимает слот.
// Используется при проверке пересечений.
var BlockingStatuses = []BookingStatus{
	StatusPending,
	StatusApproved,
}
