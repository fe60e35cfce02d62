package domain

import (
	"fmt"
	"time"
)

// BookingStatus represents the approval status of a booking
type BookingStatus string

const (
	StatusPending  BookingStatus = "pending"
	StatusApproved BookingStatus = "approved"
	StatusRejected BookingStatus = "rejected"
)

// ParseStatus парсит статус из строки, принимается только каноническое
// написание в нижнем регистре
func ParseStatus(s string) (BookingStatus, error) {
	switch BookingStatus(s) {
	case StatusPending, StatusApproved, StatusRejected:
		return BookingStatus(s), nil
	default:
		return "", fmt.Errorf("domain: unknown booking status %q", s)
	}
}

// Booking represents a reservation of the single shared room
type Booking struct {
	ID        int64
	UserID    int64
	StartTime time.Time
	EndTime   time.Time
	Purpose   string
	Attendees int
	Status    BookingStatus

	Description *string
	ReceiptURL  *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsSettled returns true if the booking has been approved or rejected
func (b *Booking) IsSettled() bool {
	return b.Status == StatusApproved || b.Status == StatusRejected
}

// BlocksSlot returns true if the booking still occupies its time range.
// Rejected bookings free the slot and can be re-requested.
func (b *Booking) BlocksSlot() bool {
	return b.Status == StatusPending || b.Status == StatusApproved
}

// Overlaps reports whether the booking overlaps the half-open range
// [start, end). Back-to-back ranges sharing an endpoint do not overlap.
func (b *Booking) Overlaps(start, end time.Time) bool {
	return b.StartTime.Before(end) && b.EndTime.After(start)
}

// StatusSummary счетчики бронирований пользователя по статусам
// (для donut-диаграммы на дашборде)
type StatusSummary struct {
	Pending  int
	Approved int
	Rejected int
	Total    int
}
