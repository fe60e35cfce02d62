package models

import (
	"time"

	"github.com/smartclassroom/SCB-BookingService/internal/domain"
)

// Actor инициатор запроса (из заголовков аутентификации)
type Actor struct {
	UserID  int64
	IsStaff bool
}

// CanAccessBookingsOf возвращает true, если actor может видеть
// бронирования пользователя ownerID
func (a Actor) CanAccessBookingsOf(ownerID int64) bool {
	return a.IsStaff || a.UserID == ownerID
}

// Request модели

// GetUserBookingsRequest запрос на получение бронирований пользователя
type GetUserBookingsRequest struct {
	Actor  Actor
	UserID int64
	Status *string // Фильтр по статусу (опционально)
}

// AttachReceiptRequest запрос на прикрепление чека к бронированию
type AttachReceiptRequest struct {
	Actor     Actor
	BookingID int64
	Image     []byte
}

// Response модели

// BookingResponse ответ с данными бронирования
type BookingResponse struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	Date      string `json:"date"`      // "2025-10-15"
	StartTime string `json:"startTime"` // "10:00"
	EndTime   string `json:"endTime"`   // "11:00"
	Purpose   string `json:"purpose"`
	Attendees int    `json:"attendees"`
	Status    string `json:"status"`

	Description *string `json:"description,omitempty"`
	ReceiptURL  *string `json:"receiptUrl,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// StatusSummaryResponse счетчики бронирований пользователя по статусам
type StatusSummaryResponse struct {
	Pending  int `json:"pending"`
	Approved int `json:"approved"`
	Rejected int `json:"rejected"`
	Total    int `json:"total"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	return &BookingResponse{
		ID:          b.ID,
		UserID:      b.UserID,
		Date:        b.StartTime.Format(domain.DateFormat),
		StartTime:   b.StartTime.Format(domain.TimeFormat),
		EndTime:     b.EndTime.Format(domain.TimeFormat),
		Purpose:     b.Purpose,
		Attendees:   b.Attendees,
		Status:      string(b.Status),
		Description: b.Description,
		ReceiptURL:  b.ReceiptURL,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, *FromDomainBooking(b))
	}
	return resp
}

// FromDomainSummary конвертирует счетчики статусов в DTO
func FromDomainSummary(s *domain.StatusSummary) *StatusSummaryResponse {
	if s == nil {
		return nil
	}
	return &StatusSummaryResponse{
		Pending:  s.Pending,
		Approved: s.Approved,
		Rejected: s.Rejected,
		Total:    s.Total,
	}
}
