package set_booking_status

import (
	"time"

	"github.com/smartclassroom/SCB-BookingService/internal/domain"
	setStatus "github.com/smartclassroom/SCB-BookingService/internal/usecase/set_status"
)

// SetStatusRequest HTTP request model
type SetStatusRequest struct {
	Status string `json:"status"` // "approved" или "rejected"
}

// SetStatusResponse HTTP response model
type SetStatusResponse struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Purpose   string `json:"purpose"`
	Status    string `json:"status"`

	Changed          bool `json:"changed"`
	NotificationSent bool `json:"notificationSent"`

	UpdatedAt string `json:"updatedAt"`
}

// BulkSetStatusRequest HTTP request model пакетной операции
type BulkSetStatusRequest struct {
	BookingIDs []int64 `json:"bookingIds"`
	Status     string  `json:"status"`
}

// BulkSetStatusResponse HTTP response model пакетной операции
type BulkSetStatusResponse struct {
	Changed             int `json:"changed"`
	Skipped             int `json:"skipped"`
	NotFound            int `json:"notFound"`
	NotificationsSent   int `json:"notificationsSent"`
	NotificationsFailed int `json:"notificationsFailed"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *setStatus.Response) *SetStatusResponse {
	b := resp.Booking
	return &SetStatusResponse{
		ID:               b.ID,
		UserID:           b.UserID,
		Date:             b.StartTime.Format(domain.DateFormat),
		StartTime:        b.StartTime.Format(domain.TimeFormat),
		EndTime:          b.EndTime.Format(domain.TimeFormat),
		Purpose:          b.Purpose,
		Status:           string(b.Status),
		Changed:          resp.Changed,
		NotificationSent: resp.NotificationSent,
		UpdatedAt:        b.UpdatedAt.Format(time.RFC3339),
	}
}

// FromUseCaseBulkResponse конвертирует ответ пакетного use case в HTTP response
func FromUseCaseBulkResponse(resp *setStatus.BulkResponse) *BulkSetStatusResponse {
	return &BulkSetStatusResponse{
		Changed:             resp.Changed,
		Skipped:             resp.Skipped,
		NotFound:            resp.NotFound,
		NotificationsSent:   resp.NotificationsSent,
		NotificationsFailed: resp.NotificationsFailed,
	}
}
