package create_booking

import (
	"time"

	"github.com/smartclassroom/SCB-BookingService/internal/domain"
	createBooking "github.com/smartclassroom/SCB-BookingService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Date        string  `json:"date"`     // "2025-10-15"
	SlotHour    int     `json:"slotHour"` // 8..17, час начала слота
	Purpose     string  `json:"purpose"`
	Attendees   int     `json:"attendees"`
	Description *string `json:"description,omitempty"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Purpose   string `json:"purpose"`
	Attendees int    `json:"attendees"`
	Status    string `json:"status"`

	Description *string `json:"description,omitempty"`

	// ConfirmationEmailSent подсказка фронтенду для сообщения пользователю
	ConfirmationEmailSent bool `json:"confirmationEmailSent"`
	OwnerHasEmail         bool `json:"ownerHasEmail"`

	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) (*createBooking.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, r.Date, time.Local)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:      userID,
		Date:        date,
		SlotHour:    r.SlotHour,
		Purpose:     r.Purpose,
		Attendees:   r.Attendees,
		Description: r.Description,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	b := resp.Booking
	return &BookingResponse{
		ID:                    b.ID,
		UserID:                b.UserID,
		Date:                  b.StartTime.Format(domain.DateFormat),
		StartTime:             b.StartTime.Format(domain.TimeFormat),
		EndTime:               b.EndTime.Format(domain.TimeFormat),
		Purpose:               b.Purpose,
		Attendees:             b.Attendees,
		Status:                string(b.Status),
		Description:           b.Description,
		ConfirmationEmailSent: resp.ConfirmationEmailSent,
		OwnerHasEmail:         resp.OwnerHasEmail,
		CreatedAt:             b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:             b.UpdatedAt.Format(time.RFC3339),
	}
}
