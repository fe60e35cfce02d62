package attach_receipt

import (
	"context"

	"github.com/smartclassroom/SCB-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	AttachReceipt(ctx context.Context, req *models.AttachReceiptRequest) (*models.BookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
