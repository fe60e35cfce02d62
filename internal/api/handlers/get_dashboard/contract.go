package get_dashboard

import (
	"context"

	"github.com/smartclassroom/SCB-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	GetStatusSummary(ctx context.Context, userID int64, actor models.Actor) (*models.StatusSummaryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
