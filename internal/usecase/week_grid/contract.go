package week_grid

import (
	"context"
	"time"

	"github.com/smartclassroom/SCB-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListBetween(ctx context.Context, start, end time.Time) ([]*domain.Booking, error)
	ListUserIDs(ctx context.Context) ([]int64, error)
}

// UserServiceClient интерфейс клиента identity-сервиса
type UserServiceClient interface {
	ListUserIDs(ctx context.Context) ([]int64, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
