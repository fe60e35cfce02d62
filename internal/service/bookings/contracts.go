package bookings

import (
	"context"

	"github.com/smartclassroom/SCB-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	SetReceipt(ctx context.Context, id int64, receiptURL string) error
	CountByStatusForUser(ctx context.Context, userID int64) (*domain.StatusSummary, error)
}

// FileStore интерфейс хранилища изображений чеков
type FileStore interface {
	Upload(ctx context.Context, image []byte, publicID string) (string, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
