package create_booking

import (
	"context"
	"time"

	"github.com/smartclassroom/SCB-BookingService/internal/domain"
	"github.com/smartclassroom/SCB-BookingService/internal/integrations/mailer"
	"github.com/smartclassroom/SCB-BookingService/internal/integrations/userservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	CountOverlapping(ctx context.Context, start, end time.Time, excludeID *int64) (int, error)
}

// UserServiceClient интерфейс клиента identity-сервиса
type UserServiceClient interface {
	GetUser(ctx context.Context, userID int64) (*userservice.User, error)
}

// Notifier интерфейс почтовых уведомлений.
// Реализация не возвращает ошибок: доставка best-effort.
type Notifier interface {
	Send(recipient string, tmpl mailer.Template, tmplCtx mailer.Context) bool
	SendToMany(recipients []string, tmpl mailer.Template, tmplCtx mailer.Context) int
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
