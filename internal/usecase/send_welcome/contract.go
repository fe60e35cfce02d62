package send_welcome

import (
	"context"

	"github.com/smartclassroom/SCB-BookingService/internal/integrations/mailer"
	"github.com/smartclassroom/SCB-BookingService/internal/integrations/userservice"
)

// UserServiceClient интерфейс клиента identity-сервиса
type UserServiceClient interface {
	GetUser(ctx context.Context, userID int64) (*userservice.User, error)
}

// Notifier интерфейс почтовых уведомлений
type Notifier interface {
	Send(recipient string, tmpl mailer.Template, tmplCtx mailer.Context) bool
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
