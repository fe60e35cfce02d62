package send_welcome

import (
	"context"

	"github.com/smartclassroom/SCB-BookingService/internal/usecase/send_welcome"
)

type SendWelcomeUsecase interface {
	Execute(ctx context.Context, req *send_welcome.Request) (*send_welcome.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
