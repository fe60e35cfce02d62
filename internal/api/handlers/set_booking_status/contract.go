package set_booking_status

import (
	"context"

	setStatus "github.com/smartclassroom/SCB-BookingService/internal/usecase/set_status"
)

type SetStatusUseCase interface {
	Execute(ctx context.Context, req *setStatus.Request) (*setStatus.Response, error)
	ExecuteBulk(ctx context.Context, req *setStatus.BulkRequest) (*setStatus.BulkResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
