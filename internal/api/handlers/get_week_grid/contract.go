package get_week_grid

import (
	"context"

	"github.com/smartclassroom/SCB-BookingService/internal/usecase/week_grid"
)

type WeekGridUsecase interface {
	Execute(ctx context.Context, req *week_grid.Request) (*week_grid.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
