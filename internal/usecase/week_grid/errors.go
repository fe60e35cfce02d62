package week_grid

import "errors"

var (
	// ErrInvalidDate возвращается при нулевой опорной дате
	ErrInvalidDate = errors.New("week_grid: invalid reference date")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("week_grid: internal error")
)
