package create_booking

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	// (пустая цель, число участников вне диапазона и т.п.)
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInvalidSlot возвращается, когда час начала не входит в каталог слотов
	ErrInvalidSlot = errors.New("create_booking: invalid time slot")

	// ErrSlotInPast возвращается при попытке забронировать прошедший слот
	ErrSlotInPast = errors.New("create_booking: slot is in the past")

	// ErrSlotNotAvailable возвращается, когда слот пересекается с существующей
	// активной заявкой (pending или approved)
	ErrSlotNotAvailable = errors.New("create_booking: slot is already booked")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
