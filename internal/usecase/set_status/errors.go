package set_status

import "errors"

var (
	// ErrBookingNotFound возвращается, когда бронирование не найдено
	ErrBookingNotFound = errors.New("set_status: booking not found")

	// ErrInvalidStatus возвращается при неизвестном целевом статусе
	ErrInvalidStatus = errors.New("set_status: invalid target status")

	// ErrSlotConflict возвращается, когда одобрение заявки нарушило бы
	// EXCLUDE-ограничение (слот уже занят другой активной заявкой)
	ErrSlotConflict = errors.New("set_status: slot is occupied by another booking")

	// ErrEmptyBatch возвращается при пустом списке ID в пакетной операции
	ErrEmptyBatch = errors.New("set_status: empty booking id list")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("set_status: internal error")
)
