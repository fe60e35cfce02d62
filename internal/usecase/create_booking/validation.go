package create_booking

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/smartclassroom/SCB-BookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса.
// Вся валидация выполняется до любых записей в БД: при ошибке валидации
// не остается частично сохраненных данных.
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	purpose := strings.TrimSpace(req.Purpose)
	if purpose == "" {
		return fmt.Errorf("%w: purpose is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(purpose) > domain.MaxPurposeLength {
		return fmt.Errorf("%w: purpose must be at most %d characters", ErrInvalidInput, domain.MaxPurposeLength)
	}

	if req.Attendees < domain.MinAttendees || req.Attendees > domain.MaxAttendees {
		return fmt.Errorf("%w: attendees must be between %d and %d",
			ErrInvalidInput, domain.MinAttendees, domain.MaxAttendees)
	}

	if req.Description != nil && utf8.RuneCountInString(*req.Description) > domain.MaxDescriptionLength {
		return fmt.Errorf("%w: description must be at most %d characters",
			ErrInvalidInput, domain.MaxDescriptionLength)
	}

	return nil
}
