package create_booking

import (
	"time"

	"github.com/smartclassroom/SCB-BookingService/internal/domain"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID int64 // ID пользователя (из заголовка аутентификации)

	Date     time.Time // Дата бронирования (без времени)
	SlotHour int       // Час начала слота из каталога (8..17)

	Purpose     string  // Цель бронирования
	Attendees   int     // Число участников
	Description *string // Дополнительное описание (опционально)
}

// Response модель ответа с созданным бронированием
type Response struct {
	Booking *domain.Booking

	// ConfirmationEmailSent true, если пользователю доставлено письмо
	// с подтверждением. Сбой доставки не считается ошибкой операции.
	ConfirmationEmailSent bool

	// OwnerHasEmail false, если у пользователя не указан email
	// (подсказка фронтенду показать предложение добавить адрес)
	OwnerHasEmail bool
}
