package set_status

import "github.com/smartclassroom/SCB-BookingService/internal/domain"

// Request запрос на смену статуса одного бронирования
type Request struct {
	BookingID int64
	NewStatus string // "approved" или "rejected" (каноническое написание)
	ActorID   int64  // сотрудник, выполняющий операцию (для аудита в логах)
}

// Response результат смены статуса
type Response struct {
	Booking *domain.Booking

	// Changed true, если значение статуса действительно изменилось.
	// Повторная установка того же статуса идемпотентна: запись
	// обновляется (updated_at), но уведомление не отправляется.
	Changed bool

	// NotificationSent true, если владельцу доставлено письмо об изменении
	NotificationSent bool
}

// BulkRequest запрос на пакетную смену статуса
type BulkRequest struct {
	BookingIDs []int64
	NewStatus  string
	ActorID    int64
}

// BulkResponse результат пакетной операции.
// Каждая запись обрабатывается независимо: запись, уже находящаяся
// в целевом статусе, пропускается, а не приводит к ошибке.
type BulkResponse struct {
	Changed             int
	Skipped             int
	NotFound            int
	NotificationsSent   int
	NotificationsFailed int
}
