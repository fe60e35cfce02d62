package week_grid

import (
	"fmt"
	"time"

	"github.com/smartclassroom/SCB-BookingService/internal/domain"
)

// Request запрос недельного календаря
type Request struct {
	// ReferenceDate любая дата внутри интересующей недели.
	// Окно недели: [понедельник, понедельник+7 дней), полуоткрытое.
	ReferenceDate time.Time
}

// Day день недели в сетке календаря
type Day struct {
	Weekday string // "Monday" ... "Sunday"
	ISODate string // "2006-01-02"
}

// GridBooking бронирование в ячейке сетки.
// Сетка показывает заявки всех статусов, оформление по статусу
// выполняет слой отображения.
type GridBooking struct {
	ID        int64
	UserID    int64
	Purpose   string
	Attendees int
	Status    domain.BookingStatus
	StartTime time.Time
	EndTime   time.Time
	Color     string
}

// Response недельная сетка календаря
type Response struct {
	WeekStart time.Time
	WeekEnd   time.Time
	Days      []Day // ровно 7 дней, с понедельника
	Hours     []int // отображаемые часы, 7..22

	// Cells ячейки сетки, ключ строится через CellKey(isoDate, hour).
	// Пустые ячейки в map не попадают.
	Cells map[string][]GridBooking

	// Colors отображение userID -> цвет палитры
	Colors map[int64]string
}

// CellKey ключ ячейки сетки по дате и часу начала
func CellKey(isoDate string, hour int) string {
	return fmt.Sprintf("%s:%02d", isoDate, hour)
}
