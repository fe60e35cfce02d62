package get_week_grid

import (
	"github.com/smartclassroom/SCB-BookingService/internal/domain"
	"github.com/smartclassroom/SCB-BookingService/internal/usecase/week_grid"
)

// DayResponse день в сетке календаря
type DayResponse struct {
	Weekday string `json:"weekday"`
	Date    string `json:"date"`
}

// GridBookingResponse бронирование в ячейке сетки
type GridBookingResponse struct {
	ID        int64  `json:"id"`
	UserID    int64  `json:"userId"`
	Purpose   string `json:"purpose"`
	Attendees int    `json:"attendees"`
	Status    string `json:"status"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Color     string `json:"color"`
}

// WeekGridResponse недельная сетка календаря
type WeekGridResponse struct {
	WeekStart string                           `json:"weekStart"`
	WeekEnd   string                           `json:"weekEnd"`
	Days      []DayResponse                    `json:"days"`
	Hours     []int                            `json:"hours"`
	Cells     map[string][]GridBookingResponse `json:"cells"`
	Colors    map[int64]string                 `json:"colors"`
}

func fromUsecaseResponse(res *week_grid.Response) *WeekGridResponse {
	days := make([]DayResponse, 0, len(res.Days))
	for _, day := range res.Days {
		days = append(days, DayResponse{
			Weekday: day.Weekday,
			Date:    day.ISODate,
		})
	}

	cells := make(map[string][]GridBookingResponse, len(res.Cells))
	for key, bookings := range res.Cells {
		converted := make([]GridBookingResponse, 0, len(bookings))
		for _, b := range bookings {
			converted = append(converted, GridBookingResponse{
				ID:        b.ID,
				UserID:    b.UserID,
				Purpose:   b.Purpose,
				Attendees: b.Attendees,
				Status:    string(b.Status),
				StartTime: b.StartTime.Format(domain.TimeFormat),
				EndTime:   b.EndTime.Format(domain.TimeFormat),
				Color:     b.Color,
			})
		}
		cells[key] = converted
	}

	return &WeekGridResponse{
		WeekStart: res.WeekStart.Format(domain.DateFormat),
		WeekEnd:   res.WeekEnd.Format(domain.DateFormat),
		Days:      days,
		Hours:     res.Hours,
		Cells:     cells,
		Colors:    res.Colors,
	}
}
