package week_grid

import (
	"context"
	"fmt"

	"github.com/smartclassroom/SCB-BookingService/internal/domain"
)

// UseCase use case построения недельной сетки календаря
type UseCase struct {
	bookingRepo BookingRepository
	userClient  UserServiceClient
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	userClient UserServiceClient,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		userClient:  userClient,
		logger:      logger,
	}
}

// Execute строит сетку недели, в которую попадает опорная дата.
//
// В сетку входят только бронирования, начинающиеся внутри полуоткрытого
// окна [понедельник, следующий понедельник): заявка, начинающаяся ровно
// на верхней границе, относится уже к следующей неделе.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req.ReferenceDate.IsZero() {
		return nil, ErrInvalidDate
	}

	weekStart, weekEnd := domain.WeekWindow(req.ReferenceDate)

	uc.logger.Info("WeekGrid: building grid for week %s - %s",
		weekStart.Format(domain.DateFormat), weekEnd.Format(domain.DateFormat))

	bookings, err := uc.bookingRepo.ListBetween(ctx, weekStart, weekEnd)
	if err != nil {
		uc.logger.Error("WeekGrid: failed to list bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to list bookings: %v", ErrInternal, err)
	}

	colors := buildColorMap(uc.knownUserIDs(ctx))

	resp := &Response{
		WeekStart: weekStart,
		WeekEnd:   weekEnd,
		Days:      make([]Day, 0, 7),
		Hours:     make([]int, 0, domain.CalendarLastHour-domain.CalendarFirstHour+1),
		Cells:     make(map[string][]GridBooking),
		Colors:    colors,
	}

	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i)
		resp.Days = append(resp.Days, Day{
			Weekday: day.Weekday().String(),
			ISODate: day.Format(domain.DateFormat),
		})
	}

	for h := domain.CalendarFirstHour; h <= domain.CalendarLastHour; h++ {
		resp.Hours = append(resp.Hours, h)
	}

	for _, b := range bookings {
		key := CellKey(b.StartTime.Format(domain.DateFormat), b.StartTime.Hour())
		resp.Cells[key] = append(resp.Cells[key], GridBooking{
			ID:        b.ID,
			UserID:    b.UserID,
			Purpose:   b.Purpose,
			Attendees: b.Attendees,
			Status:    b.Status,
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
			Color:     colors[b.UserID],
		})
	}

	uc.logger.Info("WeekGrid: %d booking(s) in week window", len(bookings))

	return resp, nil
}

// knownUserIDs получает множество известных пользователей для раскраски.
// Основной источник данных identity-сервис; при его недоступности используется
// множество владельцев бронирований из БД (graceful degradation).
func (uc *UseCase) knownUserIDs(ctx context.Context) []int64 {
	userIDs, err := uc.userClient.ListUserIDs(ctx)
	if err == nil {
		return userIDs
	}

	uc.logger.Warn("WeekGrid: identity service unavailable, falling back to booking owners: %v", err)

	userIDs, err = uc.bookingRepo.ListUserIDs(ctx)
	if err != nil {
		uc.logger.Error("WeekGrid: failed to list booking owners: %v", err)
		return nil
	}
	return userIDs
}
