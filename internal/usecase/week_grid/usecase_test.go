package week_grid

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartclassroom/SCB-BookingService/internal/domain"
)

type fakeRepo struct {
	bookings     []*domain.Booking
	listErr      error
	ownerIDs     []int64
	ownerErr     error
	lastStart    time.Time
	lastEnd      time.Time
	ownersCalled bool
}

func (f *fakeRepo) ListBetween(_ context.Context, start, end time.Time) ([]*domain.Booking, error) {
	f.lastStart, f.lastEnd = start, end
	if f.listErr != nil {
		return nil, f.listErr
	}
	// Фейк повторяет контракт хранилища: полуоткрытое окно по start_time
	var out []*domain.Booking
	for _, b := range f.bookings {
		if !b.StartTime.Before(start) && b.StartTime.Before(end) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeRepo) ListUserIDs(context.Context) ([]int64, error) {
	f.ownersCalled = true
	return f.ownerIDs, f.ownerErr
}

type fakeUserClient struct {
	ids []int64
	err error
}

func (f *fakeUserClient) ListUserIDs(context.Context) ([]int64, error) {
	return f.ids, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func bookingAt(id, userID int64, start time.Time) *domain.Booking {
	return &domain.Booking{
		ID:        id,
		UserID:    userID,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Purpose:   "Seminar",
		Attendees: 10,
		Status:    domain.StatusApproved,
	}
}

func TestExecute_WeekWindow(t *testing.T) {
	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	repo := &fakeRepo{}
	uc := NewUseCase(repo, &fakeUserClient{}, nopLogger{})

	// Опорная дата в середине недели
	res, err := uc.Execute(context.Background(), &Request{
		ReferenceDate: time.Date(2025, 3, 12, 15, 0, 0, 0, time.UTC),
	})

	require.NoError(t, err)
	assert.Equal(t, monday, res.WeekStart)
	assert.Equal(t, monday.AddDate(0, 0, 7), res.WeekEnd)
	assert.Equal(t, monday, repo.lastStart)
	assert.Equal(t, monday.AddDate(0, 0, 7), repo.lastEnd)

	require.Len(t, res.Days, 7)
	assert.Equal(t, "Monday", res.Days[0].Weekday)
	assert.Equal(t, "2025-03-10", res.Days[0].ISODate)
	assert.Equal(t, "Sunday", res.Days[6].Weekday)
	assert.Equal(t, "2025-03-16", res.Days[6].ISODate)

	require.Len(t, res.Hours, 16)
	assert.Equal(t, 7, res.Hours[0])
	assert.Equal(t, 22, res.Hours[len(res.Hours)-1])
}

func TestExecute_UpperBoundaryExcluded(t *testing.T) {
	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	nextMonday := monday.AddDate(0, 0, 7)

	repo := &fakeRepo{bookings: []*domain.Booking{
		bookingAt(1, 5, monday.Add(10*time.Hour)),              // понедельник 10:00
		bookingAt(2, 5, nextMonday.Add(8*time.Hour)),           // следующая неделя
		bookingAt(3, 5, monday.AddDate(0, 0, 6).Add(time.Hour)), // воскресенье
	}}
	uc := NewUseCase(repo, &fakeUserClient{ids: []int64{5}}, nopLogger{})

	res, err := uc.Execute(context.Background(), &Request{ReferenceDate: monday})

	require.NoError(t, err)

	total := 0
	for _, cell := range res.Cells {
		total += len(cell)
	}
	assert.Equal(t, 2, total)
	assert.Contains(t, res.Cells, CellKey("2025-03-10", 10))
	assert.Contains(t, res.Cells, CellKey("2025-03-16", 1))
	assert.NotContains(t, res.Cells, CellKey("2025-03-17", 8))
}

func TestExecute_CellBucketing(t *testing.T) {
	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	repo := &fakeRepo{bookings: []*domain.Booking{
		bookingAt(1, 5, monday.Add(10*time.Hour)),
		bookingAt(2, 6, monday.AddDate(0, 0, 2).Add(14*time.Hour)),
	}}
	uc := NewUseCase(repo, &fakeUserClient{ids: []int64{5, 6}}, nopLogger{})

	res, err := uc.Execute(context.Background(), &Request{ReferenceDate: monday})

	require.NoError(t, err)
	require.Len(t, res.Cells[CellKey("2025-03-10", 10)], 1)
	require.Len(t, res.Cells[CellKey("2025-03-12", 14)], 1)

	got := res.Cells[CellKey("2025-03-10", 10)][0]
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, res.Colors[5], got.Color)
	assert.NotEmpty(t, got.Color)
}

func TestExecute_FallbackToBookingOwners(t *testing.T) {
	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	repo := &fakeRepo{
		bookings: []*domain.Booking{bookingAt(1, 5, monday.Add(9*time.Hour))},
		ownerIDs: []int64{5},
	}
	uc := NewUseCase(repo, &fakeUserClient{err: errors.New("connection refused")}, nopLogger{})

	res, err := uc.Execute(context.Background(), &Request{ReferenceDate: monday})

	require.NoError(t, err)
	assert.True(t, repo.ownersCalled)
	assert.Equal(t, palette[0], res.Colors[5])
}

func TestExecute_InvalidDate(t *testing.T) {
	uc := NewUseCase(&fakeRepo{}, &fakeUserClient{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{})

	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestExecute_ListError(t *testing.T) {
	repo := &fakeRepo{listErr: errors.New("connection lost")}
	uc := NewUseCase(repo, &fakeUserClient{}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{
		ReferenceDate: time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
	})

	assert.ErrorIs(t, err, ErrInternal)
}

func TestBuildColorMap_Deterministic(t *testing.T) {
	first := buildColorMap([]int64{30, 10, 20})
	second := buildColorMap([]int64{10, 20, 30})

	assert.Equal(t, first, second)
	assert.Equal(t, palette[0], first[10])
	assert.Equal(t, palette[1], first[20])
	assert.Equal(t, palette[2], first[30])
}

func TestBuildColorMap_Duplicates(t *testing.T) {
	colors := buildColorMap([]int64{10, 10, 20, 10})

	assert.Len(t, colors, 2)
	assert.Equal(t, palette[0], colors[10])
	assert.Equal(t, palette[1], colors[20])
}

func TestBuildColorMap_WrapsAroundPalette(t *testing.T) {
	ids := make([]int64, 0, 12)
	for i := int64(1); i <= 12; i++ {
		ids = append(ids, i)
	}
	colors := buildColorMap(ids)

	assert.Equal(t, palette[0], colors[1])
	assert.Equal(t, palette[0], colors[11]) // 11-й пользователь снова первый цвет
	assert.Equal(t, palette[1], colors[12])
}

func TestBuildColorMap_Empty(t *testing.T) {
	assert.Empty(t, buildColorMap(nil))
}
