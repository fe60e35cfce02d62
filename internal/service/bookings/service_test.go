package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartclassroom/SCB-BookingService/internal/domain"
	bookingRepo "github.com/smartclassroom/SCB-BookingService/internal/infra/storage/booking"
	"github.com/smartclassroom/SCB-BookingService/internal/service/bookings/models"
	"github.com/smartclassroom/SCB-BookingService/pkg/ptr"
)

type fakeRepo struct {
	bookings      map[int64]*domain.Booking
	byUser        []*domain.Booking
	byUserErr     error
	lastStatus    *domain.BookingStatus
	summary       *domain.StatusSummary
	receiptURLs   map[int64]string
	setReceiptErr error
}

func newFakeRepo(bookings ...*domain.Booking) *fakeRepo {
	m := make(map[int64]*domain.Booking, len(bookings))
	for _, b := range bookings {
		m[b.ID] = b
	}
	return &fakeRepo{bookings: m, receiptURLs: make(map[int64]string)}
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	out := *b
	return &out, nil
}

func (f *fakeRepo) GetByUserID(_ context.Context, _ int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	f.lastStatus = status
	return f.byUser, f.byUserErr
}

func (f *fakeRepo) SetReceipt(_ context.Context, id int64, receiptURL string) error {
	if f.setReceiptErr != nil {
		return f.setReceiptErr
	}
	f.receiptURLs[id] = receiptURL
	return nil
}

func (f *fakeRepo) CountByStatusForUser(context.Context, int64) (*domain.StatusSummary, error) {
	return f.summary, nil
}

type fakeFileStore struct {
	url          string
	err          error
	lastPublicID string
	lastImage    []byte
}

func (f *fakeFileStore) Upload(_ context.Context, image []byte, publicID string) (string, error) {
	f.lastImage = image
	f.lastPublicID = publicID
	return f.url, f.err
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func ownedBooking(id, userID int64) *domain.Booking {
	start := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)
	return &domain.Booking{
		ID:        id,
		UserID:    userID,
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Purpose:   "Workshop",
		Attendees: 8,
		Status:    domain.StatusApproved,
	}
}

func TestGetByID_Owner(t *testing.T) {
	svc := NewService(newFakeRepo(ownedBooking(1, 7)), &fakeFileStore{}, nopLogger{})

	res, err := svc.GetByID(context.Background(), 1, models.Actor{UserID: 7})

	require.NoError(t, err)
	assert.Equal(t, int64(1), res.ID)
	assert.Equal(t, "2025-03-12", res.Date)
	assert.Equal(t, "10:00", res.StartTime)
	assert.Equal(t, "11:00", res.EndTime)
}

func TestGetByID_Staff(t *testing.T) {
	svc := NewService(newFakeRepo(ownedBooking(1, 7)), &fakeFileStore{}, nopLogger{})

	res, err := svc.GetByID(context.Background(), 1, models.Actor{UserID: 99, IsStaff: true})

	require.NoError(t, err)
	assert.Equal(t, int64(7), res.UserID)
}

func TestGetByID_ForeignUserDenied(t *testing.T) {
	svc := NewService(newFakeRepo(ownedBooking(1, 7)), &fakeFileStore{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 1, models.Actor{UserID: 8})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), &fakeFileStore{}, nopLogger{})

	_, err := svc.GetByID(context.Background(), 404, models.Actor{UserID: 7})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetUserBookings_StatusFilter(t *testing.T) {
	repo := newFakeRepo()
	repo.byUser = []*domain.Booking{ownedBooking(1, 7)}
	svc := NewService(repo, &fakeFileStore{}, nopLogger{})

	res, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		Actor:  models.Actor{UserID: 7},
		UserID: 7,
		Status: ptr.Ptr("approved"),
	})

	require.NoError(t, err)
	require.NotNil(t, repo.lastStatus)
	assert.Equal(t, domain.StatusApproved, *repo.lastStatus)
	assert.Len(t, res.Bookings, 1)
}

func TestGetUserBookings_InvalidStatus(t *testing.T) {
	svc := NewService(newFakeRepo(), &fakeFileStore{}, nopLogger{})

	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		Actor:  models.Actor{UserID: 7},
		UserID: 7,
		Status: ptr.Ptr("Approved"),
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetUserBookings_ForeignUserDenied(t *testing.T) {
	svc := NewService(newFakeRepo(), &fakeFileStore{}, nopLogger{})

	_, err := svc.GetUserBookings(context.Background(), &models.GetUserBookingsRequest{
		Actor:  models.Actor{UserID: 8},
		UserID: 7,
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetStatusSummary(t *testing.T) {
	repo := newFakeRepo()
	repo.summary = &domain.StatusSummary{Pending: 2, Approved: 3, Rejected: 1, Total: 6}
	svc := NewService(repo, &fakeFileStore{}, nopLogger{})

	res, err := svc.GetStatusSummary(context.Background(), 7, models.Actor{UserID: 7})

	require.NoError(t, err)
	assert.Equal(t, 2, res.Pending)
	assert.Equal(t, 3, res.Approved)
	assert.Equal(t, 1, res.Rejected)
	assert.Equal(t, 6, res.Total)
}

func TestGetStatusSummary_ForeignUserDenied(t *testing.T) {
	svc := NewService(newFakeRepo(), &fakeFileStore{}, nopLogger{})

	_, err := svc.GetStatusSummary(context.Background(), 7, models.Actor{UserID: 8})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestAttachReceipt(t *testing.T) {
	repo := newFakeRepo(ownedBooking(1, 7))
	store := &fakeFileStore{url: "https://files.example.com/receipt_1.jpg"}
	svc := NewService(repo, store, nopLogger{})

	res, err := svc.AttachReceipt(context.Background(), &models.AttachReceiptRequest{
		Actor:     models.Actor{UserID: 7},
		BookingID: 1,
		Image:     []byte{0xFF, 0xD8},
	})

	require.NoError(t, err)
	assert.Equal(t, "receipt_1", store.lastPublicID)
	assert.Equal(t, store.url, repo.receiptURLs[1])
	require.NotNil(t, res.ReceiptURL)
	assert.Equal(t, store.url, *res.ReceiptURL)
}

func TestAttachReceipt_StaffIsNotOwner(t *testing.T) {
	// Чек прикрепляет только владелец, staff-роль доступа не дает
	svc := NewService(newFakeRepo(ownedBooking(1, 7)), &fakeFileStore{}, nopLogger{})

	_, err := svc.AttachReceipt(context.Background(), &models.AttachReceiptRequest{
		Actor:     models.Actor{UserID: 99, IsStaff: true},
		BookingID: 1,
		Image:     []byte{0x01},
	})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestAttachReceipt_EmptyImage(t *testing.T) {
	svc := NewService(newFakeRepo(ownedBooking(1, 7)), &fakeFileStore{}, nopLogger{})

	_, err := svc.AttachReceipt(context.Background(), &models.AttachReceiptRequest{
		Actor:     models.Actor{UserID: 7},
		BookingID: 1,
	})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAttachReceipt_UploadFailure(t *testing.T) {
	store := &fakeFileStore{err: errors.New("gateway timeout")}
	svc := NewService(newFakeRepo(ownedBooking(1, 7)), store, nopLogger{})

	_, err := svc.AttachReceipt(context.Background(), &models.AttachReceiptRequest{
		Actor:     models.Actor{UserID: 7},
		BookingID: 1,
		Image:     []byte{0x01},
	})

	assert.ErrorIs(t, err, ErrReceiptUpload)
}
