package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smartclassroom/SCB-BookingService/internal/domain"
	bookingRepo "github.com/smartclassroom/SCB-BookingService/internal/infra/storage/booking"
	"github.com/smartclassroom/SCB-BookingService/internal/integrations/mailer"
	"github.com/smartclassroom/SCB-BookingService/internal/integrations/userservice"
	"github.com/smartclassroom/SCB-BookingService/pkg/ptr"
)

type fakeRepo struct {
	overlapping    int
	overlapErr     error
	createErr      error
	created        *domain.Booking
	createCalls    int
	overlapCalls   int
	nextID         int64
	lastOverlapEnd time.Time
}

func (f *fakeRepo) Create(_ context.Context, booking *domain.Booking) (*domain.Booking, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *booking
	out.ID = f.nextID
	out.CreatedAt = time.Now()
	out.UpdatedAt = out.CreatedAt
	f.created = &out
	return &out, nil
}

func (f *fakeRepo) CountOverlapping(_ context.Context, _, end time.Time, _ *int64) (int, error) {
	f.overlapCalls++
	f.lastOverlapEnd = end
	return f.overlapping, f.overlapErr
}

type fakeUserClient struct {
	user *userservice.User
	err  error
}

func (f *fakeUserClient) GetUser(context.Context, int64) (*userservice.User, error) {
	return f.user, f.err
}

type fakeNotifier struct {
	sendOK    bool
	sent      []mailer.Template
	manySent  []mailer.Template
	manyCount int
}

func (f *fakeNotifier) Send(_ string, tmpl mailer.Template, _ mailer.Context) bool {
	f.sent = append(f.sent, tmpl)
	return f.sendOK
}

func (f *fakeNotifier) SendToMany(recipients []string, tmpl mailer.Template, _ mailer.Context) int {
	f.manySent = append(f.manySent, tmpl)
	f.manyCount = len(recipients)
	return len(recipients)
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fixedTime struct {
	now time.Time
}

func (f *fixedTime) Now() time.Time { return f.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newTestUseCase(repo *fakeRepo, users *fakeUserClient, notifier *fakeNotifier, tx *fakeTxManager, now time.Time) *UseCase {
	uc := NewUseCase(repo, users, notifier, tx, []string{"admin@example.com"}, nopLogger{})
	uc.timeProvider = &fixedTime{now: now}
	return uc
}

func validRequest() *Request {
	return &Request{
		UserID:    7,
		Date:      time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC),
		SlotHour:  10,
		Purpose:   "Team retrospective",
		Attendees: 5,
	}
}

func TestExecute_Success(t *testing.T) {
	repo := &fakeRepo{nextID: 42}
	users := &fakeUserClient{user: &userservice.User{ID: 7, Username: "alice", Email: "alice@example.com"}}
	notifier := &fakeNotifier{sendOK: true}
	tx := &fakeTxManager{}
	uc := newTestUseCase(repo, users, notifier, tx, time.Date(2025, 3, 12, 8, 0, 0, 0, time.UTC))

	res, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(42), res.Booking.ID)
	assert.Equal(t, domain.StatusPending, res.Booking.Status)
	assert.Equal(t, time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC), res.Booking.StartTime)
	assert.Equal(t, time.Date(2025, 3, 12, 11, 0, 0, 0, time.UTC), res.Booking.EndTime)
	assert.True(t, res.ConfirmationEmailSent)
	assert.True(t, res.OwnerHasEmail)
	assert.Equal(t, 1, tx.calls)
	assert.Equal(t, []mailer.Template{mailer.TemplateBookingConfirmation}, notifier.sent)
	assert.Equal(t, []mailer.Template{mailer.TemplateAdminNewBooking}, notifier.manySent)
}

func TestExecute_SlotInPast(t *testing.T) {
	repo := &fakeRepo{}
	uc := newTestUseCase(repo, &fakeUserClient{}, &fakeNotifier{}, &fakeTxManager{},
		time.Date(2025, 3, 12, 10, 30, 0, 0, time.UTC))

	req := validRequest()
	req.SlotHour = 10 // 10:00 уже началось в 10:30

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrSlotInPast)
	assert.Zero(t, repo.createCalls)
	assert.Zero(t, repo.overlapCalls)
}

func TestExecute_SlotOutsideCatalogue(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, &fakeUserClient{}, &fakeNotifier{}, &fakeTxManager{},
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))

	for _, hour := range []int{7, 18, 0, 23} {
		req := validRequest()
		req.SlotHour = hour
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidSlot, "hour %d", hour)
	}
}

func TestExecute_SlotNotAvailable(t *testing.T) {
	repo := &fakeRepo{overlapping: 1}
	uc := newTestUseCase(repo, &fakeUserClient{}, &fakeNotifier{}, &fakeTxManager{},
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Zero(t, repo.createCalls)
}

func TestExecute_ExclusionConstraintRace(t *testing.T) {
	// Пересечений на момент проверки нет, но вставка натыкается на
	// EXCLUDE-ограничение: конкурирующая транзакция успела раньше.
	repo := &fakeRepo{createErr: bookingRepo.ErrSlotTaken}
	uc := newTestUseCase(repo, &fakeUserClient{}, &fakeNotifier{}, &fakeTxManager{},
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
}

func TestExecute_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{name: "zero user id", mutate: func(r *Request) { r.UserID = 0 }},
		{name: "missing date", mutate: func(r *Request) { r.Date = time.Time{} }},
		{name: "empty purpose", mutate: func(r *Request) { r.Purpose = "   " }},
		{name: "purpose too long", mutate: func(r *Request) {
			long := make([]byte, 0, 101)
			for i := 0; i < 101; i++ {
				long = append(long, 'a')
			}
			r.Purpose = string(long)
		}},
		{name: "zero attendees", mutate: func(r *Request) { r.Attendees = 0 }},
		{name: "too many attendees", mutate: func(r *Request) { r.Attendees = 51 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeRepo{}
			uc := newTestUseCase(repo, &fakeUserClient{}, &fakeNotifier{}, &fakeTxManager{},
				time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))

			req := validRequest()
			tt.mutate(req)

			_, err := uc.Execute(context.Background(), req)

			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Zero(t, repo.createCalls)
		})
	}
}

func TestExecute_PurposeAtLimit(t *testing.T) {
	repo := &fakeRepo{nextID: 1}
	uc := newTestUseCase(repo, &fakeUserClient{err: userservice.ErrUserNotFound}, &fakeNotifier{}, &fakeTxManager{},
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))

	req := validRequest()
	long := make([]byte, 0, 100)
	for i := 0; i < 100; i++ {
		long = append(long, 'a')
	}
	req.Purpose = string(long)

	_, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
}

func TestExecute_NotificationFailureDoesNotFail(t *testing.T) {
	repo := &fakeRepo{nextID: 5}
	users := &fakeUserClient{user: &userservice.User{ID: 7, Username: "bob", Email: "bob@example.com"}}
	notifier := &fakeNotifier{sendOK: false}
	uc := newTestUseCase(repo, users, notifier, &fakeTxManager{},
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))

	res, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.False(t, res.ConfirmationEmailSent)
	assert.True(t, res.OwnerHasEmail)
	assert.NotNil(t, repo.created)
}

func TestExecute_OwnerWithoutEmail(t *testing.T) {
	repo := &fakeRepo{nextID: 5}
	users := &fakeUserClient{user: &userservice.User{ID: 7, Username: "bob"}}
	notifier := &fakeNotifier{sendOK: true}
	uc := newTestUseCase(repo, users, notifier, &fakeTxManager{},
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))

	res, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.False(t, res.ConfirmationEmailSent)
	assert.False(t, res.OwnerHasEmail)
	// Подтверждение не отправлялось, а админское уведомление ушло
	assert.Empty(t, notifier.sent)
	assert.Equal(t, []mailer.Template{mailer.TemplateAdminNewBooking}, notifier.manySent)
}

func TestExecute_DescriptionTooLong(t *testing.T) {
	uc := newTestUseCase(&fakeRepo{}, &fakeUserClient{}, &fakeNotifier{}, &fakeTxManager{},
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))

	long := make([]byte, 0, 1001)
	for i := 0; i < 1001; i++ {
		long = append(long, 'x')
	}
	req := validRequest()
	req.Description = ptr.Ptr(string(long))

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_OverlapQueryError(t *testing.T) {
	repo := &fakeRepo{overlapErr: errors.New("connection lost")}
	uc := newTestUseCase(repo, &fakeUserClient{}, &fakeNotifier{}, &fakeTxManager{},
		time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC))

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
}
