package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/smartclassroom/SCB-BookingService/internal/domain"
	bookingRepo "github.com/smartclassroom/SCB-BookingService/internal/infra/storage/booking"
	"github.com/smartclassroom/SCB-BookingService/internal/integrations/mailer"
)

// UseCase use case создания бронирования аудитории
type UseCase struct {
	bookingRepo  BookingRepository
	userClient   UserServiceClient
	notifier     Notifier
	txManager    TransactionManager
	timeProvider TimeProvider
	adminEmails  []string
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	userClient UserServiceClient,
	notifier Notifier,
	txManager TransactionManager,
	adminEmails []string,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		userClient:   userClient,
		notifier:     notifier,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		adminEmails:  adminEmails,
		logger:       logger,
	}
}

// Execute выполняет создание бронирования.
//
// Проверка занятости слота и вставка выполняются в одной сериализуемой
// транзакции с блокировкой пересекающихся строк, поэтому два конкурентных
// запроса на один слот не могут создать двойное бронирование. Дополнительно
// схема БД содержит EXCLUDE-ограничение на пересекающиеся диапазоны.
//
// Уведомления отправляются после фиксации транзакции и не влияют на
// результат операции.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, date=%s, slot=%02d:00, attendees=%d",
		req.UserID, req.Date.Format(domain.DateFormat), req.SlotHour, req.Attendees)

	// 1. Валидация полей запроса
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Выбранный час должен входить в каталог слотов
	slot, err := domain.SlotForHour(req.SlotHour)
	if err != nil {
		uc.logger.Warn("CreateBooking: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidSlot, err)
	}

	start := slot.Start(req.Date)
	end := slot.End(req.Date)

	// 3. Слот не должен быть в прошлом
	now := uc.timeProvider.Now()
	if start.Before(now) {
		uc.logger.Warn("CreateBooking: slot %s is in the past (now=%s)",
			start.Format("2006-01-02 15:04"), now.Format("2006-01-02 15:04"))
		return nil, ErrSlotInPast
	}

	var result *domain.Booking

	// 4. Проверка пересечений и вставка в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		overlapping, err := uc.bookingRepo.CountOverlapping(txCtx, start, end, nil)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to count overlapping bookings: %v", err)
			return fmt.Errorf("%w: failed to count overlapping bookings: %v", ErrInternal, err)
		}

		if overlapping > 0 {
			uc.logger.Warn("CreateBooking: slot %s already has %d active booking(s)",
				slot, overlapping)
			return ErrSlotNotAvailable
		}

		booking := &domain.Booking{
			UserID:      req.UserID,
			StartTime:   start,
			EndTime:     end,
			Purpose:     strings.TrimSpace(req.Purpose),
			Attendees:   req.Attendees,
			Description: req.Description,
			Status:      domain.StatusPending,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				// EXCLUDE-ограничение сработало раньше нас
				return ErrSlotNotAvailable
			}
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)

	// 5. Уведомления (best-effort, после фиксации транзакции)
	emailSent, hasEmail := uc.notify(ctx, result)

	return &Response{
		Booking:               result,
		ConfirmationEmailSent: emailSent,
		OwnerHasEmail:         hasEmail,
	}, nil
}

// notify отправляет подтверждение пользователю и уведомление администраторам.
// Любой сбой здесь логируется и не влияет на результат бронирования.
func (uc *UseCase) notify(ctx context.Context, booking *domain.Booking) (emailSent, hasEmail bool) {
	tmplCtx := mailer.Context{
		"Username":  fmt.Sprintf("user #%d", booking.UserID),
		"Purpose":   booking.Purpose,
		"Date":      booking.StartTime.Format(domain.DateFormat),
		"TimeRange": fmt.Sprintf("%s - %s", booking.StartTime.Format(domain.TimeFormat), booking.EndTime.Format(domain.TimeFormat)),
		"Attendees": booking.Attendees,
	}

	user, err := uc.userClient.GetUser(ctx, booking.UserID)
	if err != nil {
		uc.logger.Warn("CreateBooking: failed to fetch user %d for notification: %v", booking.UserID, err)
	} else {
		tmplCtx["Username"] = user.Username
		hasEmail = user.HasEmail()
		if hasEmail {
			emailSent = uc.notifier.Send(user.Email, mailer.TemplateBookingConfirmation, tmplCtx)
			if !emailSent {
				uc.logger.Warn("CreateBooking: confirmation email to user %d was not delivered", booking.UserID)
			}
		} else {
			uc.logger.Info("CreateBooking: user %d has no email, skipping confirmation", booking.UserID)
		}
	}

	if delivered := uc.notifier.SendToMany(uc.adminEmails, mailer.TemplateAdminNewBooking, tmplCtx); delivered < len(uc.adminEmails) {
		uc.logger.Warn("CreateBooking: admin notification delivered to %d/%d recipients",
			delivered, len(uc.adminEmails))
	}

	return emailSent, hasEmail
}
