package set_status

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/smartclassroom/SCB-BookingService/internal/domain"
	bookingRepo "github.com/smartclassroom/SCB-BookingService/internal/infra/storage/booking"
	"github.com/smartclassroom/SCB-BookingService/internal/integrations/mailer"
)

// UseCase use case одобрения/отклонения заявок на бронирование
type UseCase struct {
	bookingRepo BookingRepository
	userClient  UserServiceClient
	notifier    Notifier
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	userClient UserServiceClient,
	notifier Notifier,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		userClient:  userClient,
		notifier:    notifier,
		logger:      logger,
	}
}

// Execute применяет целевой статус к бронированию.
//
// Запись обновляется всегда (идемпотентная запись, updated_at обновляется),
// но уведомление владельцу отправляется только если значение статуса
// действительно изменилось и у владельца указан email. Сбой доставки
// логируется и не откатывает смену статуса.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SetStatus: booking=%d, target=%s, actor=%d", req.BookingID, req.NewStatus, req.ActorID)

	newStatus, err := domain.ParseStatus(req.NewStatus)
	if err != nil {
		uc.logger.Warn("SetStatus: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}

	prevStatus, err := uc.bookingRepo.UpdateStatus(ctx, req.BookingID, newStatus)
	if err != nil {
		switch {
		case errors.Is(err, bookingRepo.ErrBookingNotFound):
			uc.logger.Warn("SetStatus: booking id=%d not found", req.BookingID)
			return nil, ErrBookingNotFound
		case errors.Is(err, bookingRepo.ErrSlotTaken):
			uc.logger.Warn("SetStatus: approving booking id=%d conflicts with an existing active booking", req.BookingID)
			return nil, ErrSlotConflict
		default:
			uc.logger.Error("SetStatus: failed to update status for booking id=%d: %v", req.BookingID, err)
			return nil, fmt.Errorf("%w: failed to update status: %v", ErrInternal, err)
		}
	}

	booking, err := uc.bookingRepo.GetByID(ctx, req.BookingID)
	if err != nil {
		uc.logger.Error("SetStatus: failed to reload booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to reload booking: %v", ErrInternal, err)
	}

	changed := prevStatus != newStatus
	notified := false

	if changed {
		uc.logger.Info("SetStatus: booking id=%d transitioned %s -> %s", req.BookingID, prevStatus, newStatus)
		notified = uc.notifyOwner(ctx, booking)
	} else {
		uc.logger.Info("SetStatus: booking id=%d already %s, no notification", req.BookingID, newStatus)
	}

	return &Response{
		Booking:          booking,
		Changed:          changed,
		NotificationSent: notified,
	}, nil
}

// ExecuteBulk применяет целевой статус к каждому бронированию из списка
// независимо. Записи, уже находящиеся в целевом статусе, и ненайденные ID
// пропускаются, не прерывая обработку остальных.
func (uc *UseCase) ExecuteBulk(ctx context.Context, req *BulkRequest) (*BulkResponse, error) {
	if len(req.BookingIDs) == 0 {
		return nil, ErrEmptyBatch
	}

	if _, err := domain.ParseStatus(req.NewStatus); err != nil {
		uc.logger.Warn("SetStatusBulk: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}

	uc.logger.Info("SetStatusBulk: %d booking(s), target=%s, actor=%d",
		len(req.BookingIDs), req.NewStatus, req.ActorID)

	resp := &BulkResponse{}

	for _, id := range req.BookingIDs {
		result, err := uc.Execute(ctx, &Request{
			BookingID: id,
			NewStatus: req.NewStatus,
			ActorID:   req.ActorID,
		})
		if err != nil {
			if errors.Is(err, ErrBookingNotFound) {
				resp.NotFound++
				continue
			}
			// Ошибка одной записи не прерывает пакет
			uc.logger.Error("SetStatusBulk: booking id=%d failed: %v", id, err)
			resp.NotificationsFailed++
			continue
		}

		if !result.Changed {
			resp.Skipped++
			continue
		}

		resp.Changed++
		if result.NotificationSent {
			resp.NotificationsSent++
		} else {
			resp.NotificationsFailed++
		}
	}

	uc.logger.Info("SetStatusBulk: changed=%d skipped=%d not_found=%d notified=%d",
		resp.Changed, resp.Skipped, resp.NotFound, resp.NotificationsSent)

	return resp, nil
}

// notifyOwner отправляет владельцу письмо об изменении статуса.
// Возвращает true только при подтвержденной доставке.
func (uc *UseCase) notifyOwner(ctx context.Context, booking *domain.Booking) bool {
	user, err := uc.userClient.GetUser(ctx, booking.UserID)
	if err != nil {
		uc.logger.Warn("SetStatus: failed to fetch user %d for notification: %v", booking.UserID, err)
		return false
	}

	if !user.HasEmail() {
		uc.logger.Info("SetStatus: user %d has no email, skipping notification", booking.UserID)
		return false
	}

	statusMessage, ok := mailer.StatusMessages[string(booking.Status)]
	if !ok {
		statusMessage = "Your booking status has been updated."
	}

	delivered := uc.notifier.Send(user.Email, mailer.TemplateBookingStatus, mailer.Context{
		"Username":      user.Username,
		"Purpose":       booking.Purpose,
		"Date":          booking.StartTime.Format(domain.DateFormat),
		"TimeRange":     fmt.Sprintf("%s - %s", booking.StartTime.Format(domain.TimeFormat), booking.EndTime.Format(domain.TimeFormat)),
		"StatusTitle":   titleCase(string(booking.Status)),
		"StatusMessage": statusMessage,
	})

	if !delivered {
		uc.logger.Warn("SetStatus: status notification to user %d was not delivered", booking.UserID)
	}

	return delivered
}

// titleCase делает первую букву статуса заглавной для темы письма
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
