package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/smartclassroom/SCB-BookingService/internal/domain"
	bookingRepo "github.com/smartclassroom/SCB-BookingService/internal/infra/storage/booking"
	"github.com/smartclassroom/SCB-BookingService/internal/service/bookings/models"
)

// Service сервис чтения бронирований и прикрепления чеков
type Service struct {
	bookingRepo BookingRepository
	fileStore   FileStore
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	fileStore FileStore,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		fileStore:   fileStore,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID.
// Пользователь видит только свои бронирования, сотрудники видят любые.
func (s *Service) GetByID(ctx context.Context, id int64, actor models.Actor) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, actor.UserID)

	booking, err := s.loadBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	if !actor.CanAccessBookingsOf(booking.UserID) {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%d", actor.UserID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя, сначала новые.
// Опционально фильтрует по статусу.
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	if !req.Actor.CanAccessBookingsOf(req.UserID) {
		s.logger.Warn("GetUserBookings: access denied for user=%d to bookings of user=%d",
			req.Actor.UserID, req.UserID)
		return nil, ErrAccessDenied
	}

	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := domain.ParseStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetStatusSummary получает счетчики бронирований пользователя по статусам
// (для donut-диаграммы дашборда)
func (s *Service) GetStatusSummary(ctx context.Context, userID int64, actor models.Actor) (*models.StatusSummaryResponse, error) {
	if !actor.CanAccessBookingsOf(userID) {
		s.logger.Warn("GetStatusSummary: access denied for user=%d to summary of user=%d", actor.UserID, userID)
		return nil, ErrAccessDenied
	}

	summary, err := s.bookingRepo.CountByStatusForUser(ctx, userID)
	if err != nil {
		s.logger.Error("GetStatusSummary: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetStatusSummary - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainSummary(summary), nil
}

// AttachReceipt загружает изображение чека в файловое хранилище и
// сохраняет ссылку в бронировании. Прикрепить чек может только владелец.
func (s *Service) AttachReceipt(ctx context.Context, req *models.AttachReceiptRequest) (*models.BookingResponse, error) {
	s.logger.Info("AttachReceipt: booking=%d, user=%d, size=%d bytes",
		req.BookingID, req.Actor.UserID, len(req.Image))

	if len(req.Image) == 0 {
		return nil, fmt.Errorf("%w: empty receipt image", ErrInvalidInput)
	}

	booking, err := s.loadBooking(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}

	// Чек прикрепляет владелец; сотрудникам это не нужно
	if booking.UserID != req.Actor.UserID {
		s.logger.Warn("AttachReceipt: access denied for user=%d to booking id=%d",
			req.Actor.UserID, req.BookingID)
		return nil, ErrAccessDenied
	}

	publicID := fmt.Sprintf("receipt_%d", req.BookingID)
	url, err := s.fileStore.Upload(ctx, req.Image, publicID)
	if err != nil {
		s.logger.Error("AttachReceipt: upload failed for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: %v", ErrReceiptUpload, err)
	}

	if err := s.bookingRepo.SetReceipt(ctx, req.BookingID, url); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, ErrBookingNotFound
		}
		s.logger.Error("AttachReceipt: failed to save receipt url for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: AttachReceipt - repository error: %v", ErrInternal, err)
	}

	booking.ReceiptURL = &url
	s.logger.Info("AttachReceipt: receipt attached to booking id=%d", req.BookingID)

	return models.FromDomainBooking(booking), nil
}

// loadBooking загружает бронирование, транслируя ошибку репозитория
func (s *Service) loadBooking(ctx context.Context, id int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("loadBooking: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("loadBooking: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: repository error: %v", ErrInternal, err)
	}
	return booking, nil
}
