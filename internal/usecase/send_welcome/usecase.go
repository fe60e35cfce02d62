package send_welcome

import (
	"context"
	"errors"
	"fmt"

	"github.com/smartclassroom/SCB-BookingService/internal/integrations/mailer"
	"github.com/smartclassroom/SCB-BookingService/internal/integrations/userservice"
)

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("send_welcome: user not found")

	// ErrNoEmail возвращается, когда у пользователя не указан email
	ErrNoEmail = errors.New("send_welcome: user has no email address")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("send_welcome: internal error")
)

// Request запрос на отправку приветственного письма
type Request struct {
	UserID int64
}

// Response результат отправки
type Response struct {
	Delivered bool
}

// UseCase отправка приветственного письма новому пользователю.
// Вызывается identity-сервисом после успешной регистрации.
type UseCase struct {
	userClient UserServiceClient
	notifier   Notifier
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(userClient UserServiceClient, notifier Notifier, logger Logger) *UseCase {
	return &UseCase{
		userClient: userClient,
		notifier:   notifier,
		logger:     logger,
	}
}

// Execute отправляет приветственное письмо
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	user, err := uc.userClient.GetUser(ctx, req.UserID)
	if err != nil {
		if errors.Is(err, userservice.ErrUserNotFound) {
			uc.logger.Warn("SendWelcome: user id=%d not found", req.UserID)
			return nil, ErrUserNotFound
		}
		uc.logger.Error("SendWelcome: failed to fetch user id=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to fetch user: %v", ErrInternal, err)
	}

	if !user.HasEmail() {
		uc.logger.Info("SendWelcome: user id=%d has no email", req.UserID)
		return nil, ErrNoEmail
	}

	delivered := uc.notifier.Send(user.Email, mailer.TemplateWelcome, mailer.Context{
		"Username": user.Username,
	})

	if !delivered {
		uc.logger.Warn("SendWelcome: welcome email to user id=%d was not delivered", req.UserID)
	}

	return &Response{Delivered: delivered}, nil
}
