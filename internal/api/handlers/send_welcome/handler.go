package send_welcome

import (
	"errors"
	"net/http"

	"github.com/smartclassroom/SCB-BookingService/internal/api/handlers"
	welcomeUsecase "github.com/smartclassroom/SCB-BookingService/internal/usecase/send_welcome"
)

const (
	msgInvalidBody   = "invalid request body"
	msgInvalidUserID = "invalid user id"
	msgUserNotFound  = "user not found"
	msgNoEmail       = "user has no email address"
)

type Handler struct {
	usecase SendWelcomeUsecase
	logger  Logger
}

func NewHandler(usecase SendWelcomeUsecase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle POST /api/v1/notifications/welcome
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SendWelcomeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /notifications/welcome - Bad body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if req.UserID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	result, err := h.usecase.Execute(r.Context(), &welcomeUsecase.Request{UserID: req.UserID})
	if err != nil {
		switch {
		case errors.Is(err, welcomeUsecase.ErrUserNotFound):
			h.logger.Warn("POST /notifications/welcome - User id=%d not found", req.UserID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, welcomeUsecase.ErrNoEmail):
			handlers.RespondBadRequest(w, msgNoEmail)

		default:
			h.logger.Error("POST /notifications/welcome - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, SendWelcomeResponse{Delivered: result.Delivered})
}
