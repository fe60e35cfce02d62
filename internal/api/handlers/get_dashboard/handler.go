package get_dashboard

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/smartclassroom/SCB-BookingService/internal/api/handlers"
	"github.com/smartclassroom/SCB-BookingService/internal/api/middleware"
	bookingsService "github.com/smartclassroom/SCB-BookingService/internal/service/bookings"
	"github.com/smartclassroom/SCB-BookingService/internal/service/bookings/models"
)

const (
	msgInvalidUserID = "invalid user id"
	msgAccessDenied  = "access denied"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/users/{userId}/dashboard
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil || userID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	actor := models.Actor{
		UserID:  middleware.UserID(r.Context()),
		IsStaff: middleware.IsStaff(r.Context()),
	}

	result, err := h.service.GetStatusSummary(r.Context(), userID, actor)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrAccessDenied):
			h.logger.Warn("GET /users/%d/dashboard - Access denied for user=%d", userID, actor.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /users/%d/dashboard - Failed: %v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
