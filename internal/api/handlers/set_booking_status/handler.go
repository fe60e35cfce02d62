package set_booking_status

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/smartclassroom/SCB-BookingService/internal/api/handlers"
	"github.com/smartclassroom/SCB-BookingService/internal/api/middleware"
	setStatus "github.com/smartclassroom/SCB-BookingService/internal/usecase/set_status"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidBookingID   = "invalid booking id"
	msgInvalidStatus      = "invalid target status, expected approved or rejected"
	msgBookingNotFound    = "booking not found"
	msgSlotConflict       = "cannot approve: the slot is occupied by another active booking"
	msgEmptyBatch         = "bookingIds must not be empty"
)

type Handler struct {
	useCase SetStatusUseCase
	logger  Logger
}

func NewHandler(useCase SetStatusUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.UserID(r.Context())

	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req SetStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/%d/status - Invalid request body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &setStatus.Request{
		BookingID: bookingID,
		NewStatus: req.Status,
		ActorID:   actorID,
	})
	if err != nil {
		h.respondUseCaseError(w, bookingID, err)
		return
	}

	h.logger.Info("PATCH /bookings/%d/status - Status set to %s (changed=%v) by actor=%d",
		bookingID, req.Status, result.Changed, actorID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// HandleBulk POST /api/v1/bookings/status
func (h *Handler) HandleBulk(w http.ResponseWriter, r *http.Request) {
	actorID := middleware.UserID(r.Context())

	var req BulkSetStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.ExecuteBulk(r.Context(), &setStatus.BulkRequest{
		BookingIDs: req.BookingIDs,
		NewStatus:  req.Status,
		ActorID:    actorID,
	})
	if err != nil {
		switch {
		case errors.Is(err, setStatus.ErrEmptyBatch):
			handlers.RespondBadRequest(w, msgEmptyBatch)
		case errors.Is(err, setStatus.ErrInvalidStatus):
			handlers.RespondBadRequest(w, msgInvalidStatus)
		default:
			h.logger.Error("POST /bookings/status - Bulk update failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/status - Bulk %s: changed=%d skipped=%d by actor=%d",
		req.Status, result.Changed, result.Skipped, actorID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseBulkResponse(result))
}

func (h *Handler) respondUseCaseError(w http.ResponseWriter, bookingID int64, err error) {
	switch {
	case errors.Is(err, setStatus.ErrBookingNotFound):
		h.logger.Warn("SetStatus - Booking not found: booking_id=%d", bookingID)
		handlers.RespondNotFound(w, msgBookingNotFound)

	case errors.Is(err, setStatus.ErrInvalidStatus):
		handlers.RespondBadRequest(w, msgInvalidStatus)

	case errors.Is(err, setStatus.ErrSlotConflict):
		h.logger.Warn("SetStatus - Slot conflict: booking_id=%d", bookingID)
		handlers.RespondConflict(w, msgSlotConflict)

	default:
		h.logger.Error("SetStatus - Failed: booking_id=%d, error=%v", bookingID, err)
		handlers.RespondInternalError(w)
	}
}
