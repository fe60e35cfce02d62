package attach_receipt

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
	msgInvalidBookingID = "invalid booking id"
	msgInvalidBody      = "invalid request body"
	msgInvalidImage     = "invalid image payload"
	msgBookingNotFound  = "booking not found"
	msgAccessDenied     = "access denied"
	msgUploadFailed     = "receipt upload failed"
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

// Handle POST /api/v1/bookings/{bookingId}/receipt
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := strconv.ParseInt(mux.Vars(r)["bookingId"], 10, 64)
	if err != nil || bookingID <= 0 {
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req AttachReceiptRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/%d/receipt - Bad body: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	image, err := req.DecodeImage()
	if err != nil {
		h.logger.Warn("POST /bookings/%d/receipt - Bad image: %v", bookingID, err)
		handlers.RespondBadRequest(w, msgInvalidImage)
		return
	}

	serviceReq := &models.AttachReceiptRequest{
		Actor: models.Actor{
			UserID:  middleware.UserID(r.Context()),
			IsStaff: middleware.IsStaff(r.Context()),
		},
		BookingID: bookingID,
		Image:     image,
	}

	result, err := h.service.AttachReceipt(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookingsService.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/%d/receipt - Not found", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookingsService.ErrAccessDenied):
			h.logger.Warn("POST /bookings/%d/receipt - Access denied for user=%d", bookingID, serviceReq.Actor.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookingsService.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidImage)

		case errors.Is(err, bookingsService.ErrReceiptUpload):
			h.logger.Error("POST /bookings/%d/receipt - Upload failed: %v", bookingID, err)
			handlers.RespondError(w, http.StatusBadGateway, msgUploadFailed)

		default:
			h.logger.Error("POST /bookings/%d/receipt - Failed: %v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
