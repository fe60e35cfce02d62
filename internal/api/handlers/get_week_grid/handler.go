package get_week_grid

import (
	"errors"
	"net/http"
	"time"

	"github.com/smartclassroom/SCB-BookingService/internal/api/handlers"
	"github.com/smartclassroom/SCB-BookingService/internal/domain"
	"github.com/smartclassroom/SCB-BookingService/internal/usecase/week_grid"
)

const (
	msgInvalidDate = "invalid date, expected YYYY-MM-DD"
)

type Handler struct {
	usecase WeekGridUsecase
	logger  Logger
}

func NewHandler(usecase WeekGridUsecase, logger Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar/week?date=YYYY-MM-DD
// Без параметра date строится сетка текущей недели.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reference := time.Now()

	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		reference = parsed
	}

	result, err := h.usecase.Execute(r.Context(), &week_grid.Request{ReferenceDate: reference})
	if err != nil {
		switch {
		case errors.Is(err, week_grid.ErrInvalidDate):
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /calendar/week - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, fromUsecaseResponse(result))
}
