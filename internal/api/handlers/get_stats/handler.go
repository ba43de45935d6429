package get_stats

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/SMC-AppointmentService/internal/api/middleware"
	appointmentsService "github.com/m04kA/SMC-AppointmentService/internal/service/appointments"
	"github.com/m04kA/SMC-AppointmentService/internal/service/appointments/models"
)

const (
	msgForbidden    = "статистика доступна только владельцу бизнеса"
	msgUnauthorized = "требуется аутентификация"
)

// StatsResponse HTTP response model
type StatsResponse struct {
	BusinessID int64 `json:"business_id"`
	Total      int   `json:"total"`
	Pending    int   `json:"pending"`
	Approved   int   `json:"approved"`
	Denied     int   `json:"denied"`
	Cancelled  int   `json:"cancelled"`
}

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actor, ok := middleware.ActorFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	result, err := h.service.Stats(r.Context(), &models.StatsRequest{Actor: actor})
	if err != nil {
		switch {
		case errors.Is(err, appointmentsService.ErrAccessDenied):
			h.logger.Warn("GET /stats - Access denied: actor_id=%d (%s)", actor.ID, actor.Role)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /stats - Failed: actor_id=%d, error=%v", actor.ID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, &StatsResponse{
		BusinessID: result.BusinessID,
		Total:      result.Total,
		Pending:    result.Pending,
		Approved:   result.Approved,
		Denied:     result.Denied,
		Cancelled:  result.Cancelled,
	})
}
