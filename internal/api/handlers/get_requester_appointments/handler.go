package get_requester_appointments

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/DMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/DMC-AppointmentService/internal/api/middleware"
	"github.com/m04kA/DMC-AppointmentService/internal/service/appointments"
)

const (
	msgInvalidRequesterID = "некорректный ID заказчика"
	msgMissingPrincipal   = "отсутствует аутентификация"
	msgForbidden          = "доступ запрещен"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/requesters/{requesterId}/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	requesterIDStr := vars["requesterId"]

	requesterID, err := strconv.ParseInt(requesterIDStr, 10, 64)
	if err != nil {
		h.logger.Warn("GET /requesters/{id}/appointments - Invalid requester ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequesterID)
		return
	}

	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		h.logger.Warn("GET /requesters/{id}/appointments - Missing principal")
		handlers.RespondUnauthorized(w, msgMissingPrincipal)
		return
	}

	// Заказчик видит только собственные записи
	result, err := h.service.GetRequesterAppointments(r.Context(), requesterID, principal)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("GET /requesters/{id}/appointments - Access denied: requester_id=%d, principal_id=%d, role=%s",
				requesterID, principal.ID, principal.Role)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /requesters/{id}/appointments - Failed to get appointments: requester_id=%d, error=%v",
				requesterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /requesters/{id}/appointments - Appointments retrieved successfully: requester_id=%d, count=%d",
		requesterID, len(result.Appointments))
	handlers.RespondJSON(w, http.StatusOK, result)
}
