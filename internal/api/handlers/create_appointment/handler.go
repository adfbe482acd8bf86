package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/DMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/DMC-AppointmentService/internal/api/middleware"
	createAppointment "github.com/m04kA/DMC-AppointmentService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidScheduledAt = "некорректный формат времени приёма, ожидается RFC3339"
	msgMissingPrincipal   = "отсутствует аутентификация"
	msgSlotUnavailable    = "выбранный временной слот недоступен"
	msgProviderNotFound   = "провайдер не найден"
	msgRequesterNotFound  = "заказчик не найден"
	msgInvalidInput       = "некорректные данные записи"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	principal, ok := middleware.GetPrincipal(r.Context())
	if !ok {
		h.logger.Warn("POST /appointments - Missing principal")
		handlers.RespondUnauthorized(w, msgMissingPrincipal)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом времени приёма)
	useCaseReq, err := req.ToUseCaseRequest(principal)
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse scheduledAt: %v", err)
		handlers.RespondBadRequest(w, msgInvalidScheduledAt)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotUnavailable):
			h.logger.Warn("POST /appointments - Slot not available: provider_id=%d, scheduled_at=%s",
				useCaseReq.ProviderID, req.ScheduledAt)
			handlers.RespondConflict(w, msgSlotUnavailable)

		case errors.Is(err, createAppointment.ErrProviderNotFound):
			h.logger.Warn("POST /appointments - Provider not found: provider_id=%d", useCaseReq.ProviderID)
			handlers.RespondNotFound(w, msgProviderNotFound)

		case errors.Is(err, createAppointment.ErrRequesterNotFound):
			h.logger.Warn("POST /appointments - Requester not found: requester_id=%d", useCaseReq.RequesterID)
			handlers.RespondNotFound(w, msgRequesterNotFound)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: provider_id=%d, requester_id=%d, error=%v",
				useCaseReq.ProviderID, useCaseReq.RequesterID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, provider_id=%d, requester_id=%d",
		result.ID, result.ProviderID, result.RequesterID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
