package create_appointment

import (
	"time"

	"github.com/m04kA/DMC-AppointmentService/internal/domain"
	createAppointment "github.com/m04kA/DMC-AppointmentService/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ProviderID  int64   `json:"providerId"`
	RequesterID int64   `json:"requesterId,omitempty"`
	ScheduledAt string  `json:"scheduledAt"` // "2026-03-15T10:00:00Z"
	Note        *string `json:"note,omitempty"`
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID          int64   `json:"id"`
	ProviderID  int64   `json:"providerId"`
	RequesterID int64   `json:"requesterId"`
	ScheduledAt string  `json:"scheduledAt"`
	Status      string  `json:"status"`
	Note        *string `json:"note,omitempty"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
// Для роли requester ID заказчика всегда берется из принципала, а не из тела
func (r *CreateAppointmentRequest) ToUseCaseRequest(principal domain.Principal) (*createAppointment.Request, error) {
	scheduledAt, err := time.Parse(time.RFC3339, r.ScheduledAt)
	if err != nil {
		return nil, err
	}

	requesterID := r.RequesterID
	if principal.Role == domain.RoleRequester {
		requesterID = principal.ID
	}

	return &createAppointment.Request{
		Principal:   principal,
		ProviderID:  r.ProviderID,
		RequesterID: requesterID,
		ScheduledAt: scheduledAt,
		Note:        r.Note,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	return &AppointmentResponse{
		ID:          resp.ID,
		ProviderID:  resp.ProviderID,
		RequesterID: resp.RequesterID,
		ScheduledAt: resp.ScheduledAt.Format(time.RFC3339),
		Status:      resp.Status,
		Note:        resp.Note,
		CreatedAt:   resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   resp.UpdatedAt.Format(time.RFC3339),
	}
}
