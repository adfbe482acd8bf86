package update_appointment

import (
	"time"

	"github.com/m04kA/DMC-AppointmentService/internal/domain"
	updateAppointment "github.com/m04kA/DMC-AppointmentService/internal/usecase/update_appointment"
)

// UpdateAppointmentRequest HTTP request model
// nil-поле означает "не менять"
type UpdateAppointmentRequest struct {
	ScheduledAt *string `json:"scheduledAt,omitempty"` // "2026-03-15T10:00:00Z"
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
func (r *UpdateAppointmentRequest) ToUseCaseRequest(appointmentID int64, principal domain.Principal) (*updateAppointment.Request, error) {
	req := &updateAppointment.Request{
		ID:        appointmentID,
		Principal: principal,
		Note:      r.Note,
	}

	if r.ScheduledAt != nil {
		scheduledAt, err := time.Parse(time.RFC3339, *r.ScheduledAt)
		if err != nil {
			return nil, err
		}
		req.ScheduledAt = &scheduledAt
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *updateAppointment.Response) *AppointmentResponse {
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
