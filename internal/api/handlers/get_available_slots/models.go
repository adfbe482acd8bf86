package get_available_slots

import (
	"github.com/m04kA/DMC-AppointmentService/internal/domain"
	getAvailableSlots "github.com/m04kA/DMC-AppointmentService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	ProviderID     int64    `json:"providerId"`
	Date           string   `json:"date"` // "2026-03-15"
	AvailableSlots []string `json:"availableSlots"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]string, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = slot.String()
	}

	return &AvailableSlotsResponse{
		ProviderID:     resp.ProviderID,
		Date:           resp.Date.Format(domain.DateFormat),
		AvailableSlots: slots,
	}
}
