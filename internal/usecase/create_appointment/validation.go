package create_appointment

import (
	"fmt"
	"time"

	"github.com/m04kA/DMC-AppointmentService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ProviderID <= 0 {
		return fmt.Errorf("%w: providerID must be positive", ErrInvalidInput)
	}

	if req.RequesterID <= 0 {
		return fmt.Errorf("%w: requesterID must be positive", ErrInvalidInput)
	}

	if req.ScheduledAt.IsZero() {
		return fmt.Errorf("%w: scheduledAt is required", ErrInvalidInput)
	}

	if req.Note != nil && len(*req.Note) > domain.MaxNoteLength {
		return fmt.Errorf("%w: note must be at most %d characters", ErrInvalidInput, domain.MaxNoteLength)
	}

	return nil
}

// slotTaken проверяет, что ячейка сетки для when уже занята одной из записей
// Отменённые записи ячейку не блокируют - слот считается свободным снова
func slotTaken(schedule domain.Schedule, when time.Time, appointments []*domain.Appointment) bool {
	cell := schedule.SlotCell(when)

	for _, appt := range appointments {
		if !appt.BlocksSlot() {
			continue
		}
		if schedule.SlotCell(appt.ScheduledAt) == cell {
			return true
		}
	}

	return false
}
