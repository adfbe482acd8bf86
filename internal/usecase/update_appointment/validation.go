package update_appointment

import (
	"fmt"
	"time"

	"github.com/m04kA/DMC-AppointmentService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ID <= 0 {
		return fmt.Errorf("%w: appointment ID must be positive", ErrInvalidInput)
	}

	if req.ScheduledAt == nil && req.Note == nil {
		return fmt.Errorf("%w: at least one of scheduledAt or note is required", ErrInvalidInput)
	}

	if req.ScheduledAt != nil && req.ScheduledAt.IsZero() {
		return fmt.Errorf("%w: scheduledAt must not be zero", ErrInvalidInput)
	}

	if req.Note != nil && len(*req.Note) > domain.MaxNoteLength {
		return fmt.Errorf("%w: note must be at most %d characters", ErrInvalidInput, domain.MaxNoteLength)
	}

	return nil
}

// slotTakenByOther проверяет, что ячейка сетки для when занята другой записью
// Собственная запись (selfID) и отменённые записи ячейку не блокируют
func slotTakenByOther(schedule domain.Schedule, when time.Time, selfID int64, appointments []*domain.Appointment) bool {
	cell := schedule.SlotCell(when)

	for _, appt := range appointments {
		if appt.ID == selfID {
			continue
		}
		if !appt.BlocksSlot() {
			continue
		}
		if schedule.SlotCell(appt.ScheduledAt) == cell {
			return true
		}
	}

	return false
}
