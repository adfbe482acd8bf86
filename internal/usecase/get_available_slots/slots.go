package get_available_slots

import (
	"github.com/m04kA/DMC-AppointmentService/internal/domain"
	"github.com/m04kA/DMC-AppointmentService/pkg/types"
)

// freeSlots возвращает свободные ячейки сетки рабочего дня по возрастанию
// Ячейка считается занятой, если на неё попадает любая запись провайдера,
// независимо от статуса - отменённые записи тоже блокируют выдачу
// (в отличие от проверки конфликта при создании, см. DESIGN.md)
func freeSlots(schedule domain.Schedule, appointments []*domain.Appointment) ([]types.TimeString, error) {
	grid, err := schedule.Grid()
	if err != nil {
		return nil, err
	}

	occupied := make(map[types.TimeString]struct{}, len(appointments))
	for _, appt := range appointments {
		occupied[schedule.SlotCell(appt.ScheduledAt)] = struct{}{}
	}

	free := make([]types.TimeString, 0, len(grid))
	for _, cell := range grid {
		if _, taken := occupied[cell]; taken {
			continue
		}
		free = append(free, cell)
	}

	return free, nil
}
