package get_available_slots

import (
	"time"

	"github.com/m04kA/DMC-AppointmentService/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ProviderID int64     // ID провайдера
	Date       time.Time // Дата для получения слотов (без времени)
}

// Response модель ответа со списком доступных слотов
type Response struct {
	ProviderID int64              // ID провайдера
	Date       time.Time          // Дата, на которую запрашивались слоты
	Slots      []types.TimeString // Свободные ячейки сетки по возрастанию
}
