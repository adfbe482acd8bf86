package create_appointment

import (
	"time"

	"github.com/m04kA/DMC-AppointmentService/internal/domain"
)

// Request модель запроса на создание записи на приём
type Request struct {
	Principal   domain.Principal // Действующий принципал (для логирования)
	ProviderID  int64            // ID провайдера
	RequesterID int64            // ID заказчика
	ScheduledAt time.Time        // Момент начала приёма
	Note        *string          // Описание записи (опционально)
}

// Response модель ответа с созданной записью
type Response struct {
	ID          int64     // ID созданной записи
	ProviderID  int64     // ID провайдера
	RequesterID int64     // ID заказчика
	ScheduledAt time.Time // Момент начала приёма
	Status      string    // Статус записи (pending при создании)
	Note        *string   // Описание записи

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
