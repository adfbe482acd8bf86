package update_appointment

import (
	"time"

	"github.com/m04kA/DMC-AppointmentService/internal/domain"
)

// Request модель запроса на обновление записи на приём
// nil-поле означает "не менять"
type Request struct {
	ID          int64            // ID записи
	Principal   domain.Principal // Действующий принципал
	ScheduledAt *time.Time       // Новый момент начала приёма (опционально)
	Note        *string          // Новое описание (опционально)
}

// Response модель ответа с обновлённой записью
type Response struct {
	ID          int64     // ID записи
	ProviderID  int64     // ID провайдера
	RequesterID int64     // ID заказчика
	ScheduledAt time.Time // Момент начала приёма
	Status      string    // Статус записи
	Note        *string   // Описание записи

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
