package update_appointment

import (
	"context"
	"time"

	"github.com/m04kA/DMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/DMC-AppointmentService/internal/infra/storage/appointment"
)

// AppointmentRepository интерфейс репозитория записей на приём
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetByProviderAndRange(ctx context.Context, providerID int64, from, to time.Time) ([]*domain.Appointment, error)
	Update(ctx context.Context, id int64, fields appointmentRepo.UpdateFields) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
