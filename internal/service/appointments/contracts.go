package appointments

import (
	"context"

	"github.com/m04kA/DMC-AppointmentService/internal/domain"
)

// AppointmentRepository интерфейс репозитория записей на приём
type AppointmentRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Appointment, error)
	GetAll(ctx context.Context) ([]*domain.Appointment, error)
	GetByProviderID(ctx context.Context, providerID int64) ([]*domain.Appointment, error)
	GetByRequesterID(ctx context.Context, requesterID int64) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error
	Delete(ctx context.Context, id int64) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
