package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/DMC-AppointmentService/internal/domain"
	"github.com/m04kA/DMC-AppointmentService/internal/integrations/identityservice"
)

// AppointmentRepository интерфейс репозитория записей на приём
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	GetByProviderAndRange(ctx context.Context, providerID int64, from, to time.Time) ([]*domain.Appointment, error)
}

// IdentityClient интерфейс клиента для IdentityService
type IdentityClient interface {
	ResolvePrincipal(ctx context.Context, id int64, role domain.Role) (*identityservice.PrincipalInfo, error)
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
