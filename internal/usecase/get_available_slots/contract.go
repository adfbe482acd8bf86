package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/DMC-AppointmentService/internal/domain"
	"github.com/m04kA/DMC-AppointmentService/internal/integrations/identityservice"
)

// AppointmentRepository интерфейс репозитория записей на приём
type AppointmentRepository interface {
	GetByProviderAndRange(ctx context.Context, providerID int64, from, to time.Time) ([]*domain.Appointment, error)
}

// IdentityClient интерфейс клиента для IdentityService
type IdentityClient interface {
	ResolvePrincipal(ctx context.Context, id int64, role domain.Role) (*identityservice.PrincipalInfo, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
