package get_requester_appointments

import (
	"context"

	"github.com/m04kA/DMC-AppointmentService/internal/domain"
	"github.com/m04kA/DMC-AppointmentService/internal/service/appointments/models"
)

type AppointmentService interface {
	GetRequesterAppointments(ctx context.Context, requesterID int64, principal domain.Principal) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
