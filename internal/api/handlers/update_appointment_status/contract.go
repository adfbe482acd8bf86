package update_appointment_status

import (
	"context"

	"github.com/m04kA/DMC-AppointmentService/internal/domain"
	"github.com/m04kA/DMC-AppointmentService/internal/service/appointments/models"
)

type AppointmentService interface {
	SetStatus(ctx context.Context, id int64, req *models.SetStatusRequest, principal domain.Principal) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
