package get_all_appointments

import (
	"context"

	"github.com/m04kA/DMC-AppointmentService/internal/service/appointments/models"
)

type AppointmentService interface {
	GetAll(ctx context.Context) (*models.AppointmentListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
