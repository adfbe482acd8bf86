package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/DMC-AppointmentService/internal/domain"
	identityClient "github.com/m04kA/DMC-AppointmentService/internal/integrations/identityservice"
)

// UseCase use case для получения доступных слотов провайдера на дату
// Только чтение - состояние не изменяется
type UseCase struct {
	appointmentRepo AppointmentRepository
	identityClient  IdentityClient
	schedule        domain.Schedule
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	identityClient IdentityClient,
	schedule domain.Schedule,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		identityClient:  identityClient,
		schedule:        schedule,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: provider=%d, date=%s",
		req.ProviderID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование провайдера
	if _, err := uc.identityClient.ResolvePrincipal(ctx, req.ProviderID, domain.RoleProvider); err != nil {
		if errors.Is(err, identityClient.ErrPrincipalNotFound) {
			uc.logger.Warn("GetAvailableSlots: provider id=%d not found", req.ProviderID)
			return nil, ErrProviderNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to resolve provider id=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to resolve provider: %v", ErrInternal, err)
	}

	// 3. Получаем все записи провайдера на этот день
	dayStart, dayEnd := uc.schedule.DayBounds(req.Date)

	appointments, err := uc.appointmentRepo.GetByProviderAndRange(ctx, req.ProviderID, dayStart, dayEnd)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	// 4. Убираем занятые ячейки из сетки рабочего дня
	slots, err := freeSlots(uc.schedule, appointments)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to compute free slots: %v", err)
		return nil, fmt.Errorf("%w: failed to compute free slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: %d free slots for provider=%d, date=%s",
		len(slots), req.ProviderID, req.Date.Format(domain.DateFormat))

	return &Response{
		ProviderID: req.ProviderID,
		Date:       req.Date,
		Slots:      slots,
	}, nil
}
