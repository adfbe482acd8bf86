package create_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/DMC-AppointmentService/internal/domain"
	identityClient "github.com/m04kA/DMC-AppointmentService/internal/integrations/identityservice"
)

// UseCase use case для создания записи на приём
type UseCase struct {
	appointmentRepo AppointmentRepository
	identityClient  IdentityClient
	txManager       TransactionManager
	schedule        domain.Schedule
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	identityClient IdentityClient,
	txManager TransactionManager,
	schedule domain.Schedule,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		identityClient:  identityClient,
		txManager:       txManager,
		schedule:        schedule,
		logger:          logger,
	}
}

// Execute выполняет use case создания записи на приём
// Проверка конфликта слота и вставка выполняются в одной сериализуемой
// транзакции с блокировкой дня провайдера (FOR UPDATE) - конкурирующие
// create на один слот не могут пройти оба
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: principal id=%d role=%s, provider=%d, requester=%d, scheduledAt=%s",
		req.Principal.ID, req.Principal.Role, req.ProviderID, req.RequesterID,
		req.ScheduledAt.Format(domain.DateFormat+" "+domain.TimeFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем существование провайдера
	if _, err := uc.identityClient.ResolvePrincipal(ctx, req.ProviderID, domain.RoleProvider); err != nil {
		if errors.Is(err, identityClient.ErrPrincipalNotFound) {
			uc.logger.Warn("CreateAppointment: provider id=%d not found", req.ProviderID)
			return nil, ErrProviderNotFound
		}
		uc.logger.Error("CreateAppointment: failed to resolve provider id=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to resolve provider: %v", ErrInternal, err)
	}

	// 3. Проверяем существование заказчика
	if _, err := uc.identityClient.ResolvePrincipal(ctx, req.RequesterID, domain.RoleRequester); err != nil {
		if errors.Is(err, identityClient.ErrPrincipalNotFound) {
			uc.logger.Warn("CreateAppointment: requester id=%d not found", req.RequesterID)
			return nil, ErrRequesterNotFound
		}
		uc.logger.Error("CreateAppointment: failed to resolve requester id=%d: %v", req.RequesterID, err)
		return nil, fmt.Errorf("%w: failed to resolve requester: %v", ErrInternal, err)
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 4. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Получаем все записи провайдера на этот день с блокировкой (FOR UPDATE)
		dayStart, dayEnd := uc.schedule.DayBounds(req.ScheduledAt)

		sameDay, err := uc.appointmentRepo.GetByProviderAndRange(txCtx, req.ProviderID, dayStart, dayEnd)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get provider appointments: %v", err)
			return fmt.Errorf("%w: failed to get provider appointments: %v", ErrInternal, err)
		}

		// 4.2. Проверяем доступность ячейки сетки
		if slotTaken(uc.schedule, req.ScheduledAt, sameDay) {
			uc.logger.Warn("CreateAppointment: slot %s is taken for provider=%d",
				uc.schedule.SlotCell(req.ScheduledAt), req.ProviderID)
			return ErrSlotUnavailable
		}

		// 4.3. Создаем запись со статусом pending
		appt := &domain.Appointment{
			ProviderID:  req.ProviderID,
			RequesterID: req.RequesterID,
			ScheduledAt: req.ScheduledAt,
			Status:      domain.StatusPending,
			Note:        req.Note,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)

	// Конвертируем в response
	return &Response{
		ID:          result.ID,
		ProviderID:  result.ProviderID,
		RequesterID: result.RequesterID,
		ScheduledAt: result.ScheduledAt,
		Status:      string(result.Status),
		Note:        result.Note,
		CreatedAt:   result.CreatedAt,
		UpdatedAt:   result.UpdatedAt,
	}, nil
}
