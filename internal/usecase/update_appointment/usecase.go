package update_appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/DMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/DMC-AppointmentService/internal/infra/storage/appointment"
)

// UseCase use case для обновления изменяемых полей записи (scheduledAt, note)
// Статус этим use case не меняется - для него есть отдельный переходный механизм
type UseCase struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	schedule        domain.Schedule
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	schedule domain.Schedule,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		schedule:        schedule,
		logger:          logger,
	}
}

// Execute выполняет use case обновления записи
// При переносе на другое время конфликт слота проверяется заново в той же
// сериализуемой транзакции, что и запись изменений
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("UpdateAppointment: id=%d by principal id=%d role=%s",
		req.ID, req.Principal.ID, req.Principal.Role)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateAppointment: validation failed: %v", err)
		return nil, err
	}

	// Переменная для хранения результата
	var result *domain.Appointment

	// 2. Выполняем операции с БД в сериализуемой транзакции
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 2.1. Загружаем запись
		appt, err := uc.appointmentRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("UpdateAppointment: appointment id=%d not found", req.ID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("UpdateAppointment: failed to get appointment id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to get appointment: %v", ErrInternal, err)
		}

		// 2.2. Проверяем права доступа - изменять запись могут только её участники
		if !appt.IsParticipant(req.Principal) {
			uc.logger.Warn("UpdateAppointment: access denied for principal id=%d role=%s to appointment id=%d",
				req.Principal.ID, req.Principal.Role, req.ID)
			return ErrAccessDenied
		}

		// 2.3. При переносе проверяем конфликт слота на новом времени
		// с блокировкой дня провайдера (FOR UPDATE)
		if req.ScheduledAt != nil {
			dayStart, dayEnd := uc.schedule.DayBounds(*req.ScheduledAt)

			sameDay, err := uc.appointmentRepo.GetByProviderAndRange(txCtx, appt.ProviderID, dayStart, dayEnd)
			if err != nil {
				uc.logger.Error("UpdateAppointment: failed to get provider appointments: %v", err)
				return fmt.Errorf("%w: failed to get provider appointments: %v", ErrInternal, err)
			}

			if slotTakenByOther(uc.schedule, *req.ScheduledAt, appt.ID, sameDay) {
				uc.logger.Warn("UpdateAppointment: slot %s is taken for provider=%d",
					uc.schedule.SlotCell(*req.ScheduledAt), appt.ProviderID)
				return ErrSlotUnavailable
			}
		}

		// 2.4. Применяем изменения
		fields := appointmentRepo.UpdateFields{
			ScheduledAt: req.ScheduledAt,
			Note:        req.Note,
		}

		if err := uc.appointmentRepo.Update(txCtx, req.ID, fields); err != nil {
			if errors.Is(err, appointmentRepo.ErrNoRowsAffected) {
				uc.logger.Warn("UpdateAppointment: no rows affected for appointment id=%d", req.ID)
				return ErrNoChange
			}
			uc.logger.Error("UpdateAppointment: failed to update appointment id=%d: %v", req.ID, err)
			return fmt.Errorf("%w: failed to update appointment: %v", ErrInternal, err)
		}

		// 2.5. Отражаем изменения в загруженной записи для ответа
		if req.ScheduledAt != nil {
			appt.ScheduledAt = *req.ScheduledAt
		}
		if req.Note != nil {
			appt.Note = req.Note
		}

		result = appt
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("UpdateAppointment: successfully updated appointment id=%d", result.ID)

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
