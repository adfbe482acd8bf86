package appointments

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/DMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/DMC-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/DMC-AppointmentService/internal/service/appointments/models"
)

// Service сервис для работы с записями на приём
// Просмотр и изменение доступны только участникам записи (провайдеру или заказчику),
// смена статуса дополнительно ограничена графом переходов
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetByID получает запись на приём по ID
// Запись видят только её участники
func (s *Service) GetByID(ctx context.Context, id int64, principal domain.Principal) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for principal id=%d role=%s", id, principal.ID, principal.Role)

	appt, err := s.loadAppointment(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	if !appt.IsParticipant(principal) {
		s.logger.Warn("GetByID: access denied for principal id=%d role=%s to appointment id=%d",
			principal.ID, principal.Role, id)
		return nil, ErrAccessDenied
	}

	s.logger.Info("GetByID: successfully fetched appointment id=%d", id)
	return models.FromDomainAppointment(appt), nil
}

// GetAll получает все записи на приём без скоупинга по принципалу
// Авторизация на этом эндпоинте не применяется - известный пробел, см. DESIGN.md
func (s *Service) GetAll(ctx context.Context) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetAll: fetching all appointments")

	appointments, err := s.appointmentRepo.GetAll(ctx)
	if err != nil {
		s.logger.Error("GetAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetAll - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetAll: successfully fetched %d appointments", len(appointments))
	return models.FromDomainAppointmentList(appointments), nil
}

// GetProviderAppointments получает все записи провайдера
// Доступно только самому провайдеру (кросс-принципальный листинг запрещён)
func (s *Service) GetProviderAppointments(ctx context.Context, providerID int64, principal domain.Principal) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetProviderAppointments: fetching appointments for provider=%d by principal id=%d role=%s",
		providerID, principal.ID, principal.Role)

	if principal.Role != domain.RoleProvider || principal.ID != providerID {
		s.logger.Warn("GetProviderAppointments: access denied for principal id=%d role=%s to provider=%d",
			principal.ID, principal.Role, providerID)
		return nil, ErrAccessDenied
	}

	appointments, err := s.appointmentRepo.GetByProviderID(ctx, providerID)
	if err != nil {
		s.logger.Error("GetProviderAppointments: repository error for provider=%d: %v", providerID, err)
		return nil, fmt.Errorf("%w: GetProviderAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetProviderAppointments: successfully fetched %d appointments for provider=%d",
		len(appointments), providerID)
	return models.FromDomainAppointmentList(appointments), nil
}

// GetRequesterAppointments получает все записи заказчика
// Доступно только самому заказчику (кросс-принципальный листинг запрещён)
func (s *Service) GetRequesterAppointments(ctx context.Context, requesterID int64, principal domain.Principal) (*models.AppointmentListResponse, error) {
	s.logger.Info("GetRequesterAppointments: fetching appointments for requester=%d by principal id=%d role=%s",
		requesterID, principal.ID, principal.Role)

	if principal.Role != domain.RoleRequester || principal.ID != requesterID {
		s.logger.Warn("GetRequesterAppointments: access denied for principal id=%d role=%s to requester=%d",
			principal.ID, principal.Role, requesterID)
		return nil, ErrAccessDenied
	}

	appointments, err := s.appointmentRepo.GetByRequesterID(ctx, requesterID)
	if err != nil {
		s.logger.Error("GetRequesterAppointments: repository error for requester=%d: %v", requesterID, err)
		return nil, fmt.Errorf("%w: GetRequesterAppointments - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetRequesterAppointments: successfully fetched %d appointments for requester=%d",
		len(appointments), requesterID)
	return models.FromDomainAppointmentList(appointments), nil
}

// SetStatus применяет переход статуса записи через граф переходов
// Порядок проверок: существование записи -> существование ребра графа ->
// права принципала на ребро. Самопереход отклоняется как отсутствующее ребро
func (s *Service) SetStatus(ctx context.Context, id int64, req *models.SetStatusRequest, principal domain.Principal) (*models.AppointmentResponse, error) {
	s.logger.Info("SetStatus: updating appointment id=%d to status=%s by principal id=%d role=%s",
		id, req.Status, principal.ID, principal.Role)

	appt, err := s.loadAppointment(ctx, "SetStatus", id)
	if err != nil {
		return nil, err
	}

	newStatus, err := domain.ParseStatus(req.Status)
	if err != nil {
		s.logger.Warn("SetStatus: invalid status=%s for appointment id=%d", req.Status, id)
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	if !domain.CanTransition(appt.Status, newStatus) {
		s.logger.Warn("SetStatus: transition %s -> %s is not allowed for appointment id=%d",
			appt.Status, newStatus, id)
		return nil, ErrInvalidTransition
	}

	if !domain.TransitionAllowedFor(appt, newStatus, principal) {
		s.logger.Warn("SetStatus: principal id=%d role=%s is not authorized for transition %s -> %s on appointment id=%d",
			principal.ID, principal.Role, appt.Status, newStatus, id)
		return nil, ErrAccessDenied
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, newStatus); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("SetStatus: appointment id=%d not found during update", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("SetStatus: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: SetStatus - repository error: %v", ErrInternal, err)
	}

	appt.Status = newStatus

	s.logger.Info("SetStatus: successfully updated appointment id=%d to status=%s", id, newStatus)
	return models.FromDomainAppointment(appt), nil
}

// Delete удаляет запись на приём (физическое удаление)
// Доступно любому участнику записи
func (s *Service) Delete(ctx context.Context, id int64, principal domain.Principal) error {
	s.logger.Info("Delete: deleting appointment id=%d by principal id=%d role=%s", id, principal.ID, principal.Role)

	appt, err := s.loadAppointment(ctx, "Delete", id)
	if err != nil {
		return err
	}

	if !appt.IsParticipant(principal) {
		s.logger.Warn("Delete: access denied for principal id=%d role=%s to appointment id=%d",
			principal.ID, principal.Role, id)
		return ErrAccessDenied
	}

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%d not found during delete", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%d: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted appointment id=%d", id)
	return nil
}

// loadAppointment загружает запись, транслируя ошибки репозитория в ошибки сервиса
func (s *Service) loadAppointment(ctx context.Context, method string, id int64) (*domain.Appointment, error) {
	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment id=%d not found", method, id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("%s: repository error for appointment id=%d: %v", method, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, method, err)
	}
	return appt, nil
}
