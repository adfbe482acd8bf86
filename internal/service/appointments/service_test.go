package appointments

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DMC-AppointmentService/internal/domain"
	appointmentRepo "github.com/m04kA/DMC-AppointmentService/internal/infra/storage/appointment"
	"github.com/m04kA/DMC-AppointmentService/internal/service/appointments/models"
)

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

type fakeRepo struct {
	appointments map[int64]*domain.Appointment

	statusUpdates map[int64]domain.AppointmentStatus
	deleted       []int64
}

func newFakeRepo(appointments ...*domain.Appointment) *fakeRepo {
	repo := &fakeRepo{
		appointments:  make(map[int64]*domain.Appointment),
		statusUpdates: make(map[int64]domain.AppointmentStatus),
	}
	for _, appt := range appointments {
		repo.appointments[appt.ID] = appt
	}
	return repo
}

func (f *fakeRepo) GetByID(ctx context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := f.appointments[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	copied := *appt
	return &copied, nil
}

func (f *fakeRepo) GetAll(ctx context.Context) ([]*domain.Appointment, error) {
	all := make([]*domain.Appointment, 0, len(f.appointments))
	for _, appt := range f.appointments {
		all = append(all, appt)
	}
	return all, nil
}

func (f *fakeRepo) GetByProviderID(ctx context.Context, providerID int64) ([]*domain.Appointment, error) {
	var result []*domain.Appointment
	for _, appt := range f.appointments {
		if appt.ProviderID == providerID {
			result = append(result, appt)
		}
	}
	return result, nil
}

func (f *fakeRepo) GetByRequesterID(ctx context.Context, requesterID int64) ([]*domain.Appointment, error) {
	var result []*domain.Appointment
	for _, appt := range f.appointments {
		if appt.RequesterID == requesterID {
			result = append(result, appt)
		}
	}
	return result, nil
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id int64, status domain.AppointmentStatus) error {
	if _, ok := f.appointments[id]; !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	f.statusUpdates[id] = status
	return nil
}

func (f *fakeRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := f.appointments[id]; !ok {
		return appointmentRepo.ErrAppointmentNotFound
	}
	delete(f.appointments, id)
	f.deleted = append(f.deleted, id)
	return nil
}

func testAppointment(id int64, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:          id,
		ProviderID:  10,
		RequesterID: 20,
		ScheduledAt: time.Date(2026, 3, 16, 10, 0, 0, 0, time.UTC),
		Status:      status,
	}
}

var (
	provider       = domain.Principal{ID: 10, Role: domain.RoleProvider}
	requester      = domain.Principal{ID: 20, Role: domain.RoleRequester}
	otherRequester = domain.Principal{ID: 99, Role: domain.RoleRequester}
)

// --- GetByID ---

func TestGetByID_Participant(t *testing.T) {
	svc := NewService(newFakeRepo(testAppointment(1, domain.StatusPending)), nopLogger{})

	resp, err := svc.GetByID(context.Background(), 1, provider)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)

	resp, err = svc.GetByID(context.Background(), 1, requester)
	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.ID)
}

func TestGetByID_Outsider(t *testing.T) {
	svc := NewService(newFakeRepo(testAppointment(1, domain.StatusPending)), nopLogger{})

	_, err := svc.GetByID(context.Background(), 1, otherRequester)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	_, err := svc.GetByID(context.Background(), 42, provider)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

// --- Listings ---

func TestGetProviderAppointments_SelfOnly(t *testing.T) {
	svc := NewService(newFakeRepo(testAppointment(1, domain.StatusPending)), nopLogger{})

	resp, err := svc.GetProviderAppointments(context.Background(), 10, provider)
	require.NoError(t, err)
	assert.Len(t, resp.Appointments, 1)

	// Чужой провайдер и заказчик с тем же ID не проходят
	_, err = svc.GetProviderAppointments(context.Background(), 10, domain.Principal{ID: 11, Role: domain.RoleProvider})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetProviderAppointments(context.Background(), 10, domain.Principal{ID: 10, Role: domain.RoleRequester})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetRequesterAppointments_SelfOnly(t *testing.T) {
	svc := NewService(newFakeRepo(testAppointment(1, domain.StatusPending)), nopLogger{})

	resp, err := svc.GetRequesterAppointments(context.Background(), 20, requester)
	require.NoError(t, err)
	assert.Len(t, resp.Appointments, 1)

	_, err = svc.GetRequesterAppointments(context.Background(), 20, otherRequester)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetRequesterAppointments(context.Background(), 20, domain.Principal{ID: 20, Role: domain.RoleProvider})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestGetAll_NoScoping(t *testing.T) {
	svc := NewService(newFakeRepo(
		testAppointment(1, domain.StatusPending),
		&domain.Appointment{ID: 2, ProviderID: 11, RequesterID: 21, ScheduledAt: time.Now(), Status: domain.StatusConfirmed},
	), nopLogger{})

	resp, err := svc.GetAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, resp.Appointments, 2)
}

// --- SetStatus ---

func setStatus(svc *Service, id int64, status string, p domain.Principal) (*models.AppointmentResponse, error) {
	return svc.SetStatus(context.Background(), id, &models.SetStatusRequest{Status: status}, p)
}

func TestSetStatus_ProviderConfirms(t *testing.T) {
	repo := newFakeRepo(testAppointment(1, domain.StatusPending))
	svc := NewService(repo, nopLogger{})

	resp, err := setStatus(svc, 1, "confirmed", provider)
	require.NoError(t, err)
	assert.Equal(t, "confirmed", resp.Status)
	assert.Equal(t, domain.StatusConfirmed, repo.statusUpdates[1])
}

func TestSetStatus_RequesterCannotConfirm(t *testing.T) {
	svc := NewService(newFakeRepo(testAppointment(1, domain.StatusPending)), nopLogger{})

	_, err := setStatus(svc, 1, "confirmed", requester)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestSetStatus_EitherPartyCancels(t *testing.T) {
	repo := newFakeRepo(testAppointment(1, domain.StatusPending))
	svc := NewService(repo, nopLogger{})

	_, err := setStatus(svc, 1, "cancelled", requester)
	require.NoError(t, err)

	repo = newFakeRepo(testAppointment(1, domain.StatusConfirmed))
	svc = NewService(repo, nopLogger{})

	_, err = setStatus(svc, 1, "cancelled", provider)
	require.NoError(t, err)
}

func TestSetStatus_ProviderCompletesConfirmed(t *testing.T) {
	repo := newFakeRepo(testAppointment(1, domain.StatusConfirmed))
	svc := NewService(repo, nopLogger{})

	resp, err := setStatus(svc, 1, "completed", provider)
	require.NoError(t, err)
	assert.Equal(t, "completed", resp.Status)
}

func TestSetStatus_InvalidTransitions(t *testing.T) {
	// pending -> completed минует подтверждение
	svc := NewService(newFakeRepo(testAppointment(1, domain.StatusPending)), nopLogger{})
	_, err := setStatus(svc, 1, "completed", provider)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	// Терминальные статусы закрыты
	svc = NewService(newFakeRepo(testAppointment(1, domain.StatusCancelled)), nopLogger{})
	_, err = setStatus(svc, 1, "confirmed", provider)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	svc = NewService(newFakeRepo(testAppointment(1, domain.StatusCompleted)), nopLogger{})
	_, err = setStatus(svc, 1, "cancelled", requester)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestSetStatus_SelfTransitionRejected(t *testing.T) {
	svc := NewService(newFakeRepo(testAppointment(1, domain.StatusPending)), nopLogger{})

	_, err := setStatus(svc, 1, "pending", provider)
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestSetStatus_UnknownStatus(t *testing.T) {
	svc := NewService(newFakeRepo(testAppointment(1, domain.StatusPending)), nopLogger{})

	_, err := setStatus(svc, 1, "rescheduled", provider)
	assert.ErrorIs(t, err, ErrInvalidStatus)
}

func TestSetStatus_OutsiderDenied(t *testing.T) {
	svc := NewService(newFakeRepo(testAppointment(1, domain.StatusPending)), nopLogger{})

	_, err := setStatus(svc, 1, "cancelled", otherRequester)
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestSetStatus_NotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	_, err := setStatus(svc, 42, "confirmed", provider)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

// --- Delete ---

func TestDelete_Participant(t *testing.T) {
	repo := newFakeRepo(testAppointment(1, domain.StatusPending))
	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), 1, requester)
	require.NoError(t, err)
	assert.Equal(t, []int64{1}, repo.deleted)
}

func TestDelete_OutsiderDenied(t *testing.T) {
	repo := newFakeRepo(testAppointment(1, domain.StatusPending))
	svc := NewService(repo, nopLogger{})

	err := svc.Delete(context.Background(), 1, otherRequester)
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Empty(t, repo.deleted)
}

func TestDelete_NotFound(t *testing.T) {
	svc := NewService(newFakeRepo(), nopLogger{})

	err := svc.Delete(context.Background(), 42, provider)
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}
