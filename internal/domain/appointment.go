package domain

import "time"

// Appointment represents a reserved time slot between a provider and a requester
type Appointment struct {
	ID          int64
	ProviderID  int64
	RequesterID int64
	ScheduledAt time.Time // Момент начала приёма (абсолютная метка времени)
	Status      AppointmentStatus
	Note        *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsCancelled returns true if the appointment has been cancelled
func (a *Appointment) IsCancelled() bool {
	return a.Status == StatusCancelled
}

// IsTerminal returns true if no further status transitions are possible
func (a *Appointment) IsTerminal() bool {
	return a.Status == StatusCancelled || a.Status == StatusCompleted
}

// BlocksSlot returns true if the appointment occupies its slot for new bookings
// Отменённая запись освобождает слот, завершённая - нет
func (a *Appointment) BlocksSlot() bool {
	return a.Status != StatusCancelled
}

// IsProvider returns true if the principal is the provider on this appointment
func (a *Appointment) IsProvider(p Principal) bool {
	return p.Role == RoleProvider && p.ID == a.ProviderID
}

// IsRequester returns true if the principal is the requester on this appointment
func (a *Appointment) IsRequester(p Principal) bool {
	return p.Role == RoleRequester && p.ID == a.RequesterID
}

// IsParticipant returns true if the principal is either side of this appointment
// Участники могут просматривать и изменять запись, все остальные - нет
func (a *Appointment) IsParticipant(p Principal) bool {
	return a.IsProvider(p) || a.IsRequester(p)
}
