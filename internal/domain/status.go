package domain

import "errors"

// AppointmentStatus represents the status of an appointment
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
	StatusCompleted AppointmentStatus = "completed"
)

// ErrInvalidStatus возвращается при неизвестном статусе
var ErrInvalidStatus = errors.New("invalid appointment status")

// statusTransitions граф допустимых переходов статусов
// Переходов из cancelled и completed нет, самопереходы не допускаются
var statusTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled, StatusCompleted},
	StatusCancelled: {},
	StatusCompleted: {},
}

// ParseStatus converts a string into an AppointmentStatus with validation
func ParseStatus(s string) (AppointmentStatus, error) {
	switch AppointmentStatus(s) {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return AppointmentStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}

// CanTransition returns true if (from, to) is an edge of the status graph
func CanTransition(from, to AppointmentStatus) bool {
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// TransitionAllowedFor returns true if the principal may apply the given
// transition on the appointment:
//   - -> confirmed и -> completed может выполнить только провайдер записи
//   - -> cancelled может выполнить провайдер или заказчик записи
//   - посторонний principal не может выполнить ни один переход
func TransitionAllowedFor(a *Appointment, to AppointmentStatus, p Principal) bool {
	switch to {
	case StatusConfirmed, StatusCompleted:
		return a.IsProvider(p)
	case StatusCancelled:
		return a.IsParticipant(p)
	default:
		return false
	}
}
