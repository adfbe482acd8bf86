package create_appointment

import "errors"

var (
	// ErrProviderNotFound возвращается, когда провайдер не найден в IdentityService
	ErrProviderNotFound = errors.New("create_appointment: provider not found")

	// ErrRequesterNotFound возвращается, когда заказчик не найден в IdentityService
	ErrRequesterNotFound = errors.New("create_appointment: requester not found")

	// ErrSlotUnavailable возвращается, когда ячейка сетки уже занята
	// неотменённой записью этого провайдера
	ErrSlotUnavailable = errors.New("create_appointment: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_appointment: internal error")
)
