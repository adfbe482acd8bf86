package update_appointment

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись на приём не найдена
	ErrAppointmentNotFound = errors.New("update_appointment: appointment not found")

	// ErrAccessDenied возвращается, когда принципал не является участником записи
	ErrAccessDenied = errors.New("update_appointment: access denied")

	// ErrSlotUnavailable возвращается, когда новая ячейка сетки уже занята
	ErrSlotUnavailable = errors.New("update_appointment: slot is not available")

	// ErrNoChange возвращается, когда обновление не затронуло ни одной строки
	ErrNoChange = errors.New("update_appointment: no changes made")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("update_appointment: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("update_appointment: internal error")
)
