package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда запись на приём не найдена
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrAccessDenied возвращается, когда принципал не имеет прав на действие
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidStatus возвращается при неизвестном значении статуса
	ErrInvalidStatus = errors.New("invalid appointment status")

	// ErrInvalidTransition возвращается, когда перехода между статусами нет в графе
	// Самопереход (запрос того же статуса) также отклоняется
	ErrInvalidTransition = errors.New("invalid status transition")

	// ErrNoChange возвращается, когда обновление не затронуло ни одной строки
	ErrNoChange = errors.New("no changes made")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
