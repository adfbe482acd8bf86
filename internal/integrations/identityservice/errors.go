package identityservice

import "errors"

var (
	// ErrPrincipalNotFound возвращается, когда принципал не найден в IdentityService
	ErrPrincipalNotFound = errors.New("principal not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("identityservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("identityservice client: invalid response")
)
