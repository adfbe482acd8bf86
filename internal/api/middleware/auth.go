package middleware

import (
	"context"
	"net/http"
	"strconv"

	"github.com/m04kA/DMC-AppointmentService/internal/api/handlers"
	"github.com/m04kA/DMC-AppointmentService/internal/domain"
)

const (
	// HeaderUserID заголовок с ID принципала, проставляется шлюзом после аутентификации
	HeaderUserID = "X-User-ID"
	// HeaderUserRole заголовок с ролью принципала (provider или requester)
	HeaderUserRole = "X-User-Role"
)

const (
	msgMissingPrincipal = "отсутствуют заголовки аутентификации"
	msgInvalidUserID    = "некорректный ID пользователя"
	msgInvalidUserRole  = "некорректная роль пользователя"
)

// principalContextKey ключ для хранения принципала в контексте запроса
type principalContextKey struct{}

// Auth middleware извлекает принципала из заголовков X-User-ID и X-User-Role
// Проверку подлинности выполняет IdentityService на шлюзе - сервис доверяет заголовкам
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		idStr := r.Header.Get(HeaderUserID)
		roleStr := r.Header.Get(HeaderUserRole)

		if idStr == "" || roleStr == "" {
			handlers.RespondUnauthorized(w, msgMissingPrincipal)
			return
		}

		id, err := strconv.ParseInt(idStr, 10, 64)
		if err != nil || id <= 0 {
			handlers.RespondUnauthorized(w, msgInvalidUserID)
			return
		}

		role, err := domain.ParseRole(roleStr)
		if err != nil {
			handlers.RespondUnauthorized(w, msgInvalidUserRole)
			return
		}

		principal := domain.Principal{ID: id, Role: role}

		next.ServeHTTP(w, r.WithContext(WithPrincipal(r.Context(), principal)))
	})
}

// WithPrincipal кладет принципала в контекст
func WithPrincipal(ctx context.Context, p domain.Principal) context.Context {
	return context.WithValue(ctx, principalContextKey{}, p)
}

// GetPrincipal возвращает принципала из контекста запроса
func GetPrincipal(ctx context.Context) (domain.Principal, bool) {
	p, ok := ctx.Value(principalContextKey{}).(domain.Principal)
	return p, ok
}
