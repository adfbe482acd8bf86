package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DMC-AppointmentService/internal/domain"
)

func runAuth(t *testing.T, userID, userRole string) (*httptest.ResponseRecorder, domain.Principal, bool) {
	t.Helper()

	var (
		gotPrincipal domain.Principal
		gotOK        bool
	)

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPrincipal, gotOK = GetPrincipal(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/appointments/1", nil)
	if userID != "" {
		req.Header.Set(HeaderUserID, userID)
	}
	if userRole != "" {
		req.Header.Set(HeaderUserRole, userRole)
	}

	rec := httptest.NewRecorder()
	Auth(next).ServeHTTP(rec, req)

	return rec, gotPrincipal, gotOK
}

func TestAuth_ValidHeaders(t *testing.T) {
	rec, principal, ok := runAuth(t, "42", "provider")

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, ok)
	assert.Equal(t, int64(42), principal.ID)
	assert.Equal(t, domain.RoleProvider, principal.Role)
}

func TestAuth_RequesterRole(t *testing.T) {
	rec, principal, ok := runAuth(t, "7", "requester")

	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, ok)
	assert.Equal(t, domain.RoleRequester, principal.Role)
}

func TestAuth_MissingHeaders(t *testing.T) {
	rec, _, ok := runAuth(t, "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, ok)

	rec, _, ok = runAuth(t, "42", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, ok)

	rec, _, ok = runAuth(t, "", "provider")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, ok)
}

func TestAuth_InvalidUserID(t *testing.T) {
	for _, id := range []string{"abc", "0", "-5"} {
		rec, _, ok := runAuth(t, id, "provider")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "id %q", id)
		assert.False(t, ok)
	}
}

func TestAuth_InvalidRole(t *testing.T) {
	rec, _, ok := runAuth(t, "42", "admin")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, ok)
}

func TestGetPrincipal_EmptyContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	_, ok := GetPrincipal(req.Context())
	assert.False(t, ok)
}
