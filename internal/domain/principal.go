package domain

import "errors"

// Role represents the kind of principal acting on the system
type Role string

const (
	RoleProvider  Role = "provider"
	RoleRequester Role = "requester"
)

// ErrInvalidRole возвращается при неизвестной роли
var ErrInvalidRole = errors.New("invalid principal role")

// Principal is an authenticated actor identified by (id, role)
// Выдаётся IdentityService и передаётся через заголовки шлюза
type Principal struct {
	ID   int64
	Role Role
}

// ParseRole converts a string into a Role with validation
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleProvider:
		return RoleProvider, nil
	case RoleRequester:
		return RoleRequester, nil
	default:
		return "", ErrInvalidRole
	}
}
