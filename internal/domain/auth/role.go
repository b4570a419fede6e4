package auth

import "github.com/BruksfildServices01/feedback-hub/internal/httperr"

// ===============================
// Roles
// ===============================

type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleStaff Role = "STAFF"
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleStaff
}

// Principal is the verified caller behind a bearer token.
type Principal struct {
	UserID string
	Role   Role
}

var (
	ErrInvalidCredentials = httperr.New(httperr.KindUnauthenticated, "Invalid credentials")
	ErrTokenRequired      = httperr.New(httperr.KindUnauthenticated, "Access token required")
	ErrInvalidToken       = httperr.New(httperr.KindUnauthenticated, "Invalid or expired token")
	ErrForbidden          = httperr.New(httperr.KindForbidden, "Admin access required")
	ErrUserNotFound       = httperr.New(httperr.KindNotFound, "User not found")
)

// RequireRole fails with Forbidden unless the principal holds role.
func RequireRole(p Principal, role Role) error {
	if p.Role != role {
		return ErrForbidden
	}
	return nil
}
