package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/feedback-hub/internal/domain/auth"
	"github.com/BruksfildServices01/feedback-hub/internal/httperr"
)

const (
	ContextUserID    = "userID"
	ContextUserRole  = "userRole"
	ContextPrincipal = "principal"
)

// TokenVerifier turns a raw bearer token into a principal.
type TokenVerifier interface {
	Parse(raw string) (auth.Principal, error)
}

func AuthMiddleware(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httperr.Abort(c, auth.ErrTokenRequired)
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			httperr.Abort(c, auth.ErrTokenRequired)
			return
		}

		p, err := verifier.Parse(strings.TrimSpace(parts[1]))
		if err != nil {
			httperr.Abort(c, err)
			return
		}

		c.Set(ContextUserID, p.UserID)
		c.Set(ContextUserRole, string(p.Role))
		c.Set(ContextPrincipal, p)

		c.Next()
	}
}

// RequireRole must run after AuthMiddleware.
func RequireRole(role auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := PrincipalFrom(c)
		if !ok {
			httperr.Abort(c, auth.ErrTokenRequired)
			return
		}

		if err := auth.RequireRole(p, role); err != nil {
			httperr.Abort(c, err)
			return
		}

		c.Next()
	}
}

func PrincipalFrom(c *gin.Context) (auth.Principal, bool) {
	v, exists := c.Get(ContextPrincipal)
	if !exists {
		return auth.Principal{}, false
	}
	p, ok := v.(auth.Principal)
	return p, ok
}

// ActorID returns the authenticated user id, or "" for anonymous calls.
func ActorID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}
