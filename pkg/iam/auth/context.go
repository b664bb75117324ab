package auth

import (
	"plantel/pkg/kernel"

	"github.com/gofiber/fiber/v2"
)

const authContextKey = "auth_context"

// AuthContext is the authenticated identity attached to a request.
type AuthContext struct {
	UserID   *kernel.UserID
	TenantID kernel.TenantID
	Scopes   []string
}

// HasScope reports whether the context grants the given scope.
// Wildcard scopes ("documents:*") grant every action in their resource.
func (a *AuthContext) HasScope(scope string) bool {
	for _, s := range a.Scopes {
		if s == scope || s == ScopeAll {
			return true
		}
		if len(s) > 1 && s[len(s)-1] == '*' && len(scope) >= len(s)-1 && scope[:len(s)-1] == s[:len(s)-1] {
			return true
		}
	}
	return false
}

// SetAuthContext stores the auth context on the request.
func SetAuthContext(c *fiber.Ctx, authCtx *AuthContext) {
	c.Locals(authContextKey, authCtx)
}

// GetAuthContext retrieves the auth context set by the middleware.
func GetAuthContext(c *fiber.Ctx) (*AuthContext, bool) {
	authCtx, ok := c.Locals(authContextKey).(*AuthContext)
	return authCtx, ok
}
