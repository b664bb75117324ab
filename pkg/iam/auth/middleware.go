package auth

import (
	"strings"

	"plantel/pkg/kernel"

	"github.com/gofiber/fiber/v2"
)

// TokenMiddleware authenticates requests with bearer JWTs.
type TokenMiddleware struct {
	tokens TokenService
}

// NewAuthMiddleware creates the bearer-token middleware.
func NewAuthMiddleware(tokens TokenService) *TokenMiddleware {
	return &TokenMiddleware{tokens: tokens}
}

// Authenticate validates the Authorization header and attaches the AuthContext.
func (m *TokenMiddleware) Authenticate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get(fiber.HeaderAuthorization)
		if header == "" {
			return ErrMissingToken()
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			return ErrInvalidToken().WithDetail("reason", "expected Bearer scheme")
		}

		claims, err := m.tokens.ValidateToken(tokenString)
		if err != nil {
			return err
		}
		if claims.TenantID == "" {
			return ErrMissingTenant()
		}

		userID := kernel.NewUserID(claims.UserID)
		SetAuthContext(c, &AuthContext{
			UserID:   &userID,
			TenantID: kernel.NewTenantID(claims.TenantID),
			Scopes:   claims.Scopes,
		})
		return c.Next()
	}
}

// RequireScope guards a route with a scope check. Must run after Authenticate.
func (m *TokenMiddleware) RequireScope(scope string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authCtx, ok := GetAuthContext(c)
		if !ok {
			return ErrMissingToken()
		}
		if !authCtx.HasScope(scope) {
			return ErrInsufficientScope().WithDetail("required_scope", scope)
		}
		return c.Next()
	}
}
