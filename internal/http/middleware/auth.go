package middleware

import (
	"crypto/subtle"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// UserIDLocalKey holds the authenticated user id in Fiber's context locals.
const UserIDLocalKey = "user_id"

// AdminKeyHeader carries the shared admin secret.
const AdminKeyHeader = "X-Admin-Key"

// TokenParser verifies an access token and returns its subject.
type TokenParser interface {
	Parse(token string) (string, error)
}

// Auth requires a valid "Authorization: Bearer <token>" header.
// Failures return 401 through the global error handler.
func Auth(tokens TokenParser) fiber.Handler {
	return func(c *fiber.Ctx) error {
		scheme, token, ok := strings.Cut(c.Get(fiber.HeaderAuthorization), " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}

		sub, err := tokens.Parse(strings.TrimSpace(token))
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}

		c.Locals(UserIDLocalKey, sub)
		return c.Next()
	}
}

// AdminKey requires X-Admin-Key to equal key. An empty key lets every signed-in user through.
func AdminKey(key string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if key == "" {
			return c.Next()
		}
		if subtle.ConstantTimeCompare([]byte(c.Get(AdminKeyHeader)), []byte(key)) != 1 {
			return fiber.NewError(fiber.StatusForbidden, "admin key required")
		}
		return c.Next()
	}
}

// UserID returns the id stored by Auth, or "".
func UserID(c *fiber.Ctx) string {
	if s, ok := c.Locals(UserIDLocalKey).(string); ok {
		return s
	}
	return ""
}
