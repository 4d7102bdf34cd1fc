package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/fintrackr/backend/internal/auth"
	"github.com/fintrackr/backend/internal/config"
	"github.com/fintrackr/backend/internal/dto"
)

// SubjectKey is the locals key holding the authenticated caller's subject:
// the user ID for session tokens, the provider UID for ID tokens.
const SubjectKey = "auth_subject"

// TokenProtected guards a route group with bearer auth. Two credential kinds
// are accepted: a session JWT issued at phone login, or a Google ID token
// from an SSO client. Preflight requests pass through untouched.
func TokenProtected(cfg *config.Config, verifier auth.Verifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if c.Method() == fiber.MethodOptions {
			return c.Next()
		}

		header := c.Get(fiber.HeaderAuthorization)
		if !strings.HasPrefix(header, "Bearer ") {
			return unauthorized(c, "Missing or malformed Authorization header")
		}
		token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if token == "" {
			return unauthorized(c, "Missing or malformed Authorization header")
		}

		if sub, err := auth.ParseSessionToken(cfg.JWTSecret, token); err == nil {
			c.Locals(SubjectKey, sub)
			return c.Next()
		}

		identity, err := verifier.Verify(c.Context(), token)
		if err != nil {
			return unauthorized(c, "Invalid or expired token")
		}
		c.Locals(SubjectKey, identity.Subject)
		return c.Next()
	}
}

func unauthorized(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusUnauthorized).
		JSON(dto.Error("UNAUTHORIZED", message, c.Path(), fiber.StatusUnauthorized))
}
