package middlewares

import (
	"strings"

	"github.com/sohryuu101/web-wedding-sub000/pkg/token"
	"github.com/sohryuu101/web-wedding-sub000/utils"

	"github.com/gofiber/fiber/v2"
)

// TokenVerifier validates a bearer token.
type TokenVerifier interface {
	Verify(raw string) (token.Identity, error)
}

// RequireAuth rejects requests without a valid bearer token and stores the
// caller's identity in locals.
func RequireAuth(verifier TokenVerifier) fiber.Handler {
	return func(c *fiber.Ctx) error {
		auth := c.Get(fiber.HeaderAuthorization)
		if len(auth) < 7 || !strings.EqualFold(auth[:7], "bearer ") {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}
		id, err := verifier.Verify(strings.TrimSpace(auth[7:]))
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid token")
		}
		c.Locals(utils.LocalsUserID, id.UserID)
		c.Locals(utils.LocalsUserEmail, id.Email)
		c.Locals(utils.LocalsUserName, id.Name)
		return c.Next()
	}
}
