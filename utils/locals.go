package utils

import "github.com/gofiber/fiber/v2"

// Locals keys set by the auth middleware.
const (
	LocalsUserID    = "userID"
	LocalsUserEmail = "userEmail"
	LocalsUserName  = "userName"
)

// GetUserID returns the authenticated caller, or false on public routes.
func GetUserID(c *fiber.Ctx) (uint, bool) {
	id, ok := c.Locals(LocalsUserID).(uint)
	return id, ok && id != 0
}
