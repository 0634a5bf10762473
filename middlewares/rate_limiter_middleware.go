package middlewares

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

func rateLimiter(max int, window time.Duration, message string) fiber.Handler {
	if max <= 0 {
		max = 1
	}
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": message})
		},
	})
}

// GlobalRateLimiter applies to every route.
func GlobalRateLimiter() fiber.Handler {
	return rateLimiter(300, time.Minute, "Too many requests, please try again later.")
}

// LoginRateLimiter is stricter to slow password guessing.
func LoginRateLimiter() fiber.Handler {
	return rateLimiter(5, time.Minute, "Too many login attempts, please wait a moment.")
}

// RegisterRateLimiter limits sign-ups per IP.
func RegisterRateLimiter() fiber.Handler {
	return rateLimiter(3, 5*time.Minute, "Too many registrations, please wait a few minutes.")
}

// RSVPRateLimiter limits guest submissions per IP per minute.
func RSVPRateLimiter(perMinute int) fiber.Handler {
	return rateLimiter(perMinute, time.Minute, "Too many responses, please try again later.")
}
