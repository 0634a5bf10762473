// Package handlers holds what the HTTP handler packages share.
package handlers

import (
	"errors"

	"github.com/sohryuu101/web-wedding-sub000/services"

	"github.com/gofiber/fiber/v2"
)

// StatusFor maps a service error kind to its HTTP status.
func StatusFor(err error) int {
	switch {
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, services.ErrAlreadyExists),
		errors.Is(err, services.ErrNoFields),
		errors.Is(err, services.ErrDuplicateRSVP),
		errors.Is(err, services.ErrEmailTaken):
		return fiber.StatusBadRequest
	case errors.Is(err, services.ErrNotFound),
		errors.Is(err, services.ErrFileNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, services.ErrUnauthorized),
		errors.Is(err, services.ErrInvalidCredentials):
		return fiber.StatusUnauthorized
	}
	return fiber.StatusInternalServerError
}

// Error writes {error} with the mapped status. Unknown errors never leak
// their text.
func Error(c *fiber.Ctx, err error) error {
	status := StatusFor(err)
	msg := err.Error()
	if status == fiber.StatusInternalServerError {
		msg = services.ErrInternal.Error()
	}
	return c.Status(status).JSON(fiber.Map{"error": msg})
}

// BadRequest is for bodies that do not parse.
func BadRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": msg})
}

// ErrorHandler is the app-wide fallback for errors returned by handlers and
// middlewares.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	msg := services.ErrInternal.Error()
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		msg = fe.Message
	}
	return c.Status(code).JSON(fiber.Map{"error": msg})
}
