package handlers

import (
	"github.com/sohryuu101/web-wedding-sub000/handlers"
	"github.com/sohryuu101/web-wedding-sub000/models"
	"github.com/sohryuu101/web-wedding-sub000/services"
	"github.com/sohryuu101/web-wedding-sub000/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	service services.IAuthService
}

func NewAuthHandler(service services.IAuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// Register handles POST /auth/register.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input models.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return handlers.BadRequest(c, "invalid request body")
	}
	res, err := h.service.Register(c.UserContext(), input)
	if err != nil {
		return handlers.Error(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(res)
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input models.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return handlers.BadRequest(c, "invalid request body")
	}
	res, err := h.service.Login(c.UserContext(), input)
	if err != nil {
		return handlers.Error(c, err)
	}
	return c.JSON(res)
}

// Me handles GET /auth/me.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	userID, ok := utils.GetUserID(c)
	if !ok {
		return handlers.Error(c, services.ErrUnauthorized)
	}
	user, err := h.service.Me(c.UserContext(), userID)
	if err != nil {
		return handlers.Error(c, err)
	}
	return c.JSON(fiber.Map{"user": user})
}
