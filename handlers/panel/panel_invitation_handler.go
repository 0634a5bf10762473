package handlers

import (
	"errors"
	"time"

	"github.com/sohryuu101/web-wedding-sub000/handlers"
	"github.com/sohryuu101/web-wedding-sub000/models"
	"github.com/sohryuu101/web-wedding-sub000/services"
	"github.com/sohryuu101/web-wedding-sub000/utils"

	"github.com/gofiber/fiber/v2"
)

// PanelInvitationHandler serves the author's own invitation. Routes sit
// behind RequireAuth.
type PanelInvitationHandler struct {
	service services.IInvitationService
}

func NewPanelInvitationHandler(service services.IInvitationService) *PanelInvitationHandler {
	return &PanelInvitationHandler{service: service}
}

// GetInvitation handles GET /invitations. A user without an invitation
// gets hasInvitation=false, not a 404.
func (h *PanelInvitationHandler) GetInvitation(c *fiber.Ctx) error {
	userID, _ := utils.GetUserID(c)
	inv, err := h.service.Get(c.UserContext(), userID)
	if errors.Is(err, services.ErrNotFound) {
		return c.JSON(fiber.Map{"invitation": nil, "hasInvitation": false})
	}
	if err != nil {
		return handlers.Error(c, err)
	}
	return c.JSON(fiber.Map{"invitation": inv, "hasInvitation": true})
}

// CreateInvitation handles POST /invitations.
func (h *PanelInvitationHandler) CreateInvitation(c *fiber.Ctx) error {
	userID, _ := utils.GetUserID(c)
	var input models.CreateInvitationInput
	if err := c.BodyParser(&input); err != nil {
		return handlers.BadRequest(c, "invalid request body")
	}
	inv, err := h.service.Create(c.UserContext(), userID, input)
	if err != nil {
		return handlers.Error(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"invitation": inv})
}

// UpdateInvitation handles PUT /invitations. Keys outside the patch shape
// (id, slug, counters) are dropped while decoding.
func (h *PanelInvitationHandler) UpdateInvitation(c *fiber.Ctx) error {
	userID, _ := utils.GetUserID(c)
	var patch models.InvitationPatch
	if err := c.BodyParser(&patch); err != nil {
		return handlers.BadRequest(c, "invalid request body")
	}
	inv, err := h.service.Update(c.UserContext(), userID, patch)
	if err != nil {
		return handlers.Error(c, err)
	}
	return c.JSON(fiber.Map{"invitation": inv})
}

// DeleteInvitation handles DELETE /invitations.
func (h *PanelInvitationHandler) DeleteInvitation(c *fiber.Ctx) error {
	userID, _ := utils.GetUserID(c)
	if err := h.service.Delete(c.UserContext(), userID); err != nil {
		return handlers.Error(c, err)
	}
	return c.JSON(fiber.Map{"message": "Invitation deleted successfully"})
}

// TogglePublish handles POST /invitations/publish.
func (h *PanelInvitationHandler) TogglePublish(c *fiber.Ctx) error {
	userID, _ := utils.GetUserID(c)
	published, msg, err := h.service.TogglePublish(c.UserContext(), userID)
	if err != nil {
		return handlers.Error(c, err)
	}
	return c.JSON(fiber.Map{"message": msg, "is_published": published})
}

// Preview handles GET /invitations/preview.
func (h *PanelInvitationHandler) Preview(c *fiber.Ctx) error {
	userID, _ := utils.GetUserID(c)
	page, err := h.service.Preview(c.UserContext(), userID, time.Now())
	if err != nil {
		return handlers.Error(c, err)
	}
	return c.JSON(page)
}
