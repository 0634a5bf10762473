package handlers

import (
	"time"

	"github.com/sohryuu101/web-wedding-sub000/handlers"
	"github.com/sohryuu101/web-wedding-sub000/models"
	"github.com/sohryuu101/web-wedding-sub000/pkg/themes"
	"github.com/sohryuu101/web-wedding-sub000/services"

	"github.com/gofiber/fiber/v2"
)

// LinkHandler is the guest-facing JSON API keyed by slug. Nothing here needs
// a session.
type LinkHandler struct {
	public  services.IPublicService
	uploads services.IUploadService
}

func NewLinkHandler(public services.IPublicService, uploads services.IUploadService) *LinkHandler {
	return &LinkHandler{public: public, uploads: uploads}
}

// GetInvitation handles GET /invitation/:slug.
func (h *LinkHandler) GetInvitation(c *fiber.Ctx) error {
	inv, err := h.public.GetPublished(c.UserContext(), c.Params("slug"))
	if err != nil {
		return handlers.Error(c, err)
	}
	return c.JSON(fiber.Map{"invitation": inv})
}

// TrackView handles POST /invitation/:slug/view.
func (h *LinkHandler) TrackView(c *fiber.Ctx) error {
	views, err := h.public.TrackView(c.UserContext(), c.Params("slug"))
	if err != nil {
		return handlers.Error(c, err)
	}
	return c.JSON(fiber.Map{"message": "View tracked", "views": views})
}

// SubmitRSVP handles POST /invitation/:slug/rsvp.
func (h *LinkHandler) SubmitRSVP(c *fiber.Ctx) error {
	var form models.RSVPFormData
	if err := c.BodyParser(&form); err != nil {
		return handlers.BadRequest(c, "invalid request body")
	}
	rsvp, msg, err := h.public.SubmitRSVP(c.UserContext(), c.Params("slug"), form)
	if err != nil {
		return handlers.Error(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": msg, "rsvp": rsvp})
}

// ListRSVPs handles GET /invitation/:slug/rsvps.
func (h *LinkHandler) ListRSVPs(c *fiber.Ctx) error {
	listing, err := h.public.ListRSVPs(c.UserContext(), c.Params("slug"))
	if err != nil {
		return handlers.Error(c, err)
	}
	return c.JSON(listing)
}

// Sections handles GET /invitation/:slug/sections.
func (h *LinkHandler) Sections(c *fiber.Ctx) error {
	page, err := h.public.Sections(c.UserContext(), c.Params("slug"), time.Now())
	if err != nil {
		return handlers.Error(c, err)
	}
	return c.JSON(page)
}

// Themes handles GET /themes.
func (h *LinkHandler) Themes(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"themes": themes.Catalogue()})
}

// File handles GET /files/*, streaming a stored upload.
func (h *LinkHandler) File(c *fiber.Ctx) error {
	obj, err := h.uploads.Open(c.UserContext(), c.Params("*"))
	if err != nil {
		return handlers.Error(c, err)
	}
	if obj.ContentType != "" {
		c.Set(fiber.HeaderContentType, obj.ContentType)
	}
	c.Set(fiber.HeaderXContentTypeOptions, "nosniff")
	c.Set(fiber.HeaderCacheControl, "public, max-age=86400")
	return c.Send(obj.Data)
}
