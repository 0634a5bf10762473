package handlers

import (
	"errors"
	"time"

	"github.com/sohryuu101/web-wedding-sub000/configs/configslog"
	"github.com/sohryuu101/web-wedding-sub000/pkg/themes"
	"github.com/sohryuu101/web-wedding-sub000/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RSVP outcomes carried back to the guest page in ?rsvp=.
const (
	rsvpThanks    = "thanks"
	rsvpDuplicate = "duplicate"
	rsvpInvalid   = "invalid"
)

// PageHandler renders the themed guest page and takes its RSVP form.
type PageHandler struct {
	public services.IPublicService
}

func NewPageHandler(public services.IPublicService) *PageHandler {
	return &PageHandler{public: public}
}

// Show handles GET /:slug. Opening the page counts as a view; HEAD, which
// Fiber routes here too, does not.
func (h *PageHandler) Show(c *fiber.Ctx) error {
	slug := c.Params("slug")
	ctx := c.UserContext()

	page, err := h.public.Sections(ctx, slug, time.Now())
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return h.renderNotFound(c)
		}
		return h.renderError(c)
	}
	if c.Method() == fiber.MethodGet {
		if _, err := h.public.TrackView(ctx, slug); err != nil {
			configslog.Log.Warn("PageHandler.Show: view not tracked", zap.String("slug", slug), zap.Error(err))
		}
	}

	return c.Render("invitation", fiber.Map{
		"Title":  page.Title,
		"Page":   page,
		"Notice": c.Query("rsvp"),
	}, "layouts/main")
}

// SubmitRSVP handles POST /:slug/rsvp from the in-page form and redirects
// back to the page with the outcome.
func (h *PageHandler) SubmitRSVP(c *fiber.Ctx) error {
	slug := c.Params("slug")
	back := func(outcome string) error {
		return c.Redirect("/"+slug+"?rsvp="+outcome, fiber.StatusSeeOther)
	}

	var form themes.GuestForm
	if err := c.BodyParser(&form); err != nil {
		return back(rsvpInvalid)
	}
	data, err := form.ToRSVPFormData()
	if err != nil {
		return back(rsvpInvalid)
	}

	_, _, err = h.public.SubmitRSVP(c.UserContext(), slug, data)
	switch {
	case err == nil:
		return back(rsvpThanks)
	case errors.Is(err, services.ErrDuplicateRSVP):
		return back(rsvpDuplicate)
	case errors.Is(err, services.ErrValidation):
		return back(rsvpInvalid)
	case errors.Is(err, services.ErrNotFound):
		return h.renderNotFound(c)
	default:
		return h.renderError(c)
	}
}

func (h *PageHandler) renderNotFound(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).Render("errors/404", fiber.Map{
		"Title":   "Not found",
		"Message": "Invitation not found, it may have been removed.",
	}, "layouts/main")
}

func (h *PageHandler) renderError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).Render("errors/500", fiber.Map{
		"Title":   "Something went wrong",
		"Message": "The invitation could not be loaded. Please try again later.",
	}, "layouts/main")
}
