package routes

import (
	link_handlers "github.com/sohryuu101/web-wedding-sub000/handlers/link"
	"github.com/sohryuu101/web-wedding-sub000/middlewares"

	"github.com/gofiber/fiber/v2"
)

// registerPublicLinkRoutes wires the guest side: the JSON API under
// /invitation/:slug and the rendered page at /:slug.
func registerPublicLinkRoutes(app *fiber.App, deps Deps) {
	linkHandler := link_handlers.NewLinkHandler(deps.Public, deps.Uploads)
	pageHandler := link_handlers.NewPageHandler(deps.Public)
	rsvpLimit := middlewares.RSVPRateLimiter(deps.RSVPRateLimit)

	app.Get("/themes", linkHandler.Themes)
	app.Get("/files/*", linkHandler.File)

	publicGroup := app.Group("/invitation/:slug")
	publicGroup.Get("/", linkHandler.GetInvitation)
	publicGroup.Post("/view", linkHandler.TrackView)
	publicGroup.Post("/rsvp", rsvpLimit, linkHandler.SubmitRSVP)
	publicGroup.Get("/rsvps", linkHandler.ListRSVPs)
	publicGroup.Get("/sections", linkHandler.Sections)

	app.Get("/:slug", pageHandler.Show)
	app.Post("/:slug/rsvp", rsvpLimit, pageHandler.SubmitRSVP)
}
