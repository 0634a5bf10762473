package routes

import (
	panel_handlers "github.com/sohryuu101/web-wedding-sub000/handlers/panel"
	"github.com/sohryuu101/web-wedding-sub000/middlewares"

	"github.com/gofiber/fiber/v2"
)

// registerPanelRoutes wires the author API. Every route needs a bearer token
// and acts on the caller's own invitation.
func registerPanelRoutes(app *fiber.App, deps Deps) {
	invitationHandler := panel_handlers.NewPanelInvitationHandler(deps.Invitations)
	uploadHandler := panel_handlers.NewPanelUploadHandler(deps.Uploads)
	requireAuth := middlewares.RequireAuth(deps.Auth)

	invitationGroup := app.Group("/invitations", requireAuth)
	invitationGroup.Get("/", invitationHandler.GetInvitation)
	invitationGroup.Post("/", invitationHandler.CreateInvitation)
	invitationGroup.Put("/", invitationHandler.UpdateInvitation)
	invitationGroup.Delete("/", invitationHandler.DeleteInvitation)
	invitationGroup.Post("/publish", invitationHandler.TogglePublish)
	invitationGroup.Get("/preview", invitationHandler.Preview)

	app.Post("/upload", requireAuth, uploadHandler.Upload)
	app.Delete("/upload", requireAuth, uploadHandler.DeleteUpload)
}
