package routes

import (
	"net/http"
	"time"

	"github.com/sohryuu101/web-wedding-sub000/middlewares"
	"github.com/sohryuu101/web-wedding-sub000/services"
	"github.com/sohryuu101/web-wedding-sub000/views"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/logger"
	recoverMiddleware "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// Deps carries the services and settings the routes are built from.
type Deps struct {
	Auth        services.IAuthService
	Invitations services.IInvitationService
	Public      services.IPublicService
	Uploads     services.IUploadService

	CORSAllowOrigins string
	RSVPRateLimit    int
	RequestTimeout   time.Duration
	UploadMaxBytes   int64
}

// SetupRoutes installs the global middlewares and every route group.
func SetupRoutes(app *fiber.App, deps Deps) {
	app.Use(recoverMiddleware.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
	}))
	app.Use(middlewares.CORS(deps.CORSAllowOrigins))
	app.Use(middlewares.GlobalRateLimiter())
	app.Use(middlewares.RequestTimeout(deps.RequestTimeout))

	app.Use("/static", filesystem.New(filesystem.Config{
		Root:       http.FS(views.FS),
		PathPrefix: "static",
		MaxAge:     86400,
	}))

	registerAuthRoutes(app, deps)
	registerPanelRoutes(app, deps)

	// /:slug matches any single segment, so it goes after every named group.
	registerPublicLinkRoutes(app, deps)

	app.Use(notFoundHandler)
}

func notFoundHandler(c *fiber.Ctx) error {
	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "resource not found"})
}
