package routes

import (
	"net/http"

	"github.com/sohryuu101/web-wedding-sub000/handlers"
	"github.com/sohryuu101/web-wedding-sub000/views"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
)

// NewApp builds the Fiber app with the embedded view engine and all routes.
func NewApp(deps Deps) *fiber.App {
	engine := html.NewFileSystem(http.FS(views.FS), ".html")

	app := fiber.New(fiber.Config{
		AppName:      "wedding-invitation",
		Views:        engine,
		ErrorHandler: handlers.ErrorHandler,
		BodyLimit:    bodyLimit(deps.UploadMaxBytes),
	})
	SetupRoutes(app, deps)
	return app
}

// bodyLimit leaves room for multipart framing around the largest upload.
func bodyLimit(uploadMax int64) int {
	const overhead = 1 << 20
	if uploadMax <= 0 {
		return 4 * 1024 * 1024
	}
	return int(uploadMax) + overhead
}
