package routes

import (
	auth_handlers "github.com/sohryuu101/web-wedding-sub000/handlers/auth"
	"github.com/sohryuu101/web-wedding-sub000/middlewares"

	"github.com/gofiber/fiber/v2"
)

func registerAuthRoutes(app *fiber.App, deps Deps) {
	authHandler := auth_handlers.NewAuthHandler(deps.Auth)
	authGroup := app.Group("/auth")

	authGroup.Post("/register", middlewares.RegisterRateLimiter(), authHandler.Register)
	authGroup.Post("/login", middlewares.LoginRateLimiter(), authHandler.Login)
	authGroup.Get("/me", middlewares.RequireAuth(deps.Auth), authHandler.Me)
}
