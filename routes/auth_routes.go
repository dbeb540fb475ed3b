package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nkamau743/driving_school/handlers"
	"github.com/nkamau743/driving_school/middleware"
)

func AuthRoutes(app *fiber.App, h *handlers.Handler) {
	api := app.Group("/api")

	api.Post("/login", h.Login)
	api.Get("/me", middleware.Protected(), h.Me)
}
