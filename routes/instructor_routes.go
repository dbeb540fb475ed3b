package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nkamau743/driving_school/handlers"
	"github.com/nkamau743/driving_school/middleware"
)

func InstructorRoutes(app *fiber.App, h *handlers.Handler) {
	api := app.Group("/api", middleware.Protected())

	api.Get("/instructors", h.ListInstructors)
	api.Get("/availability", h.GetAvailability)
}
