package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nkamau743/driving_school/handlers"
	"github.com/nkamau743/driving_school/middleware"
)

func InvoiceRoutes(app *fiber.App, h *handlers.Handler) {
	invoices := app.Group("/api/invoices", middleware.Protected(), middleware.AdminRequired())

	invoices.Post("/generate", h.GenerateInvoice)
	invoices.Get("", h.ListInvoices)
}
