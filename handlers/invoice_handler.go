package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/nkamau743/driving_school/store"
)

type GenerateInvoiceRequest struct {
	CandidateID int `json:"candidateId" validate:"required"`
}

func (h *Handler) GenerateInvoice(c *fiber.Ctx) error {
	var req GenerateInvoiceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	invoice, lessons, err := h.Store.GenerateInvoice(req.CandidateID)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrCandidateNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Candidate not found"})
		case errors.Is(err, store.ErrNothingToInvoice):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "No completed lessons to invoice"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate invoice"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"invoice": invoice, "lessons": lessons})
}

func (h *Handler) ListInvoices(c *fiber.Ctx) error {
	return c.JSON(h.Store.Invoices())
}
