package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/nkamau743/driving_school/store"
)

func (h *Handler) ListInstructors(c *fiber.Ctx) error {
	return c.JSON(h.Store.Instructors())
}

func (h *Handler) GetAvailability(c *fiber.Ctx) error {
	instructorIDStr := c.Query("instructorId")
	date := c.Query("date")
	if instructorIDStr == "" || date == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "instructorId and date are required"})
	}

	instructorID, err := strconv.Atoi(instructorIDStr)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid instructorId"})
	}

	slots, err := h.Store.AvailableSlots(instructorID, date)
	if err != nil {
		if errors.Is(err, store.ErrInstructorNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Instructor not found"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to compute availability"})
	}

	return c.JSON(fiber.Map{
		"instructorId":   instructorID,
		"date":           date,
		"availableSlots": slots,
	})
}
