package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/nkamau743/driving_school/models"
	"github.com/nkamau743/driving_school/store"
)

const defaultFeedbackRating = 5

type CreateLessonRequest struct {
	InstructorID   int    `json:"instructorId" validate:"required"`
	Date           string `json:"date" validate:"required"`
	Time           string `json:"time" validate:"required"`
	LessonType     string `json:"lessonType,omitempty"`
	PickupLocation string `json:"pickupLocation,omitempty"`
}

func (h *Handler) CreateLesson(c *fiber.Ctx) error {
	var req CreateLessonRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	lesson, err := h.Store.BookLesson(callerID(c), req.InstructorID, req.Date, req.Time, req.LessonType, req.PickupLocation, h.LessonPrice)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrInstructorNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Instructor not found"})
		case errors.Is(err, store.ErrSlotNotOffered):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "This instructor does not offer that time slot"})
		case errors.Is(err, store.ErrSlotTaken):
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Slot already booked"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to book lesson"})
	}

	return c.Status(fiber.StatusCreated).JSON(lesson)
}

// ListLessons scopes the listing to the caller's role before applying the
// optional date/status/instructorId query filters. Only admins may filter by
// an arbitrary instructorId; instructors and candidates are pinned to their
// own lessons.
func (h *Handler) ListLessons(c *fiber.Ctx) error {
	filter := store.LessonFilter{
		Date:   c.Query("date"),
		Status: c.Query("status"),
	}

	switch callerRole(c) {
	case string(models.RoleCandidate):
		filter.CandidateID = callerID(c)
	case string(models.RoleInstructor):
		filter.InstructorID = callerID(c)
	case string(models.RoleAdmin):
		if idStr := c.Query("instructorId"); idStr != "" {
			id, err := strconv.Atoi(idStr)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid instructorId"})
			}
			filter.InstructorID = id
		}
	default:
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "Unknown role"})
	}

	return c.JSON(h.Store.Lessons(filter))
}

func (h *Handler) CompleteLesson(c *fiber.Ctx) error {
	lessonID, err := strconv.Atoi(c.Params("lessonId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid lesson id"})
	}

	lesson, err := h.Store.CompleteLesson(lessonID, callerID(c))
	if err != nil {
		switch {
		case errors.Is(err, store.ErrLessonNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lesson not found"})
		case errors.Is(err, store.ErrNotLessonOwner):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You are not the instructor for this lesson"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to complete lesson"})
	}

	return c.JSON(lesson)
}

type FeedbackRequest struct {
	Rating   *int   `json:"rating,omitempty"`
	Comments string `json:"comments,omitempty"`
}

func (h *Handler) SubmitFeedback(c *fiber.Ctx) error {
	lessonID, err := strconv.Atoi(c.Params("lessonId"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid lesson id"})
	}

	var req FeedbackRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}

	rating := defaultFeedbackRating
	if req.Rating != nil {
		rating = *req.Rating
	}

	lesson, feedback, err := h.Store.AddFeedback(lessonID, callerID(c), rating, req.Comments)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrLessonNotFound):
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Lesson not found"})
		case errors.Is(err, store.ErrNotLessonOwner):
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "You are not the instructor for this lesson"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to record feedback"})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"lesson": lesson, "feedback": feedback})
}
