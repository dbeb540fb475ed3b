package routes

import (
	"github.com/gofiber/fiber/v2"
	"github.com/nkamau743/driving_school/handlers"
	"github.com/nkamau743/driving_school/middleware"
)

func LessonRoutes(app *fiber.App, h *handlers.Handler) {
	lessons := app.Group("/api/lessons", middleware.Protected())

	lessons.Post("", middleware.CandidateRequired(), h.CreateLesson)
	lessons.Get("", h.ListLessons)
	lessons.Post("/:lessonId/complete", middleware.InstructorRequired(), h.CompleteLesson)
	lessons.Post("/:lessonId/feedback", middleware.InstructorRequired(), h.SubmitFeedback)
}
