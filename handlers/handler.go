package handlers

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/nkamau743/driving_school/store"
)

var validate = validator.New()

// Handler carries the injected store so tests can substitute fixture
// directories instead of the seeded one.
type Handler struct {
	Store       *store.Store
	LessonPrice int
}

func New(st *store.Store, lessonPrice int) *Handler {
	return &Handler{Store: st, LessonPrice: lessonPrice}
}

func callerClaims(c *fiber.Ctx) jwt.MapClaims {
	token := c.Locals("user").(*jwt.Token)
	return token.Claims.(jwt.MapClaims)
}

func callerID(c *fiber.Ctx) int {
	idStr, _ := callerClaims(c)["user_id"].(string)
	id, _ := strconv.Atoi(idStr)
	return id
}

func callerRole(c *fiber.Ctx) string {
	role, _ := callerClaims(c)["role"].(string)
	return role
}
