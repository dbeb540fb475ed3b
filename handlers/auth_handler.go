package handlers

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	config "github.com/nkamau743/driving_school/configs"
	"github.com/nkamau743/driving_school/models"
	"golang.org/x/crypto/bcrypt"
)

const tokenValidity = 8 * time.Hour

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	ID       int         `json:"id"`
	FullName string      `json:"fullName"`
	Email    string      `json:"email"`
	Phone    string      `json:"phone"`
	Role     models.Role `json:"role"`
}

func userResponse(a models.Account) UserResponse {
	return UserResponse{
		ID:       a.ID,
		FullName: a.FullName,
		Email:    a.Email,
		Phone:    a.Phone,
		Role:     a.Role,
	}
}

func (h *Handler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	account, err := h.Store.AccountByEmail(req.Email)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password"})
	}
	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)); err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid email or password"})
	}

	claims := jwt.MapClaims{
		"user_id": strconv.Itoa(account.ID),
		"email":   account.Email,
		"name":    account.FullName,
		"role":    string(account.Role),
		"jti":     uuid.NewString(),
		"exp":     time.Now().Add(tokenValidity).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	t, err := token.SignedString([]byte(config.JWTSecret()))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create token"})
	}

	return c.JSON(fiber.Map{"token": t, "user": userResponse(account)})
}

func (h *Handler) Me(c *fiber.Ctx) error {
	account, err := h.Store.Account(callerID(c))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Account not found"})
	}
	return c.JSON(userResponse(account))
}
