package middleware

import (
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/golang-jwt/jwt/v4"
	config "github.com/nkamau743/driving_school/configs"
	"github.com/nkamau743/driving_school/models"
)

func Protected() fiber.Handler {
	return jwtware.New(jwtware.Config{
		SigningKey:   []byte(config.JWTSecret()),
		ErrorHandler: jwtError,
	})
}

// Missing, malformed and expired tokens are all unauthorized; the client
// cannot tell them apart.
func jwtError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusUnauthorized).
		JSON(fiber.Map{"error": "Invalid or missing token"})
}

func roleRequired(role models.Role, message string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Locals("user").(*jwt.Token)
		claims := token.Claims.(jwt.MapClaims)
		callerRole, _ := claims["role"].(string)

		if callerRole != string(role) {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": message})
		}
		return c.Next()
	}
}

func CandidateRequired() fiber.Handler {
	return roleRequired(models.RoleCandidate, "Forbidden: Candidate access required")
}

func InstructorRequired() fiber.Handler {
	return roleRequired(models.RoleInstructor, "Forbidden: Instructor access required")
}

func AdminRequired() fiber.Handler {
	return roleRequired(models.RoleAdmin, "Forbidden: Admin access required")
}
