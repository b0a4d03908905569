package middleware

import (
	"github.com/gofiber/fiber/v2"
)

// AdminMiddleware ensures that only users with "admin" role can access admin routes
func AdminMiddleware(c *fiber.Ctx) error {
	claims, err := parseToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}

	role, exists := claims["role"].(string)
	if !exists || role != "admin" {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
			"status": "error", "message": "Access denied. Admins only.",
		})
	}

	if userID, ok := claims["user_id"].(string); ok {
		c.Locals("user_id", userID)
	}
	c.Locals("role", role)
	return c.Next()
}
