package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

var jwtSecret []byte

// Init sets the secret used to verify tokens.
func Init(secret string) {
	jwtSecret = []byte(secret)
}

// AuthMiddleware validates JWT token and extracts user details
func AuthMiddleware(c *fiber.Ctx) error {
	claims, err := parseToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status": "error", "message": err.Error(),
		})
	}

	userID, userExists := claims["user_id"].(string)
	role, roleExists := claims["role"].(string)
	if !userExists || !roleExists {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"status": "error", "message": "Invalid token payload",
		})
	}

	// Store user info in context for next handlers
	c.Locals("user_id", userID)
	c.Locals("role", role)
	return c.Next()
}

func parseToken(c *fiber.Ctx) (jwt.MapClaims, error) {
	tokenString := c.Get("Authorization")
	if tokenString == "" {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Missing token")
	}
	tokenString = strings.TrimPrefix(tokenString, "Bearer ")
	if tokenString == "" {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token format")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
	}
	return claims, nil
}
