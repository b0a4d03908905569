package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/saphaniox/sap-technologies.ug-sub002/internal/services"
)

func ListUsersHandler(c *fiber.Ctx) error {
	users, err := services.ListUsers(c.Context())
	if err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusOK, "OK", users)
}

func GetUserHandler(c *fiber.Ctx) error {
	user, err := services.GetUser(c.Context(), c.Params("id"))
	if err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusOK, "OK", user)
}

func SetUserActiveHandler(c *fiber.Ctx) error {
	var request struct {
		IsActive *bool `json:"is_active" validate:"required"`
	}
	if err := c.BodyParser(&request); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(request); err != nil {
		return fail(c, fiber.StatusBadRequest, validationMessage(err))
	}

	if err := services.SetUserActive(c.Context(), c.Params("id"), *request.IsActive); err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusOK, "User updated", nil)
}

// ListNotificationsHandler exposes dispatch outcomes so a silent send
// failure is still visible to operators.
func ListNotificationsHandler(c *fiber.Ctx) error {
	records, err := services.ListNotifications(c.Context())
	if err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusOK, "OK", records)
}
