package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/saphaniox/sap-technologies.ug-sub002/internal/services"
)

func RegisterHandler(c *fiber.Ctx) error {
	var request struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8,max=72"`
		Name     string `json:"name" validate:"required,min=2,max=100"`
	}

	if err := c.BodyParser(&request); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(request); err != nil {
		return fail(c, fiber.StatusBadRequest, validationMessage(err))
	}

	user, err := services.RegisterUser(c.Context(), request.Email, request.Password, request.Name)
	if err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusCreated, "User registered successfully", user)
}

func LoginHandler(c *fiber.Ctx) error {
	var request struct {
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required"`
	}

	if err := c.BodyParser(&request); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(request); err != nil {
		return fail(c, fiber.StatusBadRequest, validationMessage(err))
	}

	token, user, err := services.LoginUser(c.Context(), request.Email, request.Password)
	if err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusOK, "Login successful", fiber.Map{
		"token": token,
		"user":  user,
	})
}

func MeHandler(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	user, err := services.GetUser(c.Context(), userID)
	if err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusOK, "OK", user)
}

func UpdateMeHandler(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var request struct {
		Name string `json:"name" validate:"required,min=2,max=100"`
	}
	if err := c.BodyParser(&request); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(request); err != nil {
		return fail(c, fiber.StatusBadRequest, validationMessage(err))
	}

	user, err := services.UpdateProfile(c.Context(), userID, request.Name)
	if err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusOK, "Profile updated", user)
}

func ChangePasswordHandler(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	var request struct {
		CurrentPassword string `json:"current_password" validate:"required"`
		NewPassword     string `json:"new_password" validate:"required,min=8,max=72"`
	}
	if err := c.BodyParser(&request); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(request); err != nil {
		return fail(c, fiber.StatusBadRequest, validationMessage(err))
	}

	if err := services.ChangePassword(c.Context(), userID, request.CurrentPassword, request.NewPassword); err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusOK, "Password changed", nil)
}
