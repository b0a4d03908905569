package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/saphaniox/sap-technologies.ug-sub002/internal/services"
)

var validate = validator.New()

// success writes the standard envelope {status, message, data}.
func success(c *fiber.Ctx, code int, message string, data interface{}) error {
	body := fiber.Map{"status": "success", "message": message}
	if data != nil {
		body["data"] = data
	}
	return c.Status(code).JSON(body)
}

func fail(c *fiber.Ctx, code int, message string) error {
	return c.Status(code).JSON(fiber.Map{"status": "error", "message": message})
}

// failErr maps service errors onto HTTP status codes.
func failErr(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrNotFound):
		return fail(c, fiber.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		return fail(c, fiber.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrAccountLocked),
		errors.Is(err, services.ErrAccountDisabled):
		return fail(c, fiber.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrEmailInUse),
		errors.Is(err, services.ErrDuplicateVote),
		errors.Is(err, services.ErrVotingClosed),
		errors.Is(err, services.ErrDuplicateCategory),
		errors.Is(err, services.ErrCategoryInUse),
		errors.Is(err, services.ErrAlreadySubscribed):
		return fail(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, services.ErrInvalidTransition):
		return fail(c, fiber.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, services.ErrPhotoRequired),
		errors.Is(err, services.ErrFileTooLarge),
		errors.Is(err, services.ErrNotAnImage):
		return fail(c, fiber.StatusBadRequest, err.Error())
	}
	return fail(c, fiber.StatusInternalServerError, "internal server error")
}

// validationMessage flattens the first validator error into a readable
// message.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		switch fe.Tag() {
		case "required":
			return fe.Field() + " is required"
		case "email":
			return fe.Field() + " must be a valid email address"
		case "min":
			return fe.Field() + " is too short"
		case "max":
			return fe.Field() + " is too long"
		case "url":
			return fe.Field() + " must be a valid URL"
		}
		return fe.Field() + " is invalid"
	}
	return "invalid request"
}
