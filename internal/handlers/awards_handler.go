package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/saphaniox/sap-technologies.ug-sub002/internal/models"
	"github.com/saphaniox/sap-technologies.ug-sub002/internal/services"
)

// --- Public ---

func ListCategoriesHandler(c *fiber.Ctx) error {
	categories, err := services.ListCategories(c.Context(), true)
	if err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusOK, "OK", categories)
}

func ListNominationsHandler(c *fiber.Ctx) error {
	nominations, err := services.ListNominations(c.Context(), services.NominationFilter{
		CategoryID: c.Query("category"),
		PublicOnly: true,
	})
	if err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusOK, "OK", nominations)
}

func GetNominationHandler(c *fiber.Ctx) error {
	nomination, err := services.GetNomination(c.Context(), c.Params("id"))
	if err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusOK, "OK", nomination)
}

func CreateNominationHandler(c *fiber.Ctx) error {
	var request struct {
		NomineeName    string `validate:"required,min=2,max=100"`
		NomineeEmail   string `validate:"omitempty,email"`
		CategoryID     string `validate:"required"`
		NominatorName  string `validate:"required,min=2,max=100"`
		NominatorEmail string `validate:"required,email"`
		Reason         string `validate:"required,min=20,max=2000"`
	}
	request.NomineeName = c.FormValue("nominee_name")
	request.NomineeEmail = c.FormValue("nominee_email")
	request.CategoryID = c.FormValue("category_id")
	request.NominatorName = c.FormValue("nominator_name")
	request.NominatorEmail = c.FormValue("nominator_email")
	request.Reason = c.FormValue("reason")

	if err := validate.Struct(request); err != nil {
		return fail(c, fiber.StatusBadRequest, validationMessage(err))
	}

	photo, err := c.FormFile("photo")
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Nominee photo is required")
	}

	nomination, err := services.CreateNomination(c.Context(), services.NominationInput{
		NomineeName:    request.NomineeName,
		NomineeEmail:   request.NomineeEmail,
		NomineePhone:   c.FormValue("nominee_phone"),
		NomineeCompany: c.FormValue("nominee_company"),
		NomineeCountry: c.FormValue("nominee_country"),
		CategoryID:     request.CategoryID,
		NominatorName:  request.NominatorName,
		NominatorEmail: request.NominatorEmail,
		Reason:         request.Reason,
	}, photo)
	if err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusCreated, "Nomination submitted", nomination)
}

func VoteHandler(c *fiber.Ctx) error {
	var request struct {
		VoterEmail string `json:"voter_email" validate:"required,email"`
		VoterName  string `json:"voter_name" validate:"required,min=2,max=100"`
	}
	if err := c.BodyParser(&request); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(request); err != nil {
		return fail(c, fiber.StatusBadRequest, validationMessage(err))
	}

	vote, err := services.AddVote(c.Context(), c.Params("id"), request.VoterEmail, request.VoterName, c.IP())
	if err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusCreated, "Vote recorded", vote)
}

func VerifyCertificateHandler(c *fiber.Ctx) error {
	cert, err := services.VerifyCertificate(c.Context(), c.Params("certificateId"))
	if err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusOK, "Certificate is valid", cert)
}

// --- Admin ---

func AdminListCategoriesHandler(c *fiber.Ctx) error {
	categories, err := services.ListCategories(c.Context(), false)
	if err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusOK, "OK", categories)
}

func CreateCategoryHandler(c *fiber.Ctx) error {
	var request struct {
		Name        string `json:"name" validate:"required,min=2,max=100"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
		IsActive    *bool  `json:"is_active"`
	}
	if err := c.BodyParser(&request); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(request); err != nil {
		return fail(c, fiber.StatusBadRequest, validationMessage(err))
	}

	isActive := true
	if request.IsActive != nil {
		isActive = *request.IsActive
	}

	category, err := services.CreateCategory(c.Context(), models.AwardCategory{
		Name:        request.Name,
		Description: request.Description,
		Icon:        request.Icon,
		IsActive:    isActive,
	})
	if err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusCreated, "Category created", category)
}

func UpdateCategoryHandler(c *fiber.Ctx) error {
	var request struct {
		Name        string `json:"name" validate:"required,min=2,max=100"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
		IsActive    bool   `json:"is_active"`
	}
	if err := c.BodyParser(&request); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(request); err != nil {
		return fail(c, fiber.StatusBadRequest, validationMessage(err))
	}

	category, err := services.UpdateCategory(c.Context(), c.Params("id"), models.AwardCategory{
		Name:        request.Name,
		Description: request.Description,
		Icon:        request.Icon,
		IsActive:    request.IsActive,
	})
	if err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusOK, "Category updated", category)
}

func DeleteCategoryHandler(c *fiber.Ctx) error {
	if err := services.DeleteCategory(c.Context(), c.Params("id")); err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusOK, "Category deleted", nil)
}

func AdminListNominationsHandler(c *fiber.Ctx) error {
	nominations, err := services.ListNominations(c.Context(), services.NominationFilter{
		Status:     c.Query("status"),
		CategoryID: c.Query("category"),
	})
	if err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusOK, "OK", nominations)
}

func UpdateNominationStatusHandler(c *fiber.Ctx) error {
	var request struct {
		Status string `json:"status" validate:"required,oneof=pending approved rejected winner finalist"`
	}
	if err := c.BodyParser(&request); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(request); err != nil {
		return fail(c, fiber.StatusBadRequest, validationMessage(err))
	}

	nomination, err := services.UpdateNominationStatus(c.Context(), c.Params("id"), request.Status)
	if err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusOK, "Status updated", nomination)
}

func RegenerateCertificateHandler(c *fiber.Ctx) error {
	cert, err := services.RegenerateCertificate(c.Context(), c.Params("id"))
	if err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusOK, "Certificate regenerated", cert)
}

func DeleteNominationHandler(c *fiber.Ctx) error {
	if err := services.DeleteNomination(c.Context(), c.Params("id")); err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusOK, "Nomination deleted", nil)
}

func ListVotesHandler(c *fiber.Ctx) error {
	votes, err := services.ListVotes(c.Context(), c.Params("id"))
	if err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusOK, "OK", votes)
}

func RemoveVoteHandler(c *fiber.Ctx) error {
	if err := services.RemoveVote(c.Context(), c.Params("id"), c.Params("voteId")); err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusOK, "Vote removed", nil)
}
