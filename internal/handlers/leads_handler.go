package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/saphaniox/sap-technologies.ug-sub002/internal/models"
	"github.com/saphaniox/sap-technologies.ug-sub002/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func CreateContactHandler(c *fiber.Ctx) error {
	var contact models.Contact
	if err := c.BodyParser(&contact); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(contact); err != nil {
		return fail(c, fiber.StatusBadRequest, validationMessage(err))
	}

	created, err := services.CreateContact(c.Context(), contact)
	if err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusCreated, "Message received", created)
}

func CreateProductInquiryHandler(c *fiber.Ctx) error {
	productID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid product ID")
	}

	var inquiry models.ProductInquiry
	if err := c.BodyParser(&inquiry); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	inquiry.ProductID = productID
	if err := validate.Struct(inquiry); err != nil {
		return fail(c, fiber.StatusBadRequest, validationMessage(err))
	}

	created, err := services.CreateProductInquiry(c.Context(), inquiry)
	if err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusCreated, "Inquiry received", created)
}

func CreateServiceQuoteHandler(c *fiber.Ctx) error {
	serviceID, err := primitive.ObjectIDFromHex(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid service ID")
	}

	var quote models.ServiceQuote
	if err := c.BodyParser(&quote); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	quote.ServiceID = serviceID
	if err := validate.Struct(quote); err != nil {
		return fail(c, fiber.StatusBadRequest, validationMessage(err))
	}

	created, err := services.CreateServiceQuote(c.Context(), quote)
	if err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusCreated, "Quote request received", created)
}

func CreatePartnershipHandler(c *fiber.Ctx) error {
	var request models.PartnershipRequest
	if err := c.BodyParser(&request); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(request); err != nil {
		return fail(c, fiber.StatusBadRequest, validationMessage(err))
	}

	created, err := services.CreatePartnershipRequest(c.Context(), request)
	if err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusCreated, "Partnership request received", created)
}

func SubscribeHandler(c *fiber.Ctx) error {
	var request struct {
		Email string `json:"email" validate:"required,email"`
	}
	if err := c.BodyParser(&request); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(request); err != nil {
		return fail(c, fiber.StatusBadRequest, validationMessage(err))
	}

	subscriber, err := services.Subscribe(c.Context(), request.Email)
	if err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusCreated, "Subscribed", subscriber)
}

func UnsubscribeHandler(c *fiber.Ctx) error {
	var request struct {
		Email string `json:"email" validate:"required,email"`
	}
	if err := c.BodyParser(&request); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(request); err != nil {
		return fail(c, fiber.StatusBadRequest, validationMessage(err))
	}

	if err := services.Unsubscribe(c.Context(), request.Email); err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusOK, "Unsubscribed", nil)
}

// leadCollections maps URL segments to collection names for the admin
// lead endpoints.
var leadCollections = map[string]string{
	"contacts":     "contacts",
	"inquiries":    "product_inquiries",
	"quotes":       "service_quotes",
	"partnerships": "partnership_requests",
}

func AdminListLeadsHandler(c *fiber.Ctx) error {
	collection, ok := leadCollections[c.Params("kind")]
	if !ok {
		return fail(c, fiber.StatusNotFound, "Unknown lead type")
	}
	leads, err := services.ListLeads(c.Context(), collection)
	if err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusOK, "OK", leads)
}

func AdminUpdateLeadStatusHandler(c *fiber.Ctx) error {
	collection, ok := leadCollections[c.Params("kind")]
	if !ok {
		return fail(c, fiber.StatusNotFound, "Unknown lead type")
	}

	var request struct {
		Status string `json:"status" validate:"required,oneof=new contacted resolved closed"`
	}
	if err := c.BodyParser(&request); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(request); err != nil {
		return fail(c, fiber.StatusBadRequest, validationMessage(err))
	}

	if err := services.UpdateLeadStatus(c.Context(), collection, c.Params("id"), request.Status); err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusOK, "Status updated", nil)
}

func AdminListNewsletterHandler(c *fiber.Ctx) error {
	subscribers, err := services.ListLeads(c.Context(), "newsletter")
	if err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusOK, "OK", subscribers)
}
