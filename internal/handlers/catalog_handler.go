package handlers

import (
	"mime/multipart"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/saphaniox/sap-technologies.ug-sub002/internal/models"
	"github.com/saphaniox/sap-technologies.ug-sub002/internal/services"
)

// formFile returns the named upload or nil when absent.
func formFile(c *fiber.Ctx, name string) *multipart.FileHeader {
	fh, err := c.FormFile(name)
	if err != nil {
		return nil
	}
	return fh
}

func formInt(c *fiber.Ctx, name string) int {
	v, _ := strconv.Atoi(c.FormValue(name))
	return v
}

func formBool(c *fiber.Ctx, name string, defaultValue bool) bool {
	raw := c.FormValue(name)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return defaultValue
	}
	return v
}

// --- Products ---

func ListProductsHandler(c *fiber.Ctx) error {
	products, err := services.ListProducts(c.Context(), true)
	if err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusOK, "OK", products)
}

func GetProductHandler(c *fiber.Ctx) error {
	product, err := services.GetProduct(c.Context(), c.Params("id"), true)
	if err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusOK, "OK", product)
}

func AdminListProductsHandler(c *fiber.Ctx) error {
	products, err := services.ListProducts(c.Context(), false)
	if err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusOK, "OK", products)
}

func CreateProductHandler(c *fiber.Ctx) error {
	product := models.Product{
		Name:         c.FormValue("name"),
		Description:  c.FormValue("description"),
		Category:     c.FormValue("category"),
		DisplayOrder: formInt(c, "display_order"),
		Featured:     formBool(c, "featured", false),
		IsActive:     formBool(c, "is_active", true),
	}
	if err := validate.Struct(product); err != nil {
		return fail(c, fiber.StatusBadRequest, validationMessage(err))
	}

	image := formFile(c, "image")
	created, err := services.CreateProduct(c.Context(), product, image)
	if err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusCreated, "Product created", created)
}

func UpdateProductHandler(c *fiber.Ctx) error {
	product := models.Product{
		Name:         c.FormValue("name"),
		Description:  c.FormValue("description"),
		Category:     c.FormValue("category"),
		DisplayOrder: formInt(c, "display_order"),
		Featured:     formBool(c, "featured", false),
		IsActive:     formBool(c, "is_active", true),
	}
	if err := validate.Struct(product); err != nil {
		return fail(c, fiber.StatusBadRequest, validationMessage(err))
	}

	image := formFile(c, "image")
	updated, err := services.UpdateProduct(c.Context(), c.Params("id"), product, image)
	if err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusOK, "Product updated", updated)
}

func DeleteProductHandler(c *fiber.Ctx) error {
	if err := services.DeleteProduct(c.Context(), c.Params("id")); err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusOK, "Product deleted", nil)
}

// --- Services ---

func ListServicesHandler(c *fiber.Ctx) error {
	items, err := services.ListServices(c.Context(), true)
	if err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusOK, "OK", items)
}

func GetServiceHandler(c *fiber.Ctx) error {
	item, err := services.GetService(c.Context(), c.Params("id"), true)
	if err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusOK, "OK", item)
}

func AdminListServicesHandler(c *fiber.Ctx) error {
	items, err := services.ListServices(c.Context(), false)
	if err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusOK, "OK", items)
}

func CreateServiceHandler(c *fiber.Ctx) error {
	item := models.Service{
		Name:         c.FormValue("name"),
		Description:  c.FormValue("description"),
		Category:     c.FormValue("category"),
		DisplayOrder: formInt(c, "display_order"),
		IsActive:     formBool(c, "is_active", true),
	}
	if err := validate.Struct(item); err != nil {
		return fail(c, fiber.StatusBadRequest, validationMessage(err))
	}

	image := formFile(c, "image")
	created, err := services.CreateService(c.Context(), item, image)
	if err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusCreated, "Service created", created)
}

func UpdateServiceHandler(c *fiber.Ctx) error {
	item := models.Service{
		Name:         c.FormValue("name"),
		Description:  c.FormValue("description"),
		Category:     c.FormValue("category"),
		DisplayOrder: formInt(c, "display_order"),
		IsActive:     formBool(c, "is_active", true),
	}
	if err := validate.Struct(item); err != nil {
		return fail(c, fiber.StatusBadRequest, validationMessage(err))
	}

	image := formFile(c, "image")
	updated, err := services.UpdateService(c.Context(), c.Params("id"), item, image)
	if err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusOK, "Service updated", updated)
}

func DeleteServiceHandler(c *fiber.Ctx) error {
	if err := services.DeleteService(c.Context(), c.Params("id")); err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusOK, "Service deleted", nil)
}

// --- Projects ---

func ListProjectsHandler(c *fiber.Ctx) error {
	projects, err := services.ListProjects(c.Context(), true)
	if err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusOK, "OK", projects)
}

func GetProjectHandler(c *fiber.Ctx) error {
	project, err := services.GetProject(c.Context(), c.Params("id"), true)
	if err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusOK, "OK", project)
}

func AdminListProjectsHandler(c *fiber.Ctx) error {
	projects, err := services.ListProjects(c.Context(), false)
	if err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusOK, "OK", projects)
}

func CreateProjectHandler(c *fiber.Ctx) error {
	project := models.Project{
		Title:        c.FormValue("title"),
		Description:  c.FormValue("description"),
		Category:     c.FormValue("category"),
		Client:       c.FormValue("client"),
		DisplayOrder: formInt(c, "display_order"),
		Featured:     formBool(c, "featured", false),
		IsActive:     formBool(c, "is_active", true),
	}
	if err := validate.Struct(project); err != nil {
		return fail(c, fiber.StatusBadRequest, validationMessage(err))
	}

	image := formFile(c, "image")
	created, err := services.CreateProject(c.Context(), project, image)
	if err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusCreated, "Project created", created)
}

func UpdateProjectHandler(c *fiber.Ctx) error {
	project := models.Project{
		Title:        c.FormValue("title"),
		Description:  c.FormValue("description"),
		Category:     c.FormValue("category"),
		Client:       c.FormValue("client"),
		DisplayOrder: formInt(c, "display_order"),
		Featured:     formBool(c, "featured", false),
		IsActive:     formBool(c, "is_active", true),
	}
	if err := validate.Struct(project); err != nil {
		return fail(c, fiber.StatusBadRequest, validationMessage(err))
	}

	image := formFile(c, "image")
	updated, err := services.UpdateProject(c.Context(), c.Params("id"), project, image)
	if err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusOK, "Project updated", updated)
}

func DeleteProjectHandler(c *fiber.Ctx) error {
	if err := services.DeleteProject(c.Context(), c.Params("id")); err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusOK, "Project deleted", nil)
}

// --- Partners ---

func ListPartnersHandler(c *fiber.Ctx) error {
	partners, err := services.ListPartners(c.Context(), true)
	if err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusOK, "OK", partners)
}

func GetPartnerHandler(c *fiber.Ctx) error {
	partner, err := services.GetPartner(c.Context(), c.Params("id"))
	if err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusOK, "OK", partner)
}

func AdminListPartnersHandler(c *fiber.Ctx) error {
	partners, err := services.ListPartners(c.Context(), false)
	if err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusOK, "OK", partners)
}

func CreatePartnerHandler(c *fiber.Ctx) error {
	partner := models.Partner{
		Name:         c.FormValue("name"),
		Website:      c.FormValue("website"),
		DisplayOrder: formInt(c, "display_order"),
		IsActive:     formBool(c, "is_active", true),
	}
	if err := validate.Struct(partner); err != nil {
		return fail(c, fiber.StatusBadRequest, validationMessage(err))
	}

	logo := formFile(c, "logo")
	created, err := services.CreatePartner(c.Context(), partner, logo)
	if err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusCreated, "Partner created", created)
}

func UpdatePartnerHandler(c *fiber.Ctx) error {
	partner := models.Partner{
		Name:         c.FormValue("name"),
		Website:      c.FormValue("website"),
		DisplayOrder: formInt(c, "display_order"),
		IsActive:     formBool(c, "is_active", true),
	}
	if err := validate.Struct(partner); err != nil {
		return fail(c, fiber.StatusBadRequest, validationMessage(err))
	}

	logo := formFile(c, "logo")
	updated, err := services.UpdatePartner(c.Context(), c.Params("id"), partner, logo)
	if err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusOK, "Partner updated", updated)
}

func DeletePartnerHandler(c *fiber.Ctx) error {
	if err := services.DeletePartner(c.Context(), c.Params("id")); err != nil {
		return failErr(c, err)
	}
	return success(c, fiber.StatusOK, "Partner deleted", nil)
}
