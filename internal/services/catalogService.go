package services

import (
	"context"
	"mime/multipart"
	"time"

	"github.com/saphaniox/sap-technologies.ug-sub002/internal/db"
	"github.com/saphaniox/sap-technologies.ug-sub002/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var catalogSort = options.Find().SetSort(bson.D{{Key: "display_order", Value: 1}, {Key: "created_at", Value: -1}})

func catalogFilter(publicOnly bool) bson.M {
	if publicOnly {
		return bson.M{"is_active": true}
	}
	return bson.M{}
}

func parseID(id string) (primitive.ObjectID, error) {
	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrNotFound
	}
	return objID, nil
}

// --- Products ---

func ListProducts(ctx context.Context, publicOnly bool) ([]models.Product, error) {
	cursor, err := db.GetCollection("products").Find(ctx, catalogFilter(publicOnly), catalogSort)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var products []models.Product
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	for i := range products {
		products[i].ImageURL = objectURL(products[i].ImageKey)
	}
	return products, nil
}

// GetProduct fetches one product; public reads bump the view counter.
func GetProduct(ctx context.Context, id string, countView bool) (models.Product, error) {
	objID, err := parseID(id)
	if err != nil {
		return models.Product{}, err
	}

	collection := db.GetCollection("products")
	if countView {
		collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$inc": bson.M{"views": 1}})
	}

	var product models.Product
	if err := collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&product); err != nil {
		return models.Product{}, ErrNotFound
	}
	product.ImageURL = objectURL(product.ImageKey)
	return product, nil
}

func CreateProduct(ctx context.Context, product models.Product, image *multipart.FileHeader) (models.Product, error) {
	if image != nil {
		key, err := storeUpload(ctx, image, "products")
		if err != nil {
			return models.Product{}, err
		}
		product.ImageKey = key
	}

	now := time.Now()
	product.ID = primitive.NewObjectID()
	product.Views = 0
	product.Inquiries = 0
	product.CreatedAt = now
	product.UpdatedAt = now

	if _, err := db.GetCollection("products").InsertOne(ctx, product); err != nil {
		deleteObject(ctx, product.ImageKey)
		return models.Product{}, err
	}
	product.ImageURL = objectURL(product.ImageKey)
	return product, nil
}

func UpdateProduct(ctx context.Context, id string, product models.Product, image *multipart.FileHeader) (models.Product, error) {
	objID, err := parseID(id)
	if err != nil {
		return models.Product{}, err
	}

	set := bson.M{
		"name":          product.Name,
		"description":   product.Description,
		"category":      product.Category,
		"display_order": product.DisplayOrder,
		"featured":      product.Featured,
		"is_active":     product.IsActive,
		"updated_at":    time.Now(),
	}

	var oldKey string
	if image != nil {
		var existing models.Product
		if err := db.GetCollection("products").FindOne(ctx, bson.M{"_id": objID}).Decode(&existing); err != nil {
			return models.Product{}, ErrNotFound
		}
		oldKey = existing.ImageKey

		key, err := storeUpload(ctx, image, "products")
		if err != nil {
			return models.Product{}, err
		}
		set["image_key"] = key
	}

	result, err := db.GetCollection("products").UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": set})
	if err != nil {
		return models.Product{}, err
	}
	if result.MatchedCount == 0 {
		return models.Product{}, ErrNotFound
	}
	if image != nil {
		deleteObject(ctx, oldKey)
	}
	return GetProduct(ctx, id, false)
}

func DeleteProduct(ctx context.Context, id string) error {
	objID, err := parseID(id)
	if err != nil {
		return err
	}

	var product models.Product
	if err := db.GetCollection("products").FindOne(ctx, bson.M{"_id": objID}).Decode(&product); err != nil {
		return ErrNotFound
	}

	if _, err := db.GetCollection("products").DeleteOne(ctx, bson.M{"_id": objID}); err != nil {
		return err
	}
	return deleteObject(ctx, product.ImageKey)
}

// --- Services ---

func ListServices(ctx context.Context, publicOnly bool) ([]models.Service, error) {
	cursor, err := db.GetCollection("services_catalog").Find(ctx, catalogFilter(publicOnly), catalogSort)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.Service
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	for i := range items {
		items[i].ImageURL = objectURL(items[i].ImageKey)
	}
	return items, nil
}

func GetService(ctx context.Context, id string, countView bool) (models.Service, error) {
	objID, err := parseID(id)
	if err != nil {
		return models.Service{}, err
	}

	collection := db.GetCollection("services_catalog")
	if countView {
		collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$inc": bson.M{"views": 1}})
	}

	var item models.Service
	if err := collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&item); err != nil {
		return models.Service{}, ErrNotFound
	}
	item.ImageURL = objectURL(item.ImageKey)
	return item, nil
}

func CreateService(ctx context.Context, item models.Service, image *multipart.FileHeader) (models.Service, error) {
	if image != nil {
		key, err := storeUpload(ctx, image, "services")
		if err != nil {
			return models.Service{}, err
		}
		item.ImageKey = key
	}

	now := time.Now()
	item.ID = primitive.NewObjectID()
	item.Views = 0
	item.Quotes = 0
	item.CreatedAt = now
	item.UpdatedAt = now

	if _, err := db.GetCollection("services_catalog").InsertOne(ctx, item); err != nil {
		deleteObject(ctx, item.ImageKey)
		return models.Service{}, err
	}
	item.ImageURL = objectURL(item.ImageKey)
	return item, nil
}

func UpdateService(ctx context.Context, id string, item models.Service, image *multipart.FileHeader) (models.Service, error) {
	objID, err := parseID(id)
	if err != nil {
		return models.Service{}, err
	}

	set := bson.M{
		"name":          item.Name,
		"description":   item.Description,
		"category":      item.Category,
		"display_order": item.DisplayOrder,
		"is_active":     item.IsActive,
		"updated_at":    time.Now(),
	}

	var oldKey string
	if image != nil {
		var existing models.Service
		if err := db.GetCollection("services_catalog").FindOne(ctx, bson.M{"_id": objID}).Decode(&existing); err != nil {
			return models.Service{}, ErrNotFound
		}
		oldKey = existing.ImageKey

		key, err := storeUpload(ctx, image, "services")
		if err != nil {
			return models.Service{}, err
		}
		set["image_key"] = key
	}

	result, err := db.GetCollection("services_catalog").UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": set})
	if err != nil {
		return models.Service{}, err
	}
	if result.MatchedCount == 0 {
		return models.Service{}, ErrNotFound
	}
	if image != nil {
		deleteObject(ctx, oldKey)
	}
	return GetService(ctx, id, false)
}

func DeleteService(ctx context.Context, id string) error {
	objID, err := parseID(id)
	if err != nil {
		return err
	}

	var item models.Service
	if err := db.GetCollection("services_catalog").FindOne(ctx, bson.M{"_id": objID}).Decode(&item); err != nil {
		return ErrNotFound
	}

	if _, err := db.GetCollection("services_catalog").DeleteOne(ctx, bson.M{"_id": objID}); err != nil {
		return err
	}
	return deleteObject(ctx, item.ImageKey)
}

// --- Projects ---

func ListProjects(ctx context.Context, publicOnly bool) ([]models.Project, error) {
	cursor, err := db.GetCollection("projects").Find(ctx, catalogFilter(publicOnly), catalogSort)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var projects []models.Project
	if err := cursor.All(ctx, &projects); err != nil {
		return nil, err
	}
	for i := range projects {
		projects[i].ImageURL = objectURL(projects[i].ImageKey)
	}
	return projects, nil
}

func GetProject(ctx context.Context, id string, countView bool) (models.Project, error) {
	objID, err := parseID(id)
	if err != nil {
		return models.Project{}, err
	}

	collection := db.GetCollection("projects")
	if countView {
		collection.UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$inc": bson.M{"views": 1}})
	}

	var project models.Project
	if err := collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&project); err != nil {
		return models.Project{}, ErrNotFound
	}
	project.ImageURL = objectURL(project.ImageKey)
	return project, nil
}

func CreateProject(ctx context.Context, project models.Project, image *multipart.FileHeader) (models.Project, error) {
	if image != nil {
		key, err := storeUpload(ctx, image, "projects")
		if err != nil {
			return models.Project{}, err
		}
		project.ImageKey = key
	}

	now := time.Now()
	project.ID = primitive.NewObjectID()
	project.Views = 0
	project.CreatedAt = now
	project.UpdatedAt = now

	if _, err := db.GetCollection("projects").InsertOne(ctx, project); err != nil {
		deleteObject(ctx, project.ImageKey)
		return models.Project{}, err
	}
	project.ImageURL = objectURL(project.ImageKey)
	return project, nil
}

func UpdateProject(ctx context.Context, id string, project models.Project, image *multipart.FileHeader) (models.Project, error) {
	objID, err := parseID(id)
	if err != nil {
		return models.Project{}, err
	}

	set := bson.M{
		"title":         project.Title,
		"description":   project.Description,
		"category":      project.Category,
		"client":        project.Client,
		"display_order": project.DisplayOrder,
		"featured":      project.Featured,
		"is_active":     project.IsActive,
		"updated_at":    time.Now(),
	}

	var oldKey string
	if image != nil {
		var existing models.Project
		if err := db.GetCollection("projects").FindOne(ctx, bson.M{"_id": objID}).Decode(&existing); err != nil {
			return models.Project{}, ErrNotFound
		}
		oldKey = existing.ImageKey

		key, err := storeUpload(ctx, image, "projects")
		if err != nil {
			return models.Project{}, err
		}
		set["image_key"] = key
	}

	result, err := db.GetCollection("projects").UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": set})
	if err != nil {
		return models.Project{}, err
	}
	if result.MatchedCount == 0 {
		return models.Project{}, ErrNotFound
	}
	if image != nil {
		deleteObject(ctx, oldKey)
	}
	return GetProject(ctx, id, false)
}

func DeleteProject(ctx context.Context, id string) error {
	objID, err := parseID(id)
	if err != nil {
		return err
	}

	var project models.Project
	if err := db.GetCollection("projects").FindOne(ctx, bson.M{"_id": objID}).Decode(&project); err != nil {
		return ErrNotFound
	}

	if _, err := db.GetCollection("projects").DeleteOne(ctx, bson.M{"_id": objID}); err != nil {
		return err
	}
	return deleteObject(ctx, project.ImageKey)
}

// --- Partners ---

func ListPartners(ctx context.Context, publicOnly bool) ([]models.Partner, error) {
	cursor, err := db.GetCollection("partners").Find(ctx, catalogFilter(publicOnly), catalogSort)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var partners []models.Partner
	if err := cursor.All(ctx, &partners); err != nil {
		return nil, err
	}
	for i := range partners {
		partners[i].LogoURL = objectURL(partners[i].LogoKey)
	}
	return partners, nil
}

func GetPartner(ctx context.Context, id string) (models.Partner, error) {
	objID, err := parseID(id)
	if err != nil {
		return models.Partner{}, err
	}

	var partner models.Partner
	if err := db.GetCollection("partners").FindOne(ctx, bson.M{"_id": objID}).Decode(&partner); err != nil {
		return models.Partner{}, ErrNotFound
	}
	partner.LogoURL = objectURL(partner.LogoKey)
	return partner, nil
}

func CreatePartner(ctx context.Context, partner models.Partner, logo *multipart.FileHeader) (models.Partner, error) {
	if logo != nil {
		key, err := storeUpload(ctx, logo, "partners")
		if err != nil {
			return models.Partner{}, err
		}
		partner.LogoKey = key
	}

	now := time.Now()
	partner.ID = primitive.NewObjectID()
	partner.CreatedAt = now
	partner.UpdatedAt = now

	if _, err := db.GetCollection("partners").InsertOne(ctx, partner); err != nil {
		deleteObject(ctx, partner.LogoKey)
		return models.Partner{}, err
	}
	partner.LogoURL = objectURL(partner.LogoKey)
	return partner, nil
}

func UpdatePartner(ctx context.Context, id string, partner models.Partner, logo *multipart.FileHeader) (models.Partner, error) {
	objID, err := parseID(id)
	if err != nil {
		return models.Partner{}, err
	}

	set := bson.M{
		"name":          partner.Name,
		"website":       partner.Website,
		"display_order": partner.DisplayOrder,
		"is_active":     partner.IsActive,
		"updated_at":    time.Now(),
	}

	var oldKey string
	if logo != nil {
		var existing models.Partner
		if err := db.GetCollection("partners").FindOne(ctx, bson.M{"_id": objID}).Decode(&existing); err != nil {
			return models.Partner{}, ErrNotFound
		}
		oldKey = existing.LogoKey

		key, err := storeUpload(ctx, logo, "partners")
		if err != nil {
			return models.Partner{}, err
		}
		set["logo_key"] = key
	}

	result, err := db.GetCollection("partners").UpdateOne(ctx, bson.M{"_id": objID}, bson.M{"$set": set})
	if err != nil {
		return models.Partner{}, err
	}
	if result.MatchedCount == 0 {
		return models.Partner{}, ErrNotFound
	}
	if logo != nil {
		deleteObject(ctx, oldKey)
	}
	return GetPartner(ctx, id)
}

func DeletePartner(ctx context.Context, id string) error {
	objID, err := parseID(id)
	if err != nil {
		return err
	}

	var partner models.Partner
	if err := db.GetCollection("partners").FindOne(ctx, bson.M{"_id": objID}).Decode(&partner); err != nil {
		return ErrNotFound
	}

	if _, err := db.GetCollection("partners").DeleteOne(ctx, bson.M{"_id": objID}); err != nil {
		return err
	}
	return deleteObject(ctx, partner.LogoKey)
}
