package services

import (
	"context"
	"fmt"
	"time"

	"github.com/saphaniox/sap-technologies.ug-sub002/internal/db"
	"github.com/saphaniox/sap-technologies.ug-sub002/internal/models"
	"github.com/saphaniox/sap-technologies.ug-sub002/internal/notifier"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var leadSort = options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})

func validLeadStatus(status string) bool {
	switch status {
	case models.LeadStatusNew, models.LeadStatusContacted, models.LeadStatusResolved, models.LeadStatusClosed:
		return true
	}
	return false
}

// CreateContact stores a contact-form submission and alerts the admin.
func CreateContact(ctx context.Context, contact models.Contact) (models.Contact, error) {
	now := time.Now()
	contact.ID = primitive.NewObjectID()
	contact.Email = NormalizeEmail(contact.Email)
	contact.Status = models.LeadStatusNew
	contact.CreatedAt = now
	contact.UpdatedAt = now

	if _, err := db.GetCollection("contacts").InsertOne(ctx, contact); err != nil {
		return models.Contact{}, err
	}

	notifier.Dispatch(notifier.Message{
		Channel:   models.ChannelEmail,
		Recipient: notifier.AdminEmail(),
		Subject:   "New contact message: " + contact.Subject,
		Body: fmt.Sprintf("<p>From %s (%s)</p><p>%s</p>",
			contact.Name, contact.Email, contact.Message),
		RefID: contact.ID.Hex(),
	})
	notifier.Dispatch(notifier.Message{
		Channel:   models.ChannelSMS,
		Recipient: notifier.AdminPhone(),
		Body:      fmt.Sprintf("New contact message from %s: %s", contact.Name, contact.Subject),
		RefID:     contact.ID.Hex(),
	})
	return contact, nil
}

// CreateProductInquiry records an inquiry and bumps the product counter.
func CreateProductInquiry(ctx context.Context, inquiry models.ProductInquiry) (models.ProductInquiry, error) {
	var product models.Product
	err := db.GetCollection("products").FindOne(ctx, bson.M{"_id": inquiry.ProductID}).Decode(&product)
	if err != nil {
		return models.ProductInquiry{}, ErrNotFound
	}

	now := time.Now()
	inquiry.ID = primitive.NewObjectID()
	inquiry.Email = NormalizeEmail(inquiry.Email)
	inquiry.Status = models.LeadStatusNew
	inquiry.CreatedAt = now
	inquiry.UpdatedAt = now

	if _, err := db.GetCollection("product_inquiries").InsertOne(ctx, inquiry); err != nil {
		return models.ProductInquiry{}, err
	}

	db.GetCollection("products").UpdateOne(ctx,
		bson.M{"_id": inquiry.ProductID}, bson.M{"$inc": bson.M{"inquiries": 1}})

	notifier.Dispatch(notifier.Message{
		Channel:   models.ChannelEmail,
		Recipient: notifier.AdminEmail(),
		Subject:   "New product inquiry: " + product.Name,
		Body: fmt.Sprintf("<p>From %s (%s)</p><p>%s</p>",
			inquiry.Name, inquiry.Email, inquiry.Message),
		RefID: inquiry.ID.Hex(),
	})
	return inquiry, nil
}

// CreateServiceQuote records a quote request and bumps the service counter.
func CreateServiceQuote(ctx context.Context, quote models.ServiceQuote) (models.ServiceQuote, error) {
	var service models.Service
	err := db.GetCollection("services_catalog").FindOne(ctx, bson.M{"_id": quote.ServiceID}).Decode(&service)
	if err != nil {
		return models.ServiceQuote{}, ErrNotFound
	}

	now := time.Now()
	quote.ID = primitive.NewObjectID()
	quote.Email = NormalizeEmail(quote.Email)
	quote.Status = models.LeadStatusNew
	quote.CreatedAt = now
	quote.UpdatedAt = now

	if _, err := db.GetCollection("service_quotes").InsertOne(ctx, quote); err != nil {
		return models.ServiceQuote{}, err
	}

	db.GetCollection("services_catalog").UpdateOne(ctx,
		bson.M{"_id": quote.ServiceID}, bson.M{"$inc": bson.M{"quotes": 1}})

	notifier.Dispatch(notifier.Message{
		Channel:   models.ChannelEmail,
		Recipient: notifier.AdminEmail(),
		Subject:   "New quote request: " + service.Name,
		Body: fmt.Sprintf("<p>From %s (%s)</p><p>%s</p>",
			quote.Name, quote.Email, quote.Details),
		RefID: quote.ID.Hex(),
	})
	return quote, nil
}

// CreatePartnershipRequest records a partnership proposal.
func CreatePartnershipRequest(ctx context.Context, request models.PartnershipRequest) (models.PartnershipRequest, error) {
	now := time.Now()
	request.ID = primitive.NewObjectID()
	request.Email = NormalizeEmail(request.Email)
	request.Status = models.LeadStatusNew
	request.CreatedAt = now
	request.UpdatedAt = now

	if _, err := db.GetCollection("partnership_requests").InsertOne(ctx, request); err != nil {
		return models.PartnershipRequest{}, err
	}

	notifier.Dispatch(notifier.Message{
		Channel:   models.ChannelEmail,
		Recipient: notifier.AdminEmail(),
		Subject:   "New partnership request: " + request.Company,
		Body: fmt.Sprintf("<p>From %s at %s (%s)</p><p>%s</p>",
			request.ContactName, request.Company, request.Email, request.Proposal),
		RefID: request.ID.Hex(),
	})
	return request, nil
}

// Subscribe adds a newsletter subscriber, reactivating a previously
// unsubscribed address.
func Subscribe(ctx context.Context, email string) (models.NewsletterSubscriber, error) {
	email = NormalizeEmail(email)
	collection := db.GetCollection("newsletter")

	var existing models.NewsletterSubscriber
	err := collection.FindOne(ctx, bson.M{"email": email}).Decode(&existing)
	if err == nil {
		if existing.Subscribed {
			return models.NewsletterSubscriber{}, ErrAlreadySubscribed
		}
		_, err = collection.UpdateOne(ctx, bson.M{"_id": existing.ID},
			bson.M{"$set": bson.M{"subscribed": true, "subscribed_at": time.Now()}})
		if err != nil {
			return models.NewsletterSubscriber{}, err
		}
		existing.Subscribed = true
		return existing, nil
	}

	subscriber := models.NewsletterSubscriber{
		ID:           primitive.NewObjectID(),
		Email:        email,
		Subscribed:   true,
		SubscribedAt: time.Now(),
	}
	if _, err := collection.InsertOne(ctx, subscriber); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.NewsletterSubscriber{}, ErrAlreadySubscribed
		}
		return models.NewsletterSubscriber{}, err
	}
	return subscriber, nil
}

// Unsubscribe keeps the document, flipping the flag.
func Unsubscribe(ctx context.Context, email string) error {
	result, err := db.GetCollection("newsletter").UpdateOne(ctx,
		bson.M{"email": NormalizeEmail(email)},
		bson.M{"$set": bson.M{"subscribed": false, "unsubscribed_at": time.Now()}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// ListLeads returns documents of one lead collection, newest first.
func ListLeads(ctx context.Context, collection string) ([]bson.M, error) {
	cursor, err := db.GetCollection(collection).Find(ctx, bson.M{}, leadSort)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var leads []bson.M
	if err := cursor.All(ctx, &leads); err != nil {
		return nil, err
	}
	return leads, nil
}

// UpdateLeadStatus moves a lead along new -> contacted -> resolved|closed.
func UpdateLeadStatus(ctx context.Context, collection, id, status string) error {
	if !validLeadStatus(status) {
		return ErrInvalidTransition
	}
	objID, err := parseID(id)
	if err != nil {
		return err
	}

	result, err := db.GetCollection(collection).UpdateOne(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"status": status, "updated_at": time.Now()}})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
