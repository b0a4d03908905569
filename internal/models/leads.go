package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Lead statuses shared by contacts, inquiries, quotes and partnership
// requests: new -> contacted -> resolved|closed.
const (
	LeadStatusNew       = "new"
	LeadStatusContacted = "contacted"
	LeadStatusResolved  = "resolved"
	LeadStatusClosed    = "closed"
)

type Contact struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name      string             `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Email     string             `bson:"email" json:"email" validate:"required,email"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Subject   string             `bson:"subject" json:"subject" validate:"required,min=2,max=200"`
	Message   string             `bson:"message" json:"message" validate:"required,min=10,max=5000"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

type ProductInquiry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ProductID primitive.ObjectID `bson:"product_id" json:"product_id"`
	Name      string             `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Email     string             `bson:"email" json:"email" validate:"required,email"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Message   string             `bson:"message" json:"message" validate:"required,min=5,max=5000"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

type ServiceQuote struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	ServiceID primitive.ObjectID `bson:"service_id" json:"service_id"`
	Name      string             `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Email     string             `bson:"email" json:"email" validate:"required,email"`
	Company   string             `bson:"company,omitempty" json:"company,omitempty"`
	Details   string             `bson:"details" json:"details" validate:"required,min=10,max=5000"`
	Budget    string             `bson:"budget,omitempty" json:"budget,omitempty"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

type PartnershipRequest struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Company     string             `bson:"company" json:"company" validate:"required,min=2,max=150"`
	ContactName string             `bson:"contact_name" json:"contact_name" validate:"required,min=2,max=100"`
	Email       string             `bson:"email" json:"email" validate:"required,email"`
	Phone       string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Proposal    string             `bson:"proposal" json:"proposal" validate:"required,min=10,max=5000"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

type NewsletterSubscriber struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email          string             `bson:"email" json:"email" validate:"required,email"`
	Subscribed     bool               `bson:"subscribed" json:"subscribed"`
	SubscribedAt   time.Time          `bson:"subscribed_at" json:"subscribed_at"`
	UnsubscribedAt time.Time          `bson:"unsubscribed_at,omitempty" json:"unsubscribed_at,omitempty"`
}
