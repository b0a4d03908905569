package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name         string             `bson:"name" json:"name" validate:"required,min=2,max=120"`
	Description  string             `bson:"description" json:"description"`
	Category     string             `bson:"category" json:"category"`
	ImageKey     string             `bson:"image_key,omitempty" json:"image_key,omitempty"`
	ImageURL     string             `bson:"-" json:"image_url,omitempty"`
	DisplayOrder int                `bson:"display_order" json:"display_order"`
	Featured     bool               `bson:"featured" json:"featured"`
	IsActive     bool               `bson:"is_active" json:"is_active"`
	Views        int64              `bson:"views" json:"views"`
	Inquiries    int64              `bson:"inquiries" json:"inquiries"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

type Service struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name         string             `bson:"name" json:"name" validate:"required,min=2,max=120"`
	Description  string             `bson:"description" json:"description"`
	Category     string             `bson:"category" json:"category"`
	ImageKey     string             `bson:"image_key,omitempty" json:"image_key,omitempty"`
	ImageURL     string             `bson:"-" json:"image_url,omitempty"`
	DisplayOrder int                `bson:"display_order" json:"display_order"`
	IsActive     bool               `bson:"is_active" json:"is_active"`
	Views        int64              `bson:"views" json:"views"`
	Quotes       int64              `bson:"quotes" json:"quotes"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

type Project struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title        string             `bson:"title" json:"title" validate:"required,min=2,max=160"`
	Description  string             `bson:"description" json:"description"`
	Category     string             `bson:"category" json:"category"`
	Client       string             `bson:"client,omitempty" json:"client,omitempty"`
	ImageKey     string             `bson:"image_key,omitempty" json:"image_key,omitempty"`
	ImageURL     string             `bson:"-" json:"image_url,omitempty"`
	DisplayOrder int                `bson:"display_order" json:"display_order"`
	Featured     bool               `bson:"featured" json:"featured"`
	IsActive     bool               `bson:"is_active" json:"is_active"`
	Views        int64              `bson:"views" json:"views"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

type Partner struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name         string             `bson:"name" json:"name" validate:"required,min=2,max=120"`
	Website      string             `bson:"website,omitempty" json:"website,omitempty" validate:"omitempty,url"`
	LogoKey      string             `bson:"logo_key,omitempty" json:"logo_key,omitempty"`
	LogoURL      string             `bson:"-" json:"logo_url,omitempty"`
	DisplayOrder int                `bson:"display_order" json:"display_order"`
	IsActive     bool               `bson:"is_active" json:"is_active"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}
