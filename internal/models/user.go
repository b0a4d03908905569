package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email        string             `bson:"email" json:"email" validate:"required,email"`
	Password     string             `bson:"password,omitempty" json:"-"`
	Name         string             `bson:"name" json:"name"`
	Role         string             `bson:"role" json:"role"` // "user" or "admin"
	IsActive     bool               `bson:"is_active" json:"is_active"`
	FailedLogins int                `bson:"failed_logins" json:"-"`
	LockedUntil  time.Time          `bson:"locked_until,omitempty" json:"-"`
	LastLogin    time.Time          `bson:"last_login,omitempty" json:"last_login,omitempty"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}
