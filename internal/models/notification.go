package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ChannelEmail    = "email"
	ChannelSMS      = "sms"
	ChannelWhatsApp = "whatsapp"

	NotificationSent   = "sent"
	NotificationFailed = "failed"
)

// NotificationRecord is the durable outcome of one dispatch attempt.
// Sends are still fire-and-forget, but admins can audit failures.
type NotificationRecord struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Channel   string             `bson:"channel" json:"channel"`
	Recipient string             `bson:"recipient" json:"recipient"`
	Subject   string             `bson:"subject" json:"subject"`
	RefID     string             `bson:"ref_id,omitempty" json:"ref_id,omitempty"`
	Status    string             `bson:"status" json:"status"`
	Error     string             `bson:"error,omitempty" json:"error,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
