package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Nomination statuses. There are no terminal states: an admin can always
// reset a nomination back to pending.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
	StatusWinner   = "winner"
	StatusFinalist = "finalist"
)

type AwardCategory struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Name        string             `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Description string             `bson:"description" json:"description"`
	Icon        string             `bson:"icon,omitempty" json:"icon,omitempty"`
	IsActive    bool               `bson:"is_active" json:"is_active"`
	CreatedAt   time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updated_at"`
}

type Nomination struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	NomineeName    string             `bson:"nominee_name" json:"nominee_name"`
	NomineeEmail   string             `bson:"nominee_email,omitempty" json:"nominee_email,omitempty"`
	NomineePhone   string             `bson:"nominee_phone,omitempty" json:"nominee_phone,omitempty"`
	NomineeCompany string             `bson:"nominee_company,omitempty" json:"nominee_company,omitempty"`
	NomineeCountry string             `bson:"nominee_country,omitempty" json:"nominee_country,omitempty"`
	PhotoKey       string             `bson:"photo_key" json:"photo_key"`
	PhotoURL       string             `bson:"-" json:"photo_url,omitempty"`
	CategoryID     primitive.ObjectID `bson:"category_id" json:"category_id"`
	NominatorName  string             `bson:"nominator_name" json:"nominator_name"`
	NominatorEmail string             `bson:"nominator_email" json:"nominator_email"`
	Reason         string             `bson:"reason" json:"reason"`
	Status         string             `bson:"status" json:"status"`
	// Votes mirrors the number of ledger entries in the votes collection.
	Votes           int64     `bson:"votes" json:"votes"`
	CertificateFile string    `bson:"certificate_file,omitempty" json:"certificate_file,omitempty"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
}

// Vote is one row in the vote ledger. The (nomination_id, voter_email)
// pair carries a unique index; voter_email is stored normalized.
type Vote struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	NominationID primitive.ObjectID `bson:"nomination_id" json:"nomination_id"`
	VoterEmail   string             `bson:"voter_email" json:"voter_email"`
	VoterName    string             `bson:"voter_name" json:"voter_name"`
	IPAddress    string             `bson:"ip_address,omitempty" json:"-"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
}

type Certificate struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	CertificateID string             `bson:"certificate_id" json:"certificate_id"`
	NominationID  primitive.ObjectID `bson:"nomination_id" json:"nomination_id"`
	NomineeName   string             `bson:"nominee_name" json:"nominee_name"`
	CategoryName  string             `bson:"category_name" json:"category_name"`
	AwardTitle    string             `bson:"award_title" json:"award_title"`
	FileKey       string             `bson:"file_key" json:"file_key"`
	VerifyCount   int64              `bson:"verify_count" json:"verify_count"`
	IssuedAt      time.Time          `bson:"issued_at" json:"issued_at"`
}
