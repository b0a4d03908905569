package services

import (
	"context"
	"testing"

	"github.com/saphaniox/sap-technologies.ug-sub002/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestGenerateCertificateIdempotent(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("existing certificate is returned untouched", func(mt *mtest.T) {
		defer useMockDB(mt)()
		nomID := primitive.NewObjectID()
		nomination := models.Nomination{
			ID:              nomID,
			NomineeName:     "Jane Doe",
			Status:          models.StatusWinner,
			CertificateFile: "certificates/SAPT-AWD-AAAA1111.pdf",
		}
		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, "sap.certificates", mtest.FirstBatch, bson.D{
				{Key: "_id", Value: primitive.NewObjectID()},
				{Key: "certificate_id", Value: "SAPT-AWD-AAAA1111"},
				{Key: "nomination_id", Value: nomID},
				{Key: "nominee_name", Value: "Jane Doe"},
				{Key: "award_title", Value: "Winner"},
				{Key: "file_key", Value: "certificates/SAPT-AWD-AAAA1111.pdf"},
			}),
		)

		cert, err := GenerateCertificate(context.Background(), nomination, "Innovation")
		if err != nil {
			mt.Fatalf("GenerateCertificate: %v", err)
		}
		if cert.CertificateID != "SAPT-AWD-AAAA1111" {
			mt.Errorf("certificate id = %q, want the stored one", cert.CertificateID)
		}
		if cert.FileKey != nomination.CertificateFile {
			mt.Errorf("file key = %q, want %q", cert.FileKey, nomination.CertificateFile)
		}

		for {
			evt := mt.GetStartedEvent()
			if evt == nil {
				break
			}
			if evt.CommandName == "insert" {
				mt.Error("idempotent path must not insert a second certificate")
			}
		}
	})
}
