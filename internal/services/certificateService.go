package services

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/google/uuid"
	"github.com/saphaniox/sap-technologies.ug-sub002/internal/db"
	"github.com/saphaniox/sap-technologies.ug-sub002/internal/models"
	"github.com/saphaniox/sap-technologies.ug-sub002/internal/storage"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// AwardTitleFor maps a nomination status to the wording printed on the
// certificate.
func AwardTitleFor(status string) string {
	switch status {
	case models.StatusWinner:
		return "Winner"
	case models.StatusFinalist:
		return "Finalist"
	default:
		return "Nominee"
	}
}

// NewCertificateID returns a short, human-quotable certificate ID.
func NewCertificateID() string {
	short := strings.ToUpper(strings.ReplaceAll(uuid.New().String(), "-", "")[:8])
	return "SAPT-AWD-" + short
}

// GenerateCertificate renders the PDF, stores it and records the
// certificate document. It is idempotent per nomination: if a certificate
// file already exists the stored one is returned untouched.
func GenerateCertificate(ctx context.Context, nomination models.Nomination, categoryName string) (models.Certificate, error) {
	certs := db.GetCollection("certificates")

	if nomination.CertificateFile != "" {
		var existing models.Certificate
		err := certs.FindOne(ctx, bson.M{"nomination_id": nomination.ID}).Decode(&existing)
		if err == nil {
			return existing, nil
		}
	}

	cert := models.Certificate{
		ID:            primitive.NewObjectID(),
		CertificateID: NewCertificateID(),
		NominationID:  nomination.ID,
		NomineeName:   nomination.NomineeName,
		CategoryName:  categoryName,
		AwardTitle:    AwardTitleFor(nomination.Status),
		VerifyCount:   0,
		IssuedAt:      time.Now(),
	}
	cert.FileKey = fmt.Sprintf("certificates/%s.pdf", cert.CertificateID)

	pdfBytes, err := RenderCertificatePDF(cert)
	if err != nil {
		return models.Certificate{}, fmt.Errorf("failed to render certificate: %w", err)
	}

	err = storage.Default.Put(ctx, cert.FileKey, bytes.NewReader(pdfBytes), int64(len(pdfBytes)), "application/pdf")
	if err != nil {
		return models.Certificate{}, fmt.Errorf("failed to store certificate: %w", err)
	}

	if _, err := certs.InsertOne(ctx, cert); err != nil {
		storage.Default.Delete(ctx, cert.FileKey)
		return models.Certificate{}, err
	}

	_, err = db.GetCollection("nominations").UpdateOne(ctx,
		bson.M{"_id": nomination.ID},
		bson.M{"$set": bson.M{"certificate_file": cert.FileKey, "updated_at": time.Now()}},
	)
	if err != nil {
		return models.Certificate{}, err
	}
	return cert, nil
}

// RegenerateCertificate discards any existing certificate for the
// nomination and issues a fresh one.
func RegenerateCertificate(ctx context.Context, nominationID string) (models.Certificate, error) {
	nomination, err := GetNomination(ctx, nominationID)
	if err != nil {
		return models.Certificate{}, err
	}

	var category models.AwardCategory
	db.GetCollection("award_categories").FindOne(ctx, bson.M{"_id": nomination.CategoryID}).Decode(&category)

	var existing models.Certificate
	err = db.GetCollection("certificates").FindOne(ctx, bson.M{"nomination_id": nomination.ID}).Decode(&existing)
	if err == nil {
		storage.Default.Delete(ctx, existing.FileKey)
		db.GetCollection("certificates").DeleteOne(ctx, bson.M{"_id": existing.ID})
	}

	nomination.CertificateFile = ""
	return GenerateCertificate(ctx, nomination, category.Name)
}

// VerifyCertificate looks up a certificate by its public ID and bumps the
// verification counter atomically.
func VerifyCertificate(ctx context.Context, certificateID string) (models.Certificate, error) {
	var cert models.Certificate
	err := db.GetCollection("certificates").FindOneAndUpdate(ctx,
		bson.M{"certificate_id": certificateID},
		bson.M{"$inc": bson.M{"verify_count": 1}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&cert)
	if err != nil {
		return models.Certificate{}, ErrNotFound
	}
	return cert, nil
}

// RenderCertificatePDF draws the award certificate. Pure: no storage or
// database access, so it can run anywhere.
func RenderCertificatePDF(cert models.Certificate) ([]byte, error) {
	pdf := fpdf.New("L", "mm", "A4", "")
	pdf.SetTitle("Award Certificate "+cert.CertificateID, false)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()

	// Border
	pdf.SetLineWidth(1.2)
	pdf.SetDrawColor(184, 134, 11)
	pdf.Rect(8, 8, pageW-16, pageH-16, "D")
	pdf.SetLineWidth(0.3)
	pdf.Rect(11, 11, pageW-22, pageH-22, "D")

	pdf.SetY(30)
	pdf.SetFont("Helvetica", "B", 30)
	pdf.SetTextColor(30, 30, 60)
	pdf.CellFormat(0, 14, "CERTIFICATE OF ACHIEVEMENT", "", 1, "C", false, 0, "")

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 14)
	pdf.SetTextColor(80, 80, 80)
	pdf.CellFormat(0, 8, "This certificate is proudly presented to", "", 1, "C", false, 0, "")

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 26)
	pdf.SetTextColor(184, 134, 11)
	pdf.CellFormat(0, 12, cert.NomineeName, "", 1, "C", false, 0, "")

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "", 14)
	pdf.SetTextColor(80, 80, 80)
	pdf.CellFormat(0, 8, fmt.Sprintf("%s - %s", cert.AwardTitle, cert.CategoryName), "", 1, "C", false, 0, "")

	pdf.Ln(14)
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(0, 6, fmt.Sprintf("Certificate ID: %s", cert.CertificateID), "", 1, "C", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Issued: %s", cert.IssuedAt.Format("2 January 2006")), "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
