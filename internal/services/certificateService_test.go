package services

import (
	"bytes"
	"regexp"
	"testing"
	"time"

	"github.com/saphaniox/sap-technologies.ug-sub002/internal/models"
)

var certIDPattern = regexp.MustCompile(`^SAPT-AWD-[0-9A-F]{8}$`)

func TestNewCertificateID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewCertificateID()
		if !certIDPattern.MatchString(id) {
			t.Fatalf("certificate ID %q does not match %s", id, certIDPattern)
		}
		if seen[id] {
			t.Fatalf("duplicate certificate ID generated: %s", id)
		}
		seen[id] = true
	}
}

func TestRenderCertificatePDF(t *testing.T) {
	cert := models.Certificate{
		CertificateID: "SAPT-AWD-DEADBEEF",
		NomineeName:   "Jane Doe",
		CategoryName:  "Innovation",
		AwardTitle:    "Winner",
		IssuedAt:      time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	pdfBytes, err := RenderCertificatePDF(cert)
	if err != nil {
		t.Fatalf("RenderCertificatePDF: %v", err)
	}
	if len(pdfBytes) == 0 {
		t.Fatal("rendered PDF is empty")
	}
	if !bytes.HasPrefix(pdfBytes, []byte("%PDF")) {
		t.Fatalf("output does not look like a PDF: %q", pdfBytes[:8])
	}
}
