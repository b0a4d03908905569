package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func doRequest(t *testing.T, app *fiber.App, req *http.Request) (*http.Response, map[string]interface{}) {
	t.Helper()
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	var envelope map[string]interface{}
	json.Unmarshal(body, &envelope)
	return resp, envelope
}

func TestRegisterRejectsInvalidEmail(t *testing.T) {
	app := fiber.New()
	app.Post("/api/auth/register", RegisterHandler)

	payload, _ := json.Marshal(map[string]string{
		"email":    "not-an-email",
		"password": "password123",
		"name":     "Jane",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, envelope := doRequest(t, app, req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	if envelope["status"] != "error" {
		t.Errorf("envelope status = %v, want error", envelope["status"])
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	app := fiber.New()
	app.Post("/api/auth/register", RegisterHandler)

	payload, _ := json.Marshal(map[string]string{
		"email":    "jane@example.com",
		"password": "short",
		"name":     "Jane",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, _ := doRequest(t, app, req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestVoteRejectsMissingFields(t *testing.T) {
	app := fiber.New()
	app.Post("/api/awards/nominations/:id/vote", VoteHandler)

	payload, _ := json.Marshal(map[string]string{"voter_name": "Jane"})
	req := httptest.NewRequest(http.MethodPost, "/api/awards/nominations/abc/vote", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, envelope := doRequest(t, app, req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	msg, _ := envelope["message"].(string)
	if !strings.Contains(msg, "VoterEmail") {
		t.Errorf("message should name the missing field, got %q", msg)
	}
}

func TestCreateNominationRequiresPhoto(t *testing.T) {
	app := fiber.New()
	app.Post("/api/awards/nominations", CreateNominationHandler)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	w.WriteField("nominee_name", "Jane Doe")
	w.WriteField("category_id", "64a000000000000000000001")
	w.WriteField("nominator_name", "John Smith")
	w.WriteField("nominator_email", "john@example.com")
	w.WriteField("reason", "An outstanding contribution to regional technology education.")
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/awards/nominations", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, envelope := doRequest(t, app, req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
	msg, _ := envelope["message"].(string)
	if !strings.Contains(strings.ToLower(msg), "photo") {
		t.Errorf("message should mention the missing photo, got %q", msg)
	}
}

func TestCreateNominationRejectsShortReason(t *testing.T) {
	app := fiber.New()
	app.Post("/api/awards/nominations", CreateNominationHandler)

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	w.WriteField("nominee_name", "Jane Doe")
	w.WriteField("category_id", "64a000000000000000000001")
	w.WriteField("nominator_name", "John Smith")
	w.WriteField("nominator_email", "john@example.com")
	w.WriteField("reason", "too short")
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/awards/nominations", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, _ := doRequest(t, app, req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestSubscribeRejectsInvalidEmail(t *testing.T) {
	app := fiber.New()
	app.Post("/api/newsletter/subscribe", SubscribeHandler)

	payload, _ := json.Marshal(map[string]string{"email": "nope"})
	req := httptest.NewRequest(http.MethodPost, "/api/newsletter/subscribe", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, _ := doRequest(t, app, req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}

func TestAdminListLeadsRejectsUnknownKind(t *testing.T) {
	app := fiber.New()
	app.Get("/api/admin/leads/:kind", AdminListLeadsHandler)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/leads/bogus", nil)
	resp, _ := doRequest(t, app, req)
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
}

func TestUpdateNominationStatusRejectsUnknownStatus(t *testing.T) {
	app := fiber.New()
	app.Patch("/api/admin/nominations/:id/status", UpdateNominationStatusHandler)

	payload, _ := json.Marshal(map[string]string{"status": "superstar"})
	req := httptest.NewRequest(http.MethodPatch, "/api/admin/nominations/abc/status", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, _ := doRequest(t, app, req)
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", resp.StatusCode)
	}
}
