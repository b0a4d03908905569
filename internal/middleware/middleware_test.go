package middleware

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
)

const testSecret = "test-secret"

func signToken(t *testing.T, userID, role string) string {
	t.Helper()
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func testApp() *fiber.App {
	Init(testSecret)
	app := fiber.New()
	app.Get("/protected", AuthMiddleware, func(c *fiber.Ctx) error {
		return c.SendString(c.Locals("user_id").(string))
	})
	app.Get("/admin", AdminMiddleware, func(c *fiber.Ctx) error {
		return c.SendString("ok")
	})
	return app
}

func request(t *testing.T, app *fiber.App, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	return resp
}

func TestAuthMiddlewareMissingToken(t *testing.T) {
	resp := request(t, testApp(), "/protected", "")
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	app := testApp()
	resp := request(t, app, "/protected", signToken(t, "user-123", "user"))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if string(body) != "user-123" {
		t.Errorf("user_id in locals = %q", body)
	}
}

func TestAuthMiddlewareBadSignature(t *testing.T) {
	app := testApp()
	claims := jwt.MapClaims{"user_id": "u", "role": "user", "exp": time.Now().Add(time.Hour).Unix()}
	token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("wrong-secret"))

	resp := request(t, app, "/protected", token)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}

func TestAdminMiddlewareRejectsUserRole(t *testing.T) {
	resp := request(t, testApp(), "/admin", signToken(t, "user-123", "user"))
	if resp.StatusCode != http.StatusForbidden {
		t.Fatalf("status = %d, want 403", resp.StatusCode)
	}
}

func TestAdminMiddlewareAllowsAdmin(t *testing.T) {
	resp := request(t, testApp(), "/admin", signToken(t, "admin-1", "admin"))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestAuthMiddlewareExpiredToken(t *testing.T) {
	app := testApp()
	claims := jwt.MapClaims{"user_id": "u", "role": "user", "exp": time.Now().Add(-time.Hour).Unix()}
	token, _ := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))

	resp := request(t, app, "/protected", token)
	if resp.StatusCode != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.StatusCode)
	}
}
