package handlers_test

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"github.com/RayanAlrsheed/GraduationProject/routes"
)

func testApp() *fiber.App {
	app := fiber.New()
	routes.SetupRoutes(app)
	return app
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	app := testApp()

	paths := []struct {
		method string
		path   string
	}{
		{"GET", "/api/v1/menu/"},
		{"GET", "/api/v1/sales/?date=2026-04-15"},
		{"GET", "/api/v1/dashboard/summary"},
		{"POST", "/api/v1/forecast/run"},
		{"GET", "/api/v1/admin/charities"},
	}
	for _, p := range paths {
		req := httptest.NewRequest(p.method, p.path, nil)
		resp, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "%s %s", p.method, p.path)
	}
}

func TestRegisterRejectsIncompleteForm(t *testing.T) {
	app := testApp()

	body := `{"email": "test@test.com", "password": "11111111"}`
	req := httptest.NewRequest("POST", "/api/v1/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRegisterRejectsPasswordMismatch(t *testing.T) {
	app := testApp()

	body := `{
		"firstName": "test", "lastName": "test", "email": "test@test.com",
		"password": "11111111", "password2": "11111112",
		"phone": "0512345678", "location": "Riyadh"
	}`
	req := httptest.NewRequest("POST", "/api/v1/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestRegisterRejectsBadPhone(t *testing.T) {
	app := testApp()

	body := `{
		"firstName": "test", "lastName": "test", "email": "test@test.com",
		"password": "11111111", "password2": "11111111",
		"phone": "1234567890", "location": "Riyadh"
	}`
	req := httptest.NewRequest("POST", "/api/v1/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLoginRejectsEmptyCredentials(t *testing.T) {
	app := testApp()

	req := httptest.NewRequest("POST", "/api/v1/auth/login", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
