package middleware

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"formadmin/config"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedApp() *fiber.App {
	app := fiber.New()
	app.Get("/protected", JWTMiddleware, func(c *fiber.Ctx) error {
		userId, _ := c.Locals("userId").(uint)
		return JsonResponse(c, fiber.StatusOK, true, "ok", fiber.Map{"user_id": userId})
	})
	return app
}

func TestJWTMiddlewareAcceptsGeneratedToken(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "test-secret"}
	app := newProtectedApp()

	token, err := GenerateJWT(42, "Jeanne Martin", "ADMIN", "jeanne@example.com")
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Status bool `json:"status"`
		Data   struct {
			UserID uint `json:"user_id"`
		} `json:"data"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Status)
	assert.Equal(t, uint(42), body.Data.UserID)
}

func TestJWTMiddlewareRejectsInvalidRequests(t *testing.T) {
	config.AppConfig = &config.Config{JWTKey: "test-secret"}
	app := newProtectedApp()

	foreignToken := func() string {
		config.AppConfig = &config.Config{JWTKey: "another-secret"}
		token, err := GenerateJWT(7, "Mallory", "STUDENT", "mallory@example.com")
		require.NoError(t, err)
		config.AppConfig = &config.Config{JWTKey: "test-secret"}
		return token
	}()

	cases := []struct {
		name   string
		header string
	}{
		{"missing header", ""},
		{"wrong scheme", "Token abc"},
		{"garbage token", "Bearer not-a-jwt"},
		{"wrong signing key", "Bearer " + foreignToken},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/protected", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
		})
	}
}
