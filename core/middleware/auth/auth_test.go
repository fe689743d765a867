package auth_test

import (
	"net/http/httptest"
	"testing"

	"collection-manager/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(cfg auth.Config) *fiber.App {
	app := fiber.New()
	app.Use(auth.New(cfg))
	app.Get("/cards/x", func(c *fiber.Ctx) error { return c.SendString("ok") })
	app.Get("/health", func(c *fiber.Ctx) error { return c.SendString("ok") })
	return app
}

func TestAuth(t *testing.T) {
	app := newApp(auth.Config{ApiKey: "secret", Skip: []string{"/health"}})

	tests := []struct {
		name   string
		path   string
		header string
		value  string
		want   int
	}{
		{"Missing Key", "/cards/x", "", "", fiber.StatusUnauthorized},
		{"Wrong Key", "/cards/x", auth.HeaderName, "nope", fiber.StatusUnauthorized},
		{"Header Key", "/cards/x", auth.HeaderName, "secret", fiber.StatusOK},
		{"Bearer Key", "/cards/x", fiber.HeaderAuthorization, "Bearer secret", fiber.StatusOK},
		{"Skipped Path", "/health", "", "", fiber.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", tt.path, nil)
			if tt.header != "" {
				req.Header.Set(tt.header, tt.value)
			}
			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.StatusCode)
		})
	}
}

func TestAuth_Disabled(t *testing.T) {
	resp, err := newApp(auth.Config{}).Test(httptest.NewRequest("GET", "/cards/x", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
