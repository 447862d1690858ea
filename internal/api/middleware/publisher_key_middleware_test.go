package middleware

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(key string) *fiber.App {
	app := fiber.New()
	app.Post("/callback", NewPublisherKeyMiddleware(key).PublisherKey(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusNoContent)
	})
	return app
}

func TestPublisherKey(t *testing.T) {
	cases := []struct {
		name       string
		configured string
		sent       string
		want       int
	}{
		{"disabled", "", "anything", fiber.StatusForbidden},
		{"missing", "secret", "", fiber.StatusUnauthorized},
		{"wrong", "secret", "guess", fiber.StatusUnauthorized},
		{"valid", "secret", "secret", fiber.StatusNoContent},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/callback", nil)
			if tc.sent != "" {
				req.Header.Set(PublisherKeyHeader, tc.sent)
			}

			resp, err := newApp(tc.configured).Test(req)
			require.NoError(t, err)
			assert.Equal(t, tc.want, resp.StatusCode)
		})
	}
}
