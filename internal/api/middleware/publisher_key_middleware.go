package middleware

import (
	"crypto/subtle"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

const PublisherKeyHeader = "X-Publisher-Key"

type PublisherKeyMiddleware struct {
	key string
}

func NewPublisherKeyMiddleware(key string) *PublisherKeyMiddleware {
	return &PublisherKeyMiddleware{key: key}
}

// PublisherKey guards the routes an external publisher calls back into. With
// no key configured those routes are closed.
func (m *PublisherKeyMiddleware) PublisherKey() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if m.key == "" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Publisher callbacks are disabled",
			})
		}

		apiKey := c.Get(PublisherKeyHeader)
		if apiKey == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Missing publisher key",
			})
		}

		if subtle.ConstantTimeCompare([]byte(apiKey), []byte(m.key)) != 1 {
			logrus.WithField("ip", c.IP()).Warn("rejected publisher key")
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Invalid publisher key",
			})
		}

		return c.Next()
	}
}
