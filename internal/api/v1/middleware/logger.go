// Package middleware provides fiber middleware for the quoting API.
package middleware

import (
	"time"

	fiber "github.com/gofiber/fiber/v2"

	log "github.com/fabforge/fabquote/internal/logger"
)

// Logger returns a middleware that logs every completed API request with its
// route, status and latency. The timestamp comes from the JSON formatter.
func Logger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		log.InfoWithFields("API request", map[string]interface{}{
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     c.Response().StatusCode(),
			"latency_ms": time.Since(start).Milliseconds(),
			"ip":         c.IP(),
		})

		return err
	}
}
