package middleware

import (
	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"
)

// Recover turns a handler panic into a 500 response instead of dropping the
// connection, and reports it to sentry when a DSN is configured.
func Recover() fiber.Handler {
	return func(c *fiber.Ctx) (err error) {
		defer func() {
			if r := recover(); r != nil {
				sentry.CurrentHub().Recover(r)
				err = c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"message": "Internal Server Error",
				})
			}
		}()
		return c.Next()
	}
}
