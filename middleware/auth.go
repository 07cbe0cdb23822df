package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"pluggedin/store"
	"pluggedin/utils"
)

// Protected verifies the bearer session token. A missing Authorization header
// is a 401; a malformed or unverifiable token is a 403. The decoded profile
// claims are placed in the request locals for downstream handlers.
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Unauthorized Access",
			})
		}

		tokenParts := strings.Split(authHeader, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Forbidden Access",
			})
		}

		claims, err := utils.ParseSessionToken(tokenParts[1])
		if err != nil {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Forbidden Access",
			})
		}

		c.Locals("claims", claims)
		c.Locals("email", claims.Email)

		return c.Next()
	}
}

// RequireAdmin gates a route on the caller's stored role, not the role baked
// into the token, so a demoted admin loses access immediately. Must run after
// Protected.
func RequireAdmin(users *store.UserStore) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := c.Locals("claims").(*utils.Claims)
		if !ok {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Forbidden Access",
			})
		}

		user, err := users.GetByEmail(claims.Email)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"message": "Internal Server Error",
			})
		}
		if user == nil || !user.IsAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"message": "Forbidden Access",
			})
		}

		return c.Next()
	}
}
