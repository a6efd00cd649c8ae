package middleware

import (
	"strings"

	"fintrack/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// Protected rejects requests without a valid bearer token and stashes the
// parsed claims on the request context.
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		header := c.Get("Authorization")
		if header == "" {
			return utils.RespondError(c, fiber.StatusUnauthorized, "missing authorization header")
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return utils.RespondError(c, fiber.StatusUnauthorized, "malformed authorization header")
		}

		claims, err := utils.ParseToken(parts[1])
		if err != nil {
			return utils.RespondError(c, fiber.StatusUnauthorized, "invalid or expired token")
		}

		c.Locals("claims", claims)
		return c.Next()
	}
}
