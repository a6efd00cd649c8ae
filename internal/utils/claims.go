package utils

import (
	"errors"

	"fintrack/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetUserClaims pulls the claims the auth middleware stashed on the request.
func GetUserClaims(c *fiber.Ctx) (*models.UserClaims, error) {
	claims, ok := c.Locals("claims").(*models.UserClaims)
	if !ok || claims == nil {
		return nil, errors.New("no authenticated user on request")
	}
	return claims, nil
}
