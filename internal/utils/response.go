package utils

import (
	"fintrack/internal/models"

	"github.com/gofiber/fiber/v2"
)

// RespondOK writes the uniform success envelope.
func RespondOK(c *fiber.Ctx, status int, msg string, data interface{}) error {
	return c.Status(status).JSON(models.OK(msg, data))
}

// RespondError writes the uniform failure envelope. Every error path uses
// it so clients can always rely on {success, msg}.
func RespondError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(models.Fail(msg))
}
