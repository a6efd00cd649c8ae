package handlers

import (
	"errors"
	"log"

	"fintrack/internal/repositories"
	"fintrack/internal/services/attachment"
	"fintrack/internal/services/auth"
	"fintrack/internal/services/ledger"
	"fintrack/internal/services/user"
	"fintrack/internal/services/wallet"
	"fintrack/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// fail maps service errors onto HTTP statuses while keeping the uniform
// envelope. Unexpected errors are logged and hidden behind a generic
// message.
func fail(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, repositories.ErrWalletNotFound),
		errors.Is(err, repositories.ErrTransactionNotFound),
		errors.Is(err, repositories.ErrUserNotFound),
		errors.Is(err, repositories.ErrCategoryNotFound):
		return utils.RespondError(c, fiber.StatusNotFound, err.Error())

	case errors.Is(err, ledger.ErrInvalidDraft),
		errors.Is(err, ledger.ErrInsufficientBalance),
		errors.Is(err, ledger.ErrNegativeBalance),
		errors.Is(err, ledger.ErrUnknownCategory),
		errors.Is(err, wallet.ErrInvalidWallet),
		errors.Is(err, user.ErrInvalidProfile),
		errors.Is(err, attachment.ErrUploadFailed),
		errors.Is(err, auth.ErrInvalidInput),
		errors.Is(err, auth.ErrWeakPassword):
		return utils.RespondError(c, fiber.StatusBadRequest, err.Error())

	case errors.Is(err, auth.ErrInvalidCredentials):
		return utils.RespondError(c, fiber.StatusUnauthorized, err.Error())

	case errors.Is(err, auth.ErrEmailTaken):
		return utils.RespondError(c, fiber.StatusConflict, err.Error())

	default:
		log.Printf("unhandled error: %v", err)
		return utils.RespondError(c, fiber.StatusInternalServerError, "something went wrong")
	}
}
