package handlers

import (
	"fintrack/internal/services/ledger"
	"fintrack/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type TransactionHandler struct {
	svc ledger.Service
}

func NewTransactionHandler(svc ledger.Service) *TransactionHandler {
	return &TransactionHandler{svc: svc}
}

func (h *TransactionHandler) List(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.RespondError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	limit := c.QueryInt("limit", 50)
	offset := c.QueryInt("offset", 0)

	txs, err := h.svc.List(c.Context(), claims.UserID, limit, offset)
	if err != nil {
		return fail(c, err)
	}
	return utils.RespondOK(c, fiber.StatusOK, "transactions retrieved", txs)
}

func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.RespondError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var draft ledger.TransactionDraft
	if err := c.BodyParser(&draft); err != nil {
		return utils.RespondError(c, fiber.StatusBadRequest, "invalid request body")
	}

	tx, err := h.svc.Create(c.Context(), claims.UserID, draft)
	if err != nil {
		return fail(c, err)
	}
	return utils.RespondOK(c, fiber.StatusCreated, "transaction created", tx)
}

func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.RespondError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.RespondError(c, fiber.StatusBadRequest, "invalid transaction id")
	}

	var draft ledger.TransactionDraft
	if err := c.BodyParser(&draft); err != nil {
		return utils.RespondError(c, fiber.StatusBadRequest, "invalid request body")
	}

	tx, err := h.svc.Update(c.Context(), claims.UserID, uint(id), draft)
	if err != nil {
		return fail(c, err)
	}
	return utils.RespondOK(c, fiber.StatusOK, "transaction updated", tx)
}

func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.RespondError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.RespondError(c, fiber.StatusBadRequest, "invalid transaction id")
	}

	if err := h.svc.Delete(c.Context(), claims.UserID, uint(id)); err != nil {
		return fail(c, err)
	}
	return utils.RespondOK(c, fiber.StatusOK, "transaction deleted", nil)
}
