package handlers

import (
	"fintrack/internal/services/wallet"
	"fintrack/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type WalletHandler struct {
	svc wallet.Service
}

func NewWalletHandler(svc wallet.Service) *WalletHandler {
	return &WalletHandler{svc: svc}
}

func (h *WalletHandler) List(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.RespondError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	wallets, err := h.svc.List(c.Context(), claims.UserID)
	if err != nil {
		return fail(c, err)
	}
	return utils.RespondOK(c, fiber.StatusOK, "wallets retrieved", wallets)
}

func (h *WalletHandler) Get(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.RespondError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.RespondError(c, fiber.StatusBadRequest, "invalid wallet id")
	}

	w, err := h.svc.Get(c.Context(), claims.UserID, uint(id))
	if err != nil {
		return fail(c, err)
	}
	return utils.RespondOK(c, fiber.StatusOK, "wallet retrieved", w)
}

func (h *WalletHandler) Create(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.RespondError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var draft wallet.WalletDraft
	if err := c.BodyParser(&draft); err != nil {
		return utils.RespondError(c, fiber.StatusBadRequest, "invalid request body")
	}

	w, err := h.svc.Upsert(c.Context(), claims.UserID, 0, draft)
	if err != nil {
		return fail(c, err)
	}
	return utils.RespondOK(c, fiber.StatusCreated, "wallet created", w)
}

func (h *WalletHandler) Update(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.RespondError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.RespondError(c, fiber.StatusBadRequest, "invalid wallet id")
	}

	var draft wallet.WalletDraft
	if err := c.BodyParser(&draft); err != nil {
		return utils.RespondError(c, fiber.StatusBadRequest, "invalid request body")
	}

	w, err := h.svc.Upsert(c.Context(), claims.UserID, uint(id), draft)
	if err != nil {
		return fail(c, err)
	}
	return utils.RespondOK(c, fiber.StatusOK, "wallet updated", w)
}

func (h *WalletHandler) Delete(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.RespondError(c, fiber.StatusUnauthorized, "unauthorized")
	}
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return utils.RespondError(c, fiber.StatusBadRequest, "invalid wallet id")
	}

	if err := h.svc.Delete(c.Context(), claims.UserID, uint(id)); err != nil {
		return fail(c, err)
	}
	return utils.RespondOK(c, fiber.StatusOK, "wallet deleted", nil)
}
