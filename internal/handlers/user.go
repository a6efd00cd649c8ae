package handlers

import (
	"fintrack/internal/services/user"
	"fintrack/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	svc user.Service
}

func NewUserHandler(svc user.Service) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) Me(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.RespondError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	u, err := h.svc.Get(c.Context(), claims.UserID)
	if err != nil {
		return fail(c, err)
	}
	return utils.RespondOK(c, fiber.StatusOK, "profile retrieved", u)
}

func (h *UserHandler) UpdateProfile(c *fiber.Ctx) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.RespondError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	var draft user.ProfileDraft
	if err := c.BodyParser(&draft); err != nil {
		return utils.RespondError(c, fiber.StatusBadRequest, "invalid request body")
	}

	u, err := h.svc.UpdateProfile(c.Context(), claims.UserID, draft)
	if err != nil {
		return fail(c, err)
	}
	return utils.RespondOK(c, fiber.StatusOK, "profile updated", u)
}
