package handlers

import (
	"fintrack/internal/services/auth"
	"fintrack/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct {
	svc auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input auth.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return utils.RespondError(c, fiber.StatusBadRequest, "invalid request body")
	}

	res, err := h.svc.Register(c.Context(), input)
	if err != nil {
		return fail(c, err)
	}
	return utils.RespondOK(c, fiber.StatusCreated, "account created", res)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input auth.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.RespondError(c, fiber.StatusBadRequest, "invalid request body")
	}

	res, err := h.svc.Login(c.Context(), input)
	if err != nil {
		return fail(c, err)
	}
	return utils.RespondOK(c, fiber.StatusOK, "logged in", res)
}
