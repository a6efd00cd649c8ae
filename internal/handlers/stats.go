package handlers

import (
	"context"

	"fintrack/internal/services/stats"
	"fintrack/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type StatsHandler struct {
	svc stats.Service
}

func NewStatsHandler(svc stats.Service) *StatsHandler {
	return &StatsHandler{svc: svc}
}

func (h *StatsHandler) Weekly(c *fiber.Ctx) error {
	return h.respond(c, "weekly stats retrieved", h.svc.Weekly)
}

func (h *StatsHandler) Monthly(c *fiber.Ctx) error {
	return h.respond(c, "monthly stats retrieved", h.svc.Monthly)
}

func (h *StatsHandler) Yearly(c *fiber.Ctx) error {
	return h.respond(c, "yearly stats retrieved", h.svc.Yearly)
}

func (h *StatsHandler) respond(
	c *fiber.Ctx,
	msg string,
	query func(ctx context.Context, userID uint) (*stats.Result, error),
) error {
	claims, err := utils.GetUserClaims(c)
	if err != nil {
		return utils.RespondError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	res, err := query(c.Context(), claims.UserID)
	if err != nil {
		return fail(c, err)
	}
	return utils.RespondOK(c, fiber.StatusOK, msg, res)
}
