package handlers

import (
	"fintrack/internal/models"
	"fintrack/internal/repositories/cache"
	"fintrack/internal/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type HealthHandler struct {
	db    *gorm.DB
	cache *cache.CacheService
}

func NewHealthHandler(db *gorm.DB, cacheService *cache.CacheService) *HealthHandler {
	return &HealthHandler{db: db, cache: cacheService}
}

func (h *HealthHandler) Check(c *fiber.Ctx) error {
	status := fiber.Map{"database": "up", "cache": "up"}
	healthy := true

	if sqlDB, err := h.db.DB(); err != nil || sqlDB.PingContext(c.Context()) != nil {
		status["database"] = "down"
		healthy = false
	}
	if h.cache == nil || h.cache.HealthCheck(c.Context()) != nil {
		status["cache"] = "down"
		healthy = false
	}

	if !healthy {
		return c.Status(fiber.StatusServiceUnavailable).JSON(models.Response{Msg: "unhealthy", Data: status})
	}
	return utils.RespondOK(c, fiber.StatusOK, "healthy", status)
}
