package handlers

import (
	"fintrack/internal/repositories"
	"fintrack/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	repo repositories.CategoryRepository
}

func NewCategoryHandler(repo repositories.CategoryRepository) *CategoryHandler {
	return &CategoryHandler{repo: repo}
}

// List returns the global expense-category taxonomy.
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	categories, err := h.repo.List()
	if err != nil {
		return fail(c, err)
	}
	return utils.RespondOK(c, fiber.StatusOK, "categories retrieved", categories)
}
