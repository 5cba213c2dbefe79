package handlers

import (
	"errors"

	"guitar_square_backend/store"

	"github.com/gofiber/fiber/v2"
)

type CategoryHandler struct {
	Store store.Store
}

func NewCategoryHandler(st store.Store) *CategoryHandler {
	return &CategoryHandler{Store: st}
}

// GetCategories - GET /categories
// Without a filter returns every category; with ?category=<name> returns the
// single match or null.
func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	if name := c.Query("category"); name != "" {
		category, err := h.Store.CategoryByName(c.Context(), name)
		if errors.Is(err, store.ErrNotFound) {
			return c.JSON(nil)
		}
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch category"})
		}
		return c.JSON(category)
	}

	categories, err := h.Store.Categories(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch categories"})
	}
	return c.JSON(categories)
}
