package handlers

import (
	"guitar_square_backend/models"
	"guitar_square_backend/store"

	"github.com/gofiber/fiber/v2"
)

type FeedbackHandler struct {
	Store store.Store
}

func NewFeedbackHandler(st store.Store) *FeedbackHandler {
	return &FeedbackHandler{Store: st}
}

// CreateFeedback - POST /feedback
func (h *FeedbackHandler) CreateFeedback(c *fiber.Ctx) error {
	var feedback models.Feedback
	if err := c.BodyParser(&feedback); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	id, err := h.Store.InsertFeedback(c.Context(), &feedback)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not submit feedback"})
	}
	return c.JSON(fiber.Map{"acknowledged": true, "insertedId": id})
}
