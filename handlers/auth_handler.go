package handlers

import (
	"guitar_square_backend/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthHandler struct{}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{}
}

// IssueToken - POST /jwt
// Signs whatever identity payload the client presents. There is no
// credential check; the token is a capability with a 30-day expiry.
func (h *AuthHandler) IssueToken(c *fiber.Ctx) error {
	var identity map[string]interface{}
	if err := c.BodyParser(&identity); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	token, err := utils.SignToken(identity)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not sign token"})
	}

	return c.JSON(fiber.Map{"token": token})
}
