package handlers

import (
	"errors"

	"guitar_square_backend/models"
	"guitar_square_backend/store"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	Store store.Store
}

func NewUserHandler(st store.Store) *UserHandler {
	return &UserHandler{Store: st}
}

// GetUserRole - GET /user/role/:email
func (h *UserHandler) GetUserRole(c *fiber.Ctx) error {
	email := c.Params("email")

	user, err := h.Store.UserByEmail(c.Context(), email)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch user"})
	}

	resp := fiber.Map{}
	if user != nil {
		resp["role"] = user.Role
	}
	return c.JSON(resp)
}

// GetUser - GET /user?email=
// A missing user answers {isDeleted:false}, not 404: "doesn't exist yet" is
// deliberately distinct from "deleted".
func (h *UserHandler) GetUser(c *fiber.Ctx) error {
	email := c.Query("email")

	user, err := h.Store.UserByEmail(c.Context(), email)
	if errors.Is(err, store.ErrNotFound) {
		return c.JSON(fiber.Map{"isDeleted": false})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch user"})
	}
	return c.JSON(user)
}

// CreateUser - POST /user
// Idempotent on email: a duplicate returns a message body with status 200
// and performs no write.
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var user models.User
	if err := c.BodyParser(&user); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	existing, err := h.Store.UserByEmail(c.Context(), user.Email)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create user"})
	}
	if existing != nil {
		return c.JSON(fiber.Map{"message": "User already exists"})
	}

	user.IsDeleted = false
	id, err := h.Store.InsertUser(c.Context(), &user)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create user"})
	}

	return c.JSON(fiber.Map{"acknowledged": true, "insertedId": id})
}

// VerifyUser - PUT /user/verify?email=
func (h *UserHandler) VerifyUser(c *fiber.Ctx) error {
	email := c.Query("email")

	modified, err := h.Store.VerifyUser(c.Context(), email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not verify user"})
	}
	return c.JSON(fiber.Map{"acknowledged": true, "modifiedCount": modified})
}

// DeleteUser - DELETE /user?email=
// Soft-deletes the user and hard-deletes every product they listed.
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	email := c.Query("email")

	removed, err := h.Store.SoftDeleteUser(c.Context(), email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete user"})
	}
	return c.JSON(fiber.Map{"acknowledged": true, "deletedProducts": removed})
}

// GetSellers - GET /sellers
func (h *UserHandler) GetSellers(c *fiber.Ctx) error {
	return h.usersByRole(c, "seller")
}

// GetBuyers - GET /buyers
func (h *UserHandler) GetBuyers(c *fiber.Ctx) error {
	return h.usersByRole(c, "buyer")
}

func (h *UserHandler) usersByRole(c *fiber.Ctx, role string) error {
	users, err := h.Store.UsersByRole(c.Context(), role)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch users"})
	}
	return c.JSON(users)
}
