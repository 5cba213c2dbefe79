package handlers

import (
	"guitar_square_backend/models"
	"guitar_square_backend/store"

	"github.com/gofiber/fiber/v2"
)

type BookingHandler struct {
	Store store.Store
}

func NewBookingHandler(st store.Store) *BookingHandler {
	return &BookingHandler{Store: st}
}

// GetBookings - GET /bookings?email=
func (h *BookingHandler) GetBookings(c *fiber.Ctx) error {
	email := c.Query("email")

	bookings, err := h.Store.BookingsByEmail(c.Context(), email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch bookings"})
	}
	return c.JSON(bookings)
}

// CreateBooking - POST /booking
// At most one booking per (email, productId): an existing pair answers
// {acknowledged:false} with no insert and no error.
func (h *BookingHandler) CreateBooking(c *fiber.Ctx) error {
	var booking models.Booking
	if err := c.BodyParser(&booking); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	exists, err := h.Store.BookingExists(c.Context(), booking.Email, booking.ProductID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create booking"})
	}
	if exists {
		return c.JSON(fiber.Map{"acknowledged": false})
	}

	id, err := h.Store.InsertBooking(c.Context(), &booking)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create booking"})
	}
	return c.JSON(fiber.Map{"acknowledged": true, "insertedId": id})
}
