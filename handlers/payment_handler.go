package handlers

import (
	"errors"

	"guitar_square_backend/models"
	"guitar_square_backend/payment"
	"guitar_square_backend/store"

	"github.com/gofiber/fiber/v2"
)

type PaymentHandler struct {
	Store   store.Store
	Gateway payment.Gateway
}

func NewPaymentHandler(st store.Store, gw payment.Gateway) *PaymentHandler {
	return &PaymentHandler{Store: st, Gateway: gw}
}

// PaymentIntentRequest carries the price in dollars.
type PaymentIntentRequest struct {
	Price float64 `json:"price"`
}

// CreatePaymentIntent - POST /create-payment-intent
// Converts dollars to cents and asks the processor for a client secret. A
// falsy price means the product was already bought out from under the buyer.
func (h *PaymentHandler) CreatePaymentIntent(c *fiber.Ctx) error {
	var req PaymentIntentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	if req.Price == 0 {
		return c.JSON(fiber.Map{"message": "Product already Sold"})
	}

	amount := int64(req.Price * 100)
	clientSecret, err := h.Gateway.CreateIntent(c.Context(), amount)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create payment intent"})
	}
	return c.JSON(fiber.Map{"clientSecret": clientSecret})
}

// RecordPayment - POST /payment
// Stores the payment and marks the product sold in one transaction.
func (h *PaymentHandler) RecordPayment(c *fiber.Ctx) error {
	var pay models.Payment
	if err := c.BodyParser(&pay); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	id, err := h.Store.RecordPayment(c.Context(), &pay)
	if errors.Is(err, store.ErrInvalidID) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product id"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not record payment"})
	}
	return c.JSON(fiber.Map{"acknowledged": true, "insertedId": id})
}
