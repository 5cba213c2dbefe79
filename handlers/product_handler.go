package handlers

import (
	"errors"
	"time"

	"guitar_square_backend/models"
	"guitar_square_backend/store"

	"github.com/gofiber/fiber/v2"
)

type ProductHandler struct {
	Store store.Store
}

func NewProductHandler(st store.Store) *ProductHandler {
	return &ProductHandler{Store: st}
}

// AdvertiseRequest carries the target flag state for a toggle.
type AdvertiseRequest struct {
	IsAdvertised bool `json:"isAdvertised"`
}

// GetProductsBySeller - GET /products?email=
func (h *ProductHandler) GetProductsBySeller(c *fiber.Ctx) error {
	email := c.Query("email")

	products, err := h.Store.ProductsBySeller(c.Context(), email)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch products"})
	}
	return c.JSON(products)
}

// GetProductsByCategory - GET /category/:id
// Sold products are excluded from category browsing.
func (h *ProductHandler) GetProductsByCategory(c *fiber.Ctx) error {
	categoryID := c.Params("id")

	products, err := h.Store.ProductsByCategory(c.Context(), categoryID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch products"})
	}
	return c.JSON(products)
}

// CreateProduct - POST /product
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	var product models.Product
	if err := c.BodyParser(&product); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	product.IsSold = false
	product.PostedAt = time.Now()

	id, err := h.Store.InsertProduct(c.Context(), &product)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create product"})
	}
	return c.JSON(fiber.Map{"acknowledged": true, "insertedId": id})
}

// DeleteProduct - DELETE /product/:id
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	deleted, err := h.Store.DeleteProduct(c.Context(), c.Params("id"))
	if errors.Is(err, store.ErrInvalidID) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product id"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete product"})
	}
	return c.JSON(fiber.Map{"acknowledged": true, "deletedCount": deleted})
}

// GetProduct - GET /product/:id
// A sold (or missing) product answers a "Product Sold" message body rather
// than a 404.
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	product, err := h.Store.ProductByID(c.Context(), c.Params("id"))
	if errors.Is(err, store.ErrInvalidID) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product id"})
	}
	if errors.Is(err, store.ErrNotFound) {
		return c.JSON(fiber.Map{"message": "Product Sold"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch product"})
	}
	if product.IsSold {
		return c.JSON(fiber.Map{"message": "Product Sold"})
	}
	return c.JSON(product)
}

// GetSpecificProduct - GET /specific-product/:id
// Same lookup as GetProduct but without the sold filter. The two stay
// distinct on purpose.
func (h *ProductHandler) GetSpecificProduct(c *fiber.Ctx) error {
	product, err := h.Store.ProductByID(c.Context(), c.Params("id"))
	if errors.Is(err, store.ErrInvalidID) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product id"})
	}
	if errors.Is(err, store.ErrNotFound) {
		return c.JSON(nil)
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch product"})
	}
	return c.JSON(product)
}

// GetAdvertised - GET /advertised
func (h *ProductHandler) GetAdvertised(c *fiber.Ctx) error {
	products, err := h.Store.AdvertisedProducts(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch products"})
	}
	return c.JSON(products)
}

// ToggleAdvertise - PUT /product/advertise/:id
func (h *ProductHandler) ToggleAdvertise(c *fiber.Ctx) error {
	var req AdvertiseRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	modified, err := h.Store.SetAdvertised(c.Context(), c.Params("id"), req.IsAdvertised)
	if errors.Is(err, store.ErrInvalidID) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid product id"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not update product"})
	}
	return c.JSON(fiber.Map{"acknowledged": true, "modifiedCount": modified})
}
