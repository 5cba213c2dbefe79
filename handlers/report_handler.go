package handlers

import (
	"errors"

	"guitar_square_backend/models"
	"guitar_square_backend/store"

	"github.com/gofiber/fiber/v2"
)

type ReportHandler struct {
	Store store.Store
}

func NewReportHandler(st store.Store) *ReportHandler {
	return &ReportHandler{Store: st}
}

// CreateReport - POST /report
func (h *ReportHandler) CreateReport(c *fiber.Ctx) error {
	var report models.Report
	if err := c.BodyParser(&report); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid input"})
	}

	id, err := h.Store.InsertReport(c.Context(), &report)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not create report"})
	}
	return c.JSON(fiber.Map{"acknowledged": true, "insertedId": id})
}

// GetReports - GET /reports
func (h *ReportHandler) GetReports(c *fiber.Ctx) error {
	reports, err := h.Store.Reports(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not fetch reports"})
	}
	return c.JSON(reports)
}

// DeleteReport - DELETE /report/:id
// Removes the reported product and every report referencing it in one
// transaction.
func (h *ReportHandler) DeleteReport(c *fiber.Ctx) error {
	products, reports, err := h.Store.DeleteReportCascade(c.Context(), c.Params("id"))
	if errors.Is(err, store.ErrInvalidID) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid report id"})
	}
	if errors.Is(err, store.ErrNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Report not found"})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Could not delete report"})
	}
	return c.JSON(fiber.Map{
		"acknowledged":    true,
		"deletedProducts": products,
		"deletedReports":  reports,
	})
}
