package handlers

import (
	"net/url"

	"github.com/gofiber/fiber/v2"

	"botilleria/internal/domain"
	"botilleria/internal/services"
)

type CategoryHandler struct {
	Catalog *services.CatalogService
}

// GET /api/v1/categories
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"categories": domain.Categories()})
}

// GET /api/v1/categories/:name/summary
func (h *CategoryHandler) Summary(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid category name")
	}
	category := domain.Category(name)
	if !category.Valid() {
		return jsonError(c, fiber.StatusNotFound, "unknown category")
	}
	return c.JSON(fiber.Map{
		"category":       category,
		"totalUnits":     h.Catalog.TotalUnitsInCategory(category),
		"totalPacks":     h.Catalog.TotalPacksInCategory(category),
		"inventoryValue": h.Catalog.InventoryValueInCategory(category),
	})
}
