package handlers

import (
	"github.com/gofiber/fiber/v2"

	"botilleria/internal/domain"
	applog "botilleria/internal/log"
	"botilleria/internal/services"
	"botilleria/internal/validate"
)

type ProductHandler struct {
	Catalog *services.CatalogService
}

// productView decorates a product with its stock classification.
type productView struct {
	domain.Product
	StockStatus domain.StockStatus `json:"stockStatus"`
}

func viewOf(p domain.Product) productView {
	return productView{Product: p, StockStatus: domain.StockStatusFor(p.TotalUnits)}
}

// GET /api/v1/products?category=
func (h *ProductHandler) List(c *fiber.Ctx) error {
	var products []domain.Product
	if cat := c.Query("category"); cat != "" {
		category := domain.Category(cat)
		if !category.Valid() {
			return jsonError(c, fiber.StatusBadRequest, "invalid category")
		}
		products = h.Catalog.ListByCategory(category)
	} else {
		products = h.Catalog.List()
	}
	views := make([]productView, 0, len(products))
	for _, p := range products {
		views = append(views, viewOf(p))
	}
	return c.JSON(fiber.Map{"products": views, "count": len(views)})
}

// GET /api/v1/products/search?q=
func (h *ProductHandler) Search(c *fiber.Ctx) error {
	q, ok := validate.Term(c.Query("q"))
	if !ok {
		applog.Warn(c, "validation.fail", nil, map[string]any{"field": "q"})
		return jsonError(c, fiber.StatusBadRequest, "enter a valid search term")
	}
	products := h.Catalog.SearchByName(q)
	return c.JSON(fiber.Map{"products": products, "count": len(products)})
}

// GET /api/v1/products/:code
func (h *ProductHandler) Detail(c *fiber.Ctx) error {
	p, ok := h.Catalog.GetByCode(c.Params("code"))
	if !ok {
		return jsonError(c, fiber.StatusNotFound, "product not found")
	}
	return c.JSON(viewOf(p))
}

// POST /api/v1/products
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var p domain.Product
	if err := c.BodyParser(&p); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	created, err := h.Catalog.Create(p)
	if err != nil {
		applog.Warn(c, "product.create.fail", err, map[string]any{"code": p.Code})
		return failure(c, err)
	}
	applog.Audit(c, "product.create", map[string]any{"code": created.Code})
	return c.Status(fiber.StatusCreated).JSON(created)
}

// PUT /api/v1/products/:code
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var p domain.Product
	if err := c.BodyParser(&p); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	updated, err := h.Catalog.Update(c.Params("code"), p)
	if err != nil {
		applog.Warn(c, "product.update.fail", err, map[string]any{"code": c.Params("code")})
		return failure(c, err)
	}
	applog.Audit(c, "product.update", map[string]any{"code": updated.Code})
	return c.JSON(updated)
}

// DELETE /api/v1/products/:code
func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	if err := h.Catalog.Delete(c.Params("code")); err != nil {
		applog.Error(c, "product.delete.fail", err, map[string]any{"code": c.Params("code")})
		return failure(c, err)
	}
	applog.Audit(c, "product.delete", map[string]any{"code": c.Params("code")})
	return c.SendStatus(fiber.StatusNoContent)
}
