package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"botilleria/internal/domain"
	applog "botilleria/internal/log"
	"botilleria/internal/services"
	"botilleria/internal/validate"
)

type SalesHandler struct {
	Sales *services.SalesService
}

type recordSaleRequest struct {
	Code     string `json:"code"`
	Quantity int    `json:"quantity"`
}

// POST /api/v1/sales
func (h *SalesHandler) Record(c *fiber.Ctx) error {
	var req recordSaleRequest
	if err := c.BodyParser(&req); err != nil {
		return jsonError(c, fiber.StatusBadRequest, "invalid request body")
	}
	sale, err := h.Sales.RecordSale(req.Code, req.Quantity)
	if err != nil {
		applog.Warn(c, "sale.record.fail", err, map[string]any{"code": req.Code, "qty": req.Quantity})
		return failure(c, err)
	}
	applog.Audit(c, "sale.record", map[string]any{"sale_id": sale.ID, "code": sale.ProductCode, "qty": sale.Quantity})
	return c.Status(fiber.StatusCreated).JSON(sale)
}

// POST /api/v1/sales/undo
func (h *SalesHandler) Undo(c *fiber.Ctx) error {
	undone, err := h.Sales.UndoLastSale()
	if err != nil {
		applog.Error(c, "sale.undo.fail", err, nil)
		return failure(c, err)
	}
	if undone {
		applog.Audit(c, "sale.undo", nil)
	}
	return c.JSON(fiber.Map{"undone": undone})
}

// GET /api/v1/sales?category=&start=&end=
func (h *SalesHandler) History(c *fiber.Ctx) error {
	if cat := c.Query("category"); cat != "" {
		category := domain.Category(cat)
		if !category.Valid() {
			return jsonError(c, fiber.StatusBadRequest, "invalid category")
		}
		sales := h.Sales.SalesByCategory(category)
		return c.JSON(fiber.Map{"sales": sales, "count": len(sales)})
	}
	start, end, ok := dateRange(c)
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "dates must be YYYY-MM-DD")
	}
	var sales []domain.Sale
	if start.IsZero() && end.IsZero() {
		sales = h.Sales.ListSales()
	} else {
		sales = h.Sales.SalesByDateRange(start, end)
	}
	return c.JSON(fiber.Map{"sales": sales, "count": len(sales)})
}

// GET /api/v1/sales/report?start=&end=
func (h *SalesHandler) Report(c *fiber.Ctx) error {
	start, end, ok := dateRange(c)
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "dates must be YYYY-MM-DD")
	}
	return c.JSON(h.Sales.Report(start, end))
}

// GET /api/v1/sales/report/export
func (h *SalesHandler) Export(c *fiber.Ctx) error {
	start, end, ok := dateRange(c)
	if !ok {
		return jsonError(c, fiber.StatusBadRequest, "dates must be YYYY-MM-DD")
	}
	period := "all time"
	if !start.IsZero() && !end.IsZero() {
		period = start.Format("2006-01-02") + " to " + end.Format("2006-01-02")
	}
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="sales-report.json"`)
	return c.JSON(fiber.Map{
		"generatedAt": time.Now().UTC(),
		"period":      period,
		"report":      h.Sales.Report(start, end),
	})
}

// DELETE /api/v1/sales
func (h *SalesHandler) Clear(c *fiber.Ctx) error {
	if err := h.Sales.ClearHistory(); err != nil {
		applog.Error(c, "sale.clear.fail", err, nil)
		return failure(c, err)
	}
	applog.Audit(c, "sale.clear", nil)
	return c.SendStatus(fiber.StatusNoContent)
}

// dateRange parses optional start/end query dates.
func dateRange(c *fiber.Ctx) (start, end time.Time, ok bool) {
	if s := c.Query("start"); s != "" {
		t, valid := validate.Date(s)
		if !valid {
			return time.Time{}, time.Time{}, false
		}
		start = t
	}
	if s := c.Query("end"); s != "" {
		t, valid := validate.Date(s)
		if !valid {
			return time.Time{}, time.Time{}, false
		}
		end = t
	}
	return start, end, true
}
