package handlers

import (
	"github.com/gofiber/fiber/v2"

	"botilleria/internal/services"
	"botilleria/internal/storage"
)

type Deps struct {
	ProductHandler  *ProductHandler
	CategoryHandler *CategoryHandler
	SalesHandler    *SalesHandler
}

func NewDeps(kv storage.KV) *Deps {
	catalog := services.NewCatalogService(kv)
	sales := services.NewSalesService(kv, catalog)

	return &Deps{
		ProductHandler:  &ProductHandler{Catalog: catalog},
		CategoryHandler: &CategoryHandler{Catalog: catalog},
		SalesHandler:    &SalesHandler{Sales: sales},
	}
}

// Register mounts the API under /api/v1.
func (d *Deps) Register(app *fiber.App) {
	api := app.Group("/api/v1")

	api.Get("/products", d.ProductHandler.List)
	api.Post("/products", d.ProductHandler.Create)
	api.Get("/products/search", d.ProductHandler.Search)
	api.Get("/products/:code", d.ProductHandler.Detail)
	api.Put("/products/:code", d.ProductHandler.Update)
	api.Delete("/products/:code", d.ProductHandler.Delete)

	api.Get("/categories", d.CategoryHandler.List)
	api.Get("/categories/:name/summary", d.CategoryHandler.Summary)

	api.Post("/sales", d.SalesHandler.Record)
	api.Post("/sales/undo", d.SalesHandler.Undo)
	api.Get("/sales", d.SalesHandler.History)
	api.Get("/sales/report", d.SalesHandler.Report)
	api.Get("/sales/report/export", d.SalesHandler.Export)
	api.Delete("/sales", d.SalesHandler.Clear)
}
