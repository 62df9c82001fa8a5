package services

import (
	"log"

	"botilleria/internal/domain"
)

// SeedDemo inserts a small demo catalog when the store is empty. Safe to run
// on every startup.
func SeedDemo(catalog *CatalogService) error {
	if len(catalog.List()) > 0 {
		return nil
	}
	log.Println("[seed] inserting demo catalog")

	demo := []domain.Product{
		{
			Code: "780432001", Name: "Cerveza Escudo Lata", Category: domain.CategoryCervezas,
			Volume: domain.Volume{Quantity: 473, Unit: domain.UnitMilliliter},
			UnitsPerPack: 12, PackCount: 4, CustomUnits: 3,
			PurchasePrice: "650", Margin: 30,
		},
		{
			Code: "780110022", Name: "Vino Gato Negro Cabernet", Category: domain.CategoryVinos,
			Volume: domain.Volume{Quantity: 750, Unit: domain.UnitMilliliter},
			UnitsPerPack: 6, PackCount: 2, CustomUnits: 0,
			PurchasePrice: "2490", Margin: 35,
		},
		{
			Code: "780550013", Name: "Agua Mineral Vital", Category: domain.CategoryBebidas,
			Volume: domain.Volume{Quantity: 1, Unit: domain.UnitLiter},
			UnitsPerPack: 6, PackCount: 5, CustomUnits: 2,
			PurchasePrice: "590", Margin: 40,
		},
	}
	for _, p := range demo {
		if _, err := catalog.Create(p); err != nil {
			return err
		}
	}
	return nil
}
