package domain_test

import (
	"testing"

	"botilleria/internal/domain"
)

func TestSetTotalUnitsRederivesSplit(t *testing.T) {
	p := domain.Product{UnitsPerPack: 12, PackCount: 4, CustomUnits: 3}
	p.RecomputeTotals()
	if p.TotalUnits != 51 {
		t.Fatalf("want 51 total units, got %d", p.TotalUnits)
	}

	p.SetTotalUnits(51 - 7)
	if p.TotalUnits != 44 || p.PackCount != 3 || p.CustomUnits != 8 {
		t.Fatalf("bad split after deduction: %+v", p)
	}

	p.SetTotalUnits(44 + 7)
	if p.TotalUnits != 51 || p.PackCount != 4 || p.CustomUnits != 3 {
		t.Fatalf("bad split after restore: %+v", p)
	}
}

func TestClosedSets(t *testing.T) {
	if !domain.CategoryJugos.Valid() || domain.Category("Snacks").Valid() {
		t.Fatal("category set mismatch")
	}
	if len(domain.Categories()) != 5 {
		t.Fatalf("want 5 categories, got %d", len(domain.Categories()))
	}
	for _, ps := range []domain.PackSize{6, 8, 12, 24} {
		if !ps.Valid() {
			t.Fatalf("pack size %d should be valid", ps)
		}
	}
	if domain.PackSize(10).Valid() {
		t.Fatal("pack size 10 should be invalid")
	}
	for _, m := range []domain.Margin{11, 21, 30, 35, 40} {
		if !m.Valid() {
			t.Fatalf("margin %d should be valid", m)
		}
	}
	if domain.Margin(50).Valid() {
		t.Fatal("margin 50 should be invalid")
	}
}

func TestStockStatusFor(t *testing.T) {
	if domain.StockStatusFor(6) != domain.InStock {
		t.Fatal("want IN_STOCK")
	}
	if domain.StockStatusFor(4) != domain.LowStock {
		t.Fatal("want LOW_STOCK")
	}
	if domain.StockStatusFor(0) != domain.OutOfStock {
		t.Fatal("want OUT_OF_STOCK")
	}
}
