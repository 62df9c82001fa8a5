package services_test

import (
	"errors"
	"testing"

	"botilleria/internal/domain"
	"botilleria/internal/services"
	"botilleria/internal/storage"
)

func validProduct(code, name string) domain.Product {
	return domain.Product{
		Code:          code,
		Name:          name,
		Category:      domain.CategoryCervezas,
		Volume:        domain.Volume{Quantity: 473, Unit: domain.UnitMilliliter},
		UnitsPerPack:  6,
		PackCount:     2,
		CustomUnits:   1,
		PurchasePrice: "1000",
		Margin:        30,
	}
}

func TestCreateThenGet(t *testing.T) {
	catalog := services.NewCatalogService(storage.NewMemory())

	in := validProduct("780432001", "Cerveza Escudo Lata")
	created, err := catalog.Create(in)
	if err != nil {
		t.Fatal(err)
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatal("timestamps not stamped")
	}
	if created.VATAmount != "190.00" || created.SalePrice != "1547.00" {
		t.Fatalf("derived pricing wrong: vat=%q sale=%q", created.VATAmount, created.SalePrice)
	}
	if created.TotalUnits != 13 {
		t.Fatalf("want 13 total units, got %d", created.TotalUnits)
	}

	got, ok := catalog.GetByCode("780432001")
	if !ok {
		t.Fatal("product not found after create")
	}
	got.CreatedAt, got.UpdatedAt = in.CreatedAt, in.UpdatedAt
	in.TotalUnits = 13
	in.VATAmount, in.SalePrice = "190.00", "1547.00"
	if got != in {
		t.Fatalf("stored product differs:\n got %+v\nwant %+v", got, in)
	}
}

func TestCreateDuplicateCode(t *testing.T) {
	catalog := services.NewCatalogService(storage.NewMemory())
	if _, err := catalog.Create(validProduct("780432001", "Cerveza Escudo Lata")); err != nil {
		t.Fatal(err)
	}
	_, err := catalog.Create(validProduct("780432001", "Otra Cerveza"))
	if !errors.Is(err, services.ErrDuplicateCode) {
		t.Fatalf("want ErrDuplicateCode, got %v", err)
	}
	if n := len(catalog.List()); n != 1 {
		t.Fatalf("catalog changed on failed create, len=%d", n)
	}
}

func TestCreateValidation(t *testing.T) {
	catalog := services.NewCatalogService(storage.NewMemory())
	cases := []domain.Product{}

	p := validProduct("12345", "short code")
	cases = append(cases, p)

	p = validProduct("780432001", "")
	cases = append(cases, p)

	p = validProduct("780432001", "no stock")
	p.PackCount, p.CustomUnits = 0, 0
	cases = append(cases, p)

	p = validProduct("780432001", "free price")
	p.PurchasePrice = "0"
	cases = append(cases, p)

	p = validProduct("780432001", "bad volume")
	p.Volume.Quantity = 0
	cases = append(cases, p)

	p = validProduct("780432001", "bad category")
	p.Category = "Snacks"
	cases = append(cases, p)

	p = validProduct("780432001", "bad pack size")
	p.UnitsPerPack = 10
	cases = append(cases, p)

	p = validProduct("780432001", "bad margin")
	p.Margin = 50
	cases = append(cases, p)

	for i, tc := range cases {
		if _, err := catalog.Create(tc); !errors.Is(err, services.ErrValidation) {
			t.Fatalf("case %d: want ErrValidation, got %v", i, err)
		}
	}
	if n := len(catalog.List()); n != 0 {
		t.Fatalf("invalid products were stored, len=%d", n)
	}
}

func TestUpdate(t *testing.T) {
	catalog := services.NewCatalogService(storage.NewMemory())
	if _, err := catalog.Create(validProduct("780432001", "Cerveza Escudo Lata")); err != nil {
		t.Fatal(err)
	}
	if _, err := catalog.Create(validProduct("780110022", "Vino Gato Negro")); err != nil {
		t.Fatal(err)
	}

	if _, err := catalog.Update("no-such-code", validProduct("999999999", "X")); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}

	// changing code onto another product's code must collide
	p := validProduct("780110022", "Vino Gato Negro")
	if _, err := catalog.Update("780432001", p); !errors.Is(err, services.ErrDuplicateCode) {
		t.Fatalf("want ErrDuplicateCode, got %v", err)
	}

	// a legitimate edit re-derives pricing
	p = validProduct("780432001", "Cerveza Escudo Lata 473")
	p.PurchasePrice = "800"
	p.Margin = 40
	updated, err := catalog.Update("780432001", p)
	if err != nil {
		t.Fatal(err)
	}
	if updated.SalePrice != "1332.80" {
		t.Fatalf("pricing not re-derived, sale=%q", updated.SalePrice)
	}
	if updated.Name != "Cerveza Escudo Lata 473" {
		t.Fatalf("name not updated: %q", updated.Name)
	}
}

func TestDeleteIdempotent(t *testing.T) {
	catalog := services.NewCatalogService(storage.NewMemory())
	if _, err := catalog.Create(validProduct("780432001", "Cerveza Escudo Lata")); err != nil {
		t.Fatal(err)
	}
	if err := catalog.Delete("780432001"); err != nil {
		t.Fatal(err)
	}
	if err := catalog.Delete("780432001"); err != nil {
		t.Fatalf("second delete must be a no-op, got %v", err)
	}
	if _, ok := catalog.GetByCode("780432001"); ok {
		t.Fatal("product still present after delete")
	}
}

func TestSearchByNameCaseInsensitive(t *testing.T) {
	catalog := services.NewCatalogService(storage.NewMemory())
	if _, err := catalog.Create(validProduct("780432001", "CERVEZA Escudo Lata")); err != nil {
		t.Fatal(err)
	}
	if _, err := catalog.Create(validProduct("780110022", "Vino Gato Negro")); err != nil {
		t.Fatal(err)
	}
	got := catalog.SearchByName("cerv")
	if len(got) != 1 || got[0].Code != "780432001" {
		t.Fatalf("bad search result: %+v", got)
	}
}

func TestCategoryAggregates(t *testing.T) {
	catalog := services.NewCatalogService(storage.NewMemory())

	a := validProduct("780432001", "Cerveza Escudo Lata") // 13 units, packs of 6, sale 1547.00
	if _, err := catalog.Create(a); err != nil {
		t.Fatal(err)
	}
	b := validProduct("780432002", "Cerveza Austral")
	b.UnitsPerPack, b.PackCount, b.CustomUnits = 12, 1, 5 // 17 units, one whole pack
	if _, err := catalog.Create(b); err != nil {
		t.Fatal(err)
	}
	other := validProduct("780110022", "Vino Gato Negro")
	other.Category = domain.CategoryVinos
	if _, err := catalog.Create(other); err != nil {
		t.Fatal(err)
	}

	if got := catalog.TotalUnitsInCategory(domain.CategoryCervezas); got != 30 {
		t.Fatalf("want 30 units, got %d", got)
	}
	if got := catalog.TotalPacksInCategory(domain.CategoryCervezas); got != 3 {
		t.Fatalf("want 3 whole packs, got %d", got)
	}
	if got := catalog.InventoryValueInCategory(domain.CategoryCervezas); got != 1547.00*30 {
		t.Fatalf("want %v, got %v", 1547.00*30, got)
	}
}

func TestCatalogPersistsAcrossLoads(t *testing.T) {
	kv := storage.NewMemory()
	catalog := services.NewCatalogService(kv)
	if _, err := catalog.Create(validProduct("780432001", "Cerveza Escudo Lata")); err != nil {
		t.Fatal(err)
	}

	reloaded := services.NewCatalogService(kv)
	if _, ok := reloaded.GetByCode("780432001"); !ok {
		t.Fatal("product missing after reload")
	}
}

func TestCorruptBlobStartsEmpty(t *testing.T) {
	kv := storage.NewMemory()
	if err := kv.Set("products", "{definitely not json"); err != nil {
		t.Fatal(err)
	}
	catalog := services.NewCatalogService(kv)
	if n := len(catalog.List()); n != 0 {
		t.Fatalf("corrupt blob should load as empty, len=%d", n)
	}
}

func TestCreateReportsStorageFailure(t *testing.T) {
	kv := storage.NewMemory()
	catalog := services.NewCatalogService(kv)
	kv.FailWrites = true
	_, err := catalog.Create(validProduct("780432001", "Cerveza Escudo Lata"))
	if !errors.Is(err, services.ErrStorage) {
		t.Fatalf("want ErrStorage, got %v", err)
	}
}
