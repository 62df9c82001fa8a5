package services

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"botilleria/internal/domain"
	applog "botilleria/internal/log"
	"botilleria/internal/storage"
	"botilleria/internal/validate"
)

const productsKey = "products"

// CatalogService owns the product list. The whole catalog is kept in memory
// and serialized as one JSON blob on every mutation, the way the shop app
// stored it on device.
type CatalogService struct {
	kv       storage.KV
	products []domain.Product
}

// NewCatalogService loads the catalog from storage. A missing key, a read
// failure or a corrupt blob all start the catalog empty rather than failing.
func NewCatalogService(kv storage.KV) *CatalogService {
	s := &CatalogService{kv: kv}
	raw, ok, err := kv.Get(productsKey)
	if err != nil {
		applog.Warn(nil, "catalog.load.fail", err, nil)
		return s
	}
	if !ok {
		return s
	}
	if err := json.Unmarshal([]byte(raw), &s.products); err != nil {
		applog.Warn(nil, "catalog.load.corrupt", err, nil)
		s.products = nil
	}
	return s
}

// List returns a snapshot copy of all products in insertion order.
func (s *CatalogService) List() []domain.Product {
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// ListByCategory returns a snapshot of the products in one category.
func (s *CatalogService) ListByCategory(cat domain.Category) []domain.Product {
	var out []domain.Product
	for _, p := range s.products {
		if p.Category == cat {
			out = append(out, p)
		}
	}
	return out
}

// GetByCode returns the product with the given code, if present.
func (s *CatalogService) GetByCode(code string) (domain.Product, bool) {
	if i := s.index(code); i >= 0 {
		return s.products[i], true
	}
	return domain.Product{}, false
}

// SearchByName matches the term case-insensitively against product names.
func (s *CatalogService) SearchByName(term string) []domain.Product {
	term = strings.ToLower(strings.TrimSpace(term))
	var out []domain.Product
	for _, p := range s.products {
		if strings.Contains(strings.ToLower(p.Name), term) {
			out = append(out, p)
		}
	}
	return out
}

// Create derives pricing and totals, validates, and appends the product.
// Fails with ErrDuplicateCode if the code is already taken.
func (s *CatalogService) Create(p domain.Product) (domain.Product, error) {
	derive(&p)
	if err := validateProduct(p); err != nil {
		return domain.Product{}, err
	}
	if s.index(p.Code) >= 0 {
		return domain.Product{}, ErrDuplicateCode
	}
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now
	s.products = append(s.products, p)
	if err := s.persist(); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

// Update replaces the product stored under originalCode. Changing the code is
// allowed unless the new code collides with a different existing product.
func (s *CatalogService) Update(originalCode string, p domain.Product) (domain.Product, error) {
	i := s.index(originalCode)
	if i < 0 {
		return domain.Product{}, ErrNotFound
	}
	derive(&p)
	if err := validateProduct(p); err != nil {
		return domain.Product{}, err
	}
	if p.Code != originalCode {
		if j := s.index(p.Code); j >= 0 && j != i {
			return domain.Product{}, ErrDuplicateCode
		}
	}
	p.CreatedAt = s.products[i].CreatedAt
	p.UpdatedAt = time.Now()
	s.products[i] = p
	if err := s.persist(); err != nil {
		return domain.Product{}, err
	}
	return p, nil
}

// Delete removes the product if present. Deleting an absent code is a no-op,
// keeping the operation idempotent.
func (s *CatalogService) Delete(code string) error {
	i := s.index(code)
	if i < 0 {
		return nil
	}
	s.products = append(s.products[:i], s.products[i+1:]...)
	return s.persist()
}

// TotalUnitsInCategory sums unit counts across one category.
func (s *CatalogService) TotalUnitsInCategory(cat domain.Category) int {
	total := 0
	for _, p := range s.products {
		if p.Category == cat {
			total += p.TotalUnits
		}
	}
	return total
}

// TotalPacksInCategory sums whole packs (loose units do not count).
func (s *CatalogService) TotalPacksInCategory(cat domain.Category) int {
	total := 0
	for _, p := range s.products {
		if p.Category == cat && p.UnitsPerPack > 0 {
			total += p.TotalUnits / int(p.UnitsPerPack)
		}
	}
	return total
}

// InventoryValueInCategory sums salePrice*totalUnits across one category.
// Products with an unparsable sale price contribute 0.
func (s *CatalogService) InventoryValueInCategory(cat domain.Category) float64 {
	value := 0.0
	for _, p := range s.products {
		if p.Category == cat {
			value += p.SalePriceValue() * float64(p.TotalUnits)
		}
	}
	return domain.Round2(value)
}

// replaceProduct swaps in a new product state and persists the catalog.
// On a write failure the in-memory record is restored before returning, so
// the ledger's two-store commit can treat the whole step as not-happened.
func (s *CatalogService) replaceProduct(p domain.Product) error {
	i := s.index(p.Code)
	if i < 0 {
		return ErrNotFound
	}
	prev := s.products[i]
	s.products[i] = p
	if err := s.persist(); err != nil {
		s.products[i] = prev
		return err
	}
	return nil
}

func (s *CatalogService) index(code string) int {
	for i, p := range s.products {
		if p.Code == code {
			return i
		}
	}
	return -1
}

func (s *CatalogService) persist() error {
	b, err := json.Marshal(s.products)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if err := s.kv.Set(productsKey, string(b)); err != nil {
		// In-memory state is intentionally kept: the caller is told the write
		// failed, but the running session continues with what it sees.
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return nil
}

// derive recomputes everything the caller is not allowed to set directly:
// the pack/custom/total invariant and the VAT/sale price pair.
func derive(p *domain.Product) {
	p.Code = strings.TrimSpace(p.Code)
	p.Name = strings.TrimSpace(p.Name)
	p.RecomputeTotals()
	p.VATAmount, p.SalePrice = domain.ComputePricing(p.PurchasePrice, p.Margin)
}

func validateProduct(p domain.Product) error {
	if _, ok := validate.Code(p.Code); !ok {
		return ErrValidation
	}
	if _, ok := validate.Name(p.Name); !ok {
		return ErrValidation
	}
	if !p.Category.Valid() {
		return ErrValidation
	}
	if !p.Volume.Unit.Valid() || p.Volume.Quantity <= 0 {
		return ErrValidation
	}
	if !p.UnitsPerPack.Valid() || !p.Margin.Valid() {
		return ErrValidation
	}
	if p.PackCount < 0 || p.CustomUnits < 0 || p.TotalUnits <= 0 {
		return ErrValidation
	}
	if _, ok := validate.Price(p.PurchasePrice); !ok {
		return ErrValidation
	}
	if _, ok := validate.Price(p.SalePrice); !ok {
		return ErrValidation
	}
	return nil
}
