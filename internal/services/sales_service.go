package services

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"botilleria/internal/domain"
	applog "botilleria/internal/log"
	"botilleria/internal/storage"
)

const salesKey = "sales"

// SalesService owns the append-only ledger of sale transactions. Recording a
// sale is the one operation that touches both the ledger and the catalog.
type SalesService struct {
	kv      storage.KV
	catalog *CatalogService
	sales   []domain.Sale
}

// NewSalesService loads the ledger from storage; load failures start it empty.
func NewSalesService(kv storage.KV, catalog *CatalogService) *SalesService {
	s := &SalesService{kv: kv, catalog: catalog}
	raw, ok, err := kv.Get(salesKey)
	if err != nil {
		applog.Warn(nil, "ledger.load.fail", err, nil)
		return s
	}
	if !ok {
		return s
	}
	if err := json.Unmarshal([]byte(raw), &s.sales); err != nil {
		applog.Warn(nil, "ledger.load.corrupt", err, nil)
		s.sales = nil
	}
	return s
}

// RecordSale deducts quantity from the product's stock and appends one
// transaction with the product's price snapshotted at sale time. Both new
// states are computed up front and committed together: if either write
// fails, in-memory state is rolled back and a single storage error surfaces.
func (s *SalesService) RecordSale(productCode string, quantity int) (domain.Sale, error) {
	p, ok := s.catalog.GetByCode(productCode)
	if !ok {
		return domain.Sale{}, ErrNotFound
	}
	if quantity <= 0 {
		return domain.Sale{}, ErrInvalidQuantity
	}
	if quantity > p.TotalUnits {
		return domain.Sale{}, &InsufficientStockError{Code: p.Code, Available: p.TotalUnits}
	}

	unitPrice := p.SalePriceValue()
	sale := domain.Sale{
		ID:              saleID(),
		ProductCode:     p.Code,
		ProductName:     p.Name,
		ProductCategory: p.Category,
		Quantity:        quantity,
		UnitPrice:       unitPrice,
		Subtotal:        domain.Round2(float64(quantity) * unitPrice),
		SoldAt:          time.Now(),
	}

	updated := p
	updated.SetTotalUnits(p.TotalUnits - quantity)
	updated.UpdatedAt = sale.SoldAt

	if err := s.commit(append(s.snapshot(), sale), &updated); err != nil {
		return domain.Sale{}, err
	}
	return sale, nil
}

// UndoLastSale pops the most recent transaction and puts its units back on
// the shelf. Returns false when the ledger is empty. If the product was
// deleted in the meantime the sale is still removed; there is no stock left
// to restore.
func (s *SalesService) UndoLastSale() (bool, error) {
	if len(s.sales) == 0 {
		return false, nil
	}
	last := s.sales[len(s.sales)-1]
	remaining := s.snapshot()[:len(s.sales)-1]

	var updated *domain.Product
	if p, ok := s.catalog.GetByCode(last.ProductCode); ok {
		restored := p
		restored.SetTotalUnits(p.TotalUnits + last.Quantity)
		restored.UpdatedAt = time.Now()
		updated = &restored
	}

	if err := s.commit(remaining, updated); err != nil {
		return false, err
	}
	return true, nil
}

// ListSales returns the ledger newest-first for the history view.
func (s *SalesService) ListSales() []domain.Sale {
	out := s.snapshot()
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// SalesByCategory filters the ledger by the sold product's category snapshot.
func (s *SalesService) SalesByCategory(cat domain.Category) []domain.Sale {
	var out []domain.Sale
	for _, sl := range s.sales {
		if sl.ProductCategory == cat {
			out = append(out, sl)
		}
	}
	return out
}

// SalesByDateRange returns sales within [start, end], inclusive of the end
// date's full day. Zero bounds are open.
func (s *SalesService) SalesByDateRange(start, end time.Time) []domain.Sale {
	var out []domain.Sale
	for _, sl := range s.sales {
		if inRange(sl.SoldAt, start, end) {
			out = append(out, sl)
		}
	}
	return out
}

// Report aggregates the ledger (optionally restricted to a date range) into
// revenue, profit, per-category revenue and the top 10 best sellers.
func (s *SalesService) Report(start, end time.Time) domain.SalesReport {
	report := domain.SalesReport{ByCategory: map[domain.Category]float64{}}

	type agg struct {
		row   domain.ProductSales
		order int
	}
	byProduct := map[string]*agg{}

	for _, sl := range s.sales {
		if !inRange(sl.SoldAt, start, end) {
			continue
		}
		report.Transactions++
		report.TotalRevenue += sl.Subtotal
		report.ByCategory[sl.ProductCategory] += sl.Subtotal

		// Profit against the purchase price as it stands today; a deleted
		// product contributes zero, like the original app.
		profit := 0.0
		if p, ok := s.catalog.GetByCode(sl.ProductCode); ok {
			profit = (sl.UnitPrice - p.PurchasePriceValue()) * float64(sl.Quantity)
		}
		report.TotalProfit += profit

		a, ok := byProduct[sl.ProductCode]
		if !ok {
			a = &agg{row: domain.ProductSales{Code: sl.ProductCode, Name: sl.ProductName}, order: len(byProduct)}
			byProduct[sl.ProductCode] = a
		}
		a.row.Quantity += sl.Quantity
		a.row.Revenue += sl.Subtotal
		a.row.Profit += profit
	}

	rows := make([]*agg, 0, len(byProduct))
	for _, a := range byProduct {
		rows = append(rows, a)
	}
	// Quantity descending; ties keep first-encountered order.
	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].row.Quantity != rows[j].row.Quantity {
			return rows[i].row.Quantity > rows[j].row.Quantity
		}
		return rows[i].order < rows[j].order
	})
	for i, a := range rows {
		if i == 10 {
			break
		}
		a.row.Revenue = domain.Round2(a.row.Revenue)
		a.row.Profit = domain.Round2(a.row.Profit)
		report.TopProducts = append(report.TopProducts, a.row)
	}

	report.TotalRevenue = domain.Round2(report.TotalRevenue)
	report.TotalProfit = domain.Round2(report.TotalProfit)
	for cat, v := range report.ByCategory {
		report.ByCategory[cat] = domain.Round2(v)
	}
	return report
}

// ClearHistory empties the ledger. Irreversible. As with every single-store
// write, a failed save is reported but the in-memory state stands.
func (s *SalesService) ClearHistory() error {
	s.sales = nil
	return s.persist()
}

// commit persists the new ledger and, when a product changed, the catalog,
// rolling the ledger back if either write fails.
func (s *SalesService) commit(sales []domain.Sale, updated *domain.Product) error {
	prev := s.sales
	s.sales = sales
	if err := s.persist(); err != nil {
		s.sales = prev
		return err
	}
	if updated != nil {
		if err := s.catalog.replaceProduct(*updated); err != nil {
			s.sales = prev
			if perr := s.persist(); perr != nil {
				applog.Error(nil, "ledger.rollback.fail", perr, nil)
			}
			return err
		}
	}
	return nil
}

func (s *SalesService) snapshot() []domain.Sale {
	out := make([]domain.Sale, len(s.sales))
	copy(out, s.sales)
	return out
}

func (s *SalesService) persist() error {
	b, err := json.Marshal(s.sales)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	if err := s.kv.Set(salesKey, string(b)); err != nil {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return nil
}

func inRange(t, start, end time.Time) bool {
	if !start.IsZero() && t.Before(start) {
		return false
	}
	if !end.IsZero() && t.After(endOfDay(end)) {
		return false
	}
	return true
}

func endOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}

// saleID returns a time-ordered unique id for a transaction.
func saleID() string {
	id, err := uuid.NewV7()
	if err != nil {
		id = uuid.New()
	}
	return id.String()
}
