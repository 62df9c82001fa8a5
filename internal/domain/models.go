package domain

import "time"

// Category is the closed set of shelf categories the shop sells.
type Category string

const (
	CategoryCervezas   Category = "Cervezas"
	CategoryBebidas    Category = "Bebidas o Aguas"
	CategoryJugos      Category = "Jugos"
	CategoryVinos      Category = "Vinos"
	CategoryDestilados Category = "Destilados"
)

func Categories() []Category {
	return []Category{CategoryCervezas, CategoryBebidas, CategoryJugos, CategoryVinos, CategoryDestilados}
}

func (c Category) Valid() bool {
	switch c {
	case CategoryCervezas, CategoryBebidas, CategoryJugos, CategoryVinos, CategoryDestilados:
		return true
	}
	return false
}

// VolumeUnit is the container size unit.
type VolumeUnit string

const (
	UnitMilliliter VolumeUnit = "ml"
	UnitLiter      VolumeUnit = "l"
)

func (u VolumeUnit) Valid() bool { return u == UnitMilliliter || u == UnitLiter }

// Volume describes the container size of a product.
type Volume struct {
	Quantity int        `json:"quantity"`
	Unit     VolumeUnit `json:"unit"`
}

// PackSize is the number of units per pack.
type PackSize int

func (p PackSize) Valid() bool {
	switch p {
	case 6, 8, 12, 24:
		return true
	}
	return false
}

// Margin is the profit margin percentage applied on top of cost.
type Margin int

func (m Margin) Valid() bool {
	switch m {
	case 11, 21, 30, 35, 40:
		return true
	}
	return false
}

// Product is a catalog entry. Code is the identity key (scanned barcode).
// VATAmount and SalePrice are derived from PurchasePrice and Margin; stock
// always satisfies TotalUnits = PackCount*UnitsPerPack + CustomUnits.
type Product struct {
	Code          string    `json:"code"`
	Name          string    `json:"name"`
	Category      Category  `json:"category"`
	Volume        Volume    `json:"volume"`
	Photo         string    `json:"photo,omitempty"` // opaque data-URL from the device camera
	UnitsPerPack  PackSize  `json:"unitsPerPack"`
	PackCount     int       `json:"packCount"`
	CustomUnits   int       `json:"customUnits"`
	TotalUnits    int       `json:"totalUnits"`
	PurchasePrice string    `json:"purchasePrice"`
	Margin        Margin    `json:"profitMarginPercent"`
	VATAmount     string    `json:"vatAmount,omitempty"`
	SalePrice     string    `json:"salePrice,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// RecomputeTotals derives TotalUnits from the pack/custom split.
func (p *Product) RecomputeTotals() {
	p.TotalUnits = p.PackCount*int(p.UnitsPerPack) + p.CustomUnits
}

// SetTotalUnits sets the unit count and re-derives the pack/custom split.
// This re-derivation is the canonical way stock is expressed after any change.
func (p *Product) SetTotalUnits(n int) {
	p.TotalUnits = n
	if p.UnitsPerPack > 0 {
		p.PackCount = n / int(p.UnitsPerPack)
		p.CustomUnits = n - p.PackCount*int(p.UnitsPerPack)
	} else {
		p.PackCount = 0
		p.CustomUnits = n
	}
}

// SalePriceValue returns the numeric sale price, 0 if unset or unparsable.
func (p Product) SalePriceValue() float64 { return priceValue(p.SalePrice) }

// PurchasePriceValue returns the numeric purchase price, 0 if unset or unparsable.
func (p Product) PurchasePriceValue() float64 { return priceValue(p.PurchasePrice) }

// StockStatus classifies remaining stock for list/detail views.
type StockStatus string

const (
	InStock    StockStatus = "IN_STOCK"
	LowStock   StockStatus = "LOW_STOCK"
	OutOfStock StockStatus = "OUT_OF_STOCK"
)

// StockStatusFor converts a unit count to IN_STOCK / LOW_STOCK / OUT_OF_STOCK.
func StockStatusFor(units int) StockStatus {
	switch {
	case units >= 5:
		return InStock
	case units > 0:
		return LowStock
	}
	return OutOfStock
}

// Sale is an immutable transaction record. Product fields are a snapshot
// taken at sale time; later edits or deletes do not alter past sales.
type Sale struct {
	ID              string    `json:"id"`
	ProductCode     string    `json:"productCode"`
	ProductName     string    `json:"productName"`
	ProductCategory Category  `json:"productCategory"`
	Quantity        int       `json:"quantitySold"`
	UnitPrice       float64   `json:"unitPrice"`
	Subtotal        float64   `json:"subtotal"`
	SoldAt          time.Time `json:"soldAt"`
}
