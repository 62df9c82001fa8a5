package domain

// ProductSales is one row of the best-sellers list: cumulative quantity,
// revenue and profit for a single product across the reported period.
type ProductSales struct {
	Code     string  `json:"code"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Revenue  float64 `json:"revenue"`
	Profit   float64 `json:"profit"`
}

// SalesReport summarizes a slice of the ledger. Profit is computed against
// each product's purchase price as it is *now*, not as it was at sale time,
// so historical profit drifts if purchase prices are edited later. Sales of
// since-deleted products contribute zero profit.
type SalesReport struct {
	TotalRevenue float64              `json:"totalRevenue"`
	TotalProfit  float64              `json:"totalProfit"`
	Transactions int                  `json:"transactions"`
	ByCategory   map[Category]float64 `json:"revenueByCategory"`
	TopProducts  []ProductSales       `json:"topProducts"`
}
