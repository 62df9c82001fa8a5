package domain

import (
	"math"
	"strconv"
)

// IVARate is the fixed value-added tax applied on the purchase price.
const IVARate = 0.19

// ComputePricing derives the VAT amount and sale price from a purchase price
// and a margin:
//
//	vat  = purchase * 0.19
//	cost = purchase + vat
//	sale = cost + cost*margin/100
//
// Both results are rounded to 2 decimals. If the purchase price is absent,
// unparsable or <= 0, both derived values reset to empty.
func ComputePricing(purchasePrice string, m Margin) (vat, sale string) {
	pp := priceValue(purchasePrice)
	if pp <= 0 {
		return "", ""
	}
	v := Round2(pp * IVARate)
	cost := pp + v
	s := Round2(cost + cost*float64(m)/100)
	return formatPrice(v), formatPrice(s)
}

func priceValue(s string) float64 {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}

func formatPrice(f float64) string { return strconv.FormatFloat(f, 'f', 2, 64) }

// Round2 rounds a money amount to 2 decimals.
func Round2(f float64) float64 { return math.Round(f*100) / 100 }
