package model

import "github.com/shopspring/decimal"

var (
	// DiscountThreshold is the running total at or above which the discount applies.
	DiscountThreshold = decimal.NewFromInt(1000)
	// DiscountRate is the flat discount fraction.
	DiscountRate = decimal.RequireFromString("0.1")
)

// Summary is the order summary shown next to the cart.
//
// @Description Order summary with discount applied
// @Example {"subtotal": 1200, "discount": 120, "total": 1080, "itemCount": 12}
type Summary struct {
	// Subtotal is the running total before discount
	Subtotal decimal.Decimal `json:"subtotal" swaggertype:"number" example:"1200"`
	// Discount is the amount taken off the subtotal
	Discount decimal.Decimal `json:"discount" swaggertype:"number" example:"120"`
	// Total is the amount due
	Total decimal.Decimal `json:"total" swaggertype:"number" example:"1080"`
	// ItemCount is the number of ordered units across all lines
	ItemCount int `json:"itemCount" example:"12"`
} // @name Summary

// Discount returns 10% of the running total once it reaches DiscountThreshold.
func Discount(s CartState) decimal.Decimal {
	if s.RunningTotal.GreaterThanOrEqual(DiscountThreshold) {
		return s.RunningTotal.Mul(DiscountRate)
	}
	return decimal.Zero
}

// LinesTotal sums the line totals independently of the running total.
func LinesTotal(s CartState) decimal.Decimal {
	sum := decimal.Zero
	for _, l := range s.Lines {
		sum = sum.Add(l.Total)
	}
	return sum
}

// TotalWithDiscount returns the sum of line totals minus Discount when the sum
// reaches DiscountThreshold.
func TotalWithDiscount(s CartState) decimal.Decimal {
	sum := LinesTotal(s)
	if sum.GreaterThanOrEqual(DiscountThreshold) {
		return sum.Sub(Discount(s))
	}
	return sum
}

// Summarize builds the order summary for s.
func Summarize(s CartState) Summary {
	items := 0
	for _, l := range s.Lines {
		items += l.OrderedQuantity
	}
	return Summary{
		Subtotal:  s.RunningTotal,
		Discount:  Discount(s),
		Total:     TotalWithDiscount(s),
		ItemCount: items,
	}
}
