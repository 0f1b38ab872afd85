package model

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

// DefaultFetchErrorMessage is shown when a catalog fetch fails without a message.
const DefaultFetchErrorMessage = "Some thing went wrong"

// CartLine is a product together with the quantity the user has selected.
//
// @Description Product augmented with the ordered quantity and line subtotal
type CartLine struct {
	Product
	// OrderedQuantity is the number of units selected
	OrderedQuantity int `json:"orderedQuantity" example:"5"`
	// Total is Price * OrderedQuantity
	Total decimal.Decimal `json:"total" swaggertype:"number" example:"500"`
} // @name CartLine

// CanIncrement reports whether Increment would change this line.
func (l CartLine) CanIncrement() bool {
	return l.AvailableCount > 0 && l.OrderedQuantity < math.MaxInt
}

// CanDecrement reports whether Decrement would change this line.
func (l CartLine) CanDecrement() bool {
	return l.OrderedQuantity > 0 && l.AvailableCount < math.MaxInt
}

func newCartLine(p Product) CartLine {
	return CartLine{Product: p, OrderedQuantity: 0, Total: decimal.Zero}
}

// CartState is the checkout state owned by a single caller.
// Transitions mutate it in place and never fail.
//
// @Description Checkout cart state
type CartState struct {
	Lines        []CartLine      `json:"lines"`
	Loading      bool            `json:"loading"`
	Error        *string         `json:"error"`
	RunningTotal decimal.Decimal `json:"runningTotal" swaggertype:"number" example:"0"`
} // @name CartState

// NewCartState returns the empty initial state.
func NewCartState() CartState {
	return CartState{
		Lines:        []CartLine{},
		RunningTotal: decimal.Zero,
	}
}

// FetchStart marks a catalog fetch as in flight.
func (s *CartState) FetchStart() {
	s.Loading = true
	s.Error = nil
}

// FetchSucceeded replaces all lines with the fetched catalog and resets quantities.
// A repeated product id keeps its first occurrence.
func (s *CartState) FetchSucceeded(products []Product) {
	lines := make([]CartLine, 0, len(products))
	seen := make(map[int64]struct{}, len(products))
	for _, p := range products {
		if _, dup := seen[p.ID]; dup {
			continue
		}
		seen[p.ID] = struct{}{}
		lines = append(lines, newCartLine(p))
	}

	s.Loading = false
	s.Error = nil
	s.Lines = lines
	s.RunningTotal = decimal.Zero
}

// FetchFailed records a failed fetch. An empty message is replaced by
// DefaultFetchErrorMessage.
func (s *CartState) FetchFailed(message string) {
	if message == "" {
		message = DefaultFetchErrorMessage
	}
	s.Loading = false
	s.Error = &message
}

func (s *CartState) line(productID int64) *CartLine {
	for i := range s.Lines {
		if s.Lines[i].ID == productID {
			return &s.Lines[i]
		}
	}
	return nil
}

// Line returns a copy of the line for productID.
func (s *CartState) Line(productID int64) (CartLine, bool) {
	if l := s.line(productID); l != nil {
		return *l, true
	}
	return CartLine{}, false
}

// Increment moves one unit of stock into the order.
// It returns false, leaving the state untouched, when the product is unknown or out of stock.
func (s *CartState) Increment(productID int64) bool {
	l := s.line(productID)
	if l == nil || !l.CanIncrement() {
		return false
	}
	l.AvailableCount--
	l.OrderedQuantity++
	l.Total = l.Price.Mul(decimal.NewFromInt(int64(l.OrderedQuantity)))
	s.RunningTotal = s.RunningTotal.Add(l.Price)
	return true
}

// Decrement moves one ordered unit back into stock.
// It returns false, leaving the state untouched, when the product is unknown or not ordered.
func (s *CartState) Decrement(productID int64) bool {
	l := s.line(productID)
	if l == nil || !l.CanDecrement() {
		return false
	}
	l.AvailableCount++
	l.OrderedQuantity--
	l.Total = l.Price.Mul(decimal.NewFromInt(int64(l.OrderedQuantity)))
	s.RunningTotal = s.RunningTotal.Sub(l.Price)
	return true
}

// Dispatch applies a quantity action. Unknown action types are ignored.
func (s *CartState) Dispatch(a Action) bool {
	switch a.Type {
	case ActionIncrement:
		return s.Increment(a.ProductID)
	case ActionDecrement:
		return s.Decrement(a.ProductID)
	default:
		return false
	}
}

// Clone returns a deep copy of the state.
func (s CartState) Clone() CartState {
	out := s
	out.Lines = make([]CartLine, len(s.Lines))
	copy(out.Lines, s.Lines)
	if s.Error != nil {
		msg := *s.Error
		out.Error = &msg
	}
	return out
}

// Validate checks a state received from a client against the cart invariants
// that can be verified without the original catalog.
func (s *CartState) Validate() error {
	seen := make(map[int64]struct{}, len(s.Lines))
	sum := decimal.Zero
	for _, l := range s.Lines {
		if err := l.Product.Validate(); err != nil {
			return err
		}
		if l.OrderedQuantity < 0 {
			return fmt.Errorf("product %d: orderedQuantity must not be negative", l.ID)
		}
		if _, dup := seen[l.ID]; dup {
			return fmt.Errorf("product %d: duplicate line", l.ID)
		}
		seen[l.ID] = struct{}{}
		if !l.Total.Equal(l.Price.Mul(decimal.NewFromInt(int64(l.OrderedQuantity)))) {
			return fmt.Errorf("product %d: total does not match price * orderedQuantity", l.ID)
		}
		sum = sum.Add(l.Total)
	}
	if !s.RunningTotal.Equal(sum) {
		return fmt.Errorf("runningTotal %s does not match line totals %s", s.RunningTotal, sum)
	}
	return nil
}

// Reconcile checks s against the catalog it was loaded from. Every line must
// name a catalog product at the catalog price, and its availableCount plus
// orderedQuantity must equal the catalog stock.
func (s *CartState) Reconcile(products []Product) error {
	byID := make(map[int64]Product, len(products))
	for _, p := range products {
		if _, dup := byID[p.ID]; !dup {
			byID[p.ID] = p
		}
	}
	for _, l := range s.Lines {
		p, ok := byID[l.ID]
		if !ok {
			return fmt.Errorf("product %d: not in catalog", l.ID)
		}
		if !l.Price.Equal(p.Price) {
			return fmt.Errorf("product %d: price %s does not match catalog price %s", l.ID, l.Price, p.Price)
		}
		if l.AvailableCount > p.AvailableCount || l.OrderedQuantity != p.AvailableCount-l.AvailableCount {
			return fmt.Errorf("product %d: availableCount + orderedQuantity must equal catalog stock %d", l.ID, p.AvailableCount)
		}
	}
	return nil
}
