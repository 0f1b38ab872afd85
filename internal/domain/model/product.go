// Package model defines the core domain entities for the checkout service.
//
// Importing model sets decimal.MarshalJSONWithoutQuotes for the whole process,
// so every decimal.Decimal encodes as a JSON number rather than a string.
// Prices and totals on the HTTP API and in the Redis cache rely on this.
package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Product is an immutable catalog entry.
//
// @Description Catalog product with its remaining stock
// @Example {"id": 1, "name": "Laptop", "price": 100, "availableCount": 20}
type Product struct {
	// ID uniquely identifies the product in the catalog
	ID int64 `json:"id" example:"1"`
	// Name is the display name
	Name string `json:"name" example:"Laptop"`
	// Price is the unit price
	Price decimal.Decimal `json:"price" swaggertype:"number" example:"100"`
	// AvailableCount is the stock remaining
	AvailableCount int `json:"availableCount" example:"20"`
} // @name Product

// Validate reports whether the product can be placed in a cart.
func (p Product) Validate() error {
	if p.Price.IsNegative() {
		return fmt.Errorf("product %d: price must not be negative", p.ID)
	}
	if p.AvailableCount < 0 {
		return fmt.Errorf("product %d: availableCount must not be negative", p.ID)
	}
	return nil
}

// ValidateCatalog checks every product and rejects duplicate ids.
func ValidateCatalog(products []Product) error {
	seen := make(map[int64]struct{}, len(products))
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return err
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("product %d: duplicate id", p.ID)
		}
		seen[p.ID] = struct{}{}
	}
	return nil
}

// DefaultCatalog is the built-in catalog used when no other source is configured.
func DefaultCatalog() []Product {
	return []Product{
		{ID: 1, Name: "Laptop", Price: decimal.NewFromInt(100), AvailableCount: 20},
		{ID: 2, Name: "Smartphone", Price: decimal.NewFromInt(250), AvailableCount: 12},
		{ID: 3, Name: "Headphones", Price: decimal.RequireFromString("49.99"), AvailableCount: 35},
		{ID: 4, Name: "Monitor", Price: decimal.NewFromInt(180), AvailableCount: 8},
		{ID: 5, Name: "Keyboard", Price: decimal.RequireFromString("29.5"), AvailableCount: 0},
	}
}
