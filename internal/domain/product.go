package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

var ErrProductNotFound = &Error{Code: ENOTFOUND, Message: "Product not found"}

// CatalogService provides read access to the product catalog.
// The catalog is loaded once at startup and never changes afterwards.
type CatalogService interface {
	// List returns every product in catalog order.
	List(ctx context.Context) []Product

	// Get returns the product with the given ID.
	Get(ctx context.Context, id string) (*Product, error)

	// ListByCategory returns products belonging to the given category,
	// preserving catalog order.
	ListByCategory(ctx context.Context, category string) []Product

	// Categories returns the distinct categories in catalog order.
	Categories(ctx context.Context) []string
}

// Product is a catalog entry. Products are immutable for the lifetime
// of the process.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Images      []string        `json:"images"`
	Colors      []Color         `json:"colors"`
	Sizes       []Size          `json:"sizes"`
	Category    string          `json:"category"`
}

// Color is a selectable product color with its display swatch value.
type Color struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Size is a selectable product size. Availability differs per product.
type Size struct {
	Name      string `json:"name"`
	Available bool   `json:"available"`
}

// ColorByName returns the product color with the given name.
func (p *Product) ColorByName(name string) (Color, bool) {
	for _, c := range p.Colors {
		if c.Name == name {
			return c, true
		}
	}
	return Color{}, false
}

// SizeByName returns the product size with the given name.
func (p *Product) SizeByName(name string) (Size, bool) {
	for _, s := range p.Sizes {
		if s.Name == name {
			return s, true
		}
	}
	return Size{}, false
}
