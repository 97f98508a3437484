// Package catalog holds the immutable product catalog. The catalog is
// built once at startup from static seed data and is read-only for the
// lifetime of the process.
package catalog

import (
	"context"
	"fmt"

	"github.com/fitgirl/storefront/internal/domain"
)

// Store is an in-memory, read-only product catalog.
type Store struct {
	products   []domain.Product
	byID       map[string]int
	categories []string
}

// NewStore builds a catalog from fully formed product records.
// It enforces the catalog invariants: unique IDs, non-negative prices,
// and non-empty image, color, and size sets with unique names.
func NewStore(products []domain.Product) (*Store, error) {
	s := &Store{
		products: products,
		byID:     make(map[string]int, len(products)),
	}

	seenCategory := make(map[string]bool)
	for i, p := range products {
		if p.ID == "" {
			return nil, fmt.Errorf("product %d: empty ID", i)
		}
		if _, dup := s.byID[p.ID]; dup {
			return nil, fmt.Errorf("product %q: duplicate ID", p.ID)
		}
		if p.Price.IsNegative() {
			return nil, fmt.Errorf("product %q: negative price", p.ID)
		}
		if len(p.Images) == 0 {
			return nil, fmt.Errorf("product %q: no images", p.ID)
		}
		if len(p.Colors) == 0 {
			return nil, fmt.Errorf("product %q: no colors", p.ID)
		}
		if len(p.Sizes) == 0 {
			return nil, fmt.Errorf("product %q: no sizes", p.ID)
		}

		colorNames := make(map[string]bool, len(p.Colors))
		for _, c := range p.Colors {
			if colorNames[c.Name] {
				return nil, fmt.Errorf("product %q: duplicate color %q", p.ID, c.Name)
			}
			colorNames[c.Name] = true
		}

		sizeNames := make(map[string]bool, len(p.Sizes))
		for _, sz := range p.Sizes {
			if sizeNames[sz.Name] {
				return nil, fmt.Errorf("product %q: duplicate size %q", p.ID, sz.Name)
			}
			sizeNames[sz.Name] = true
		}

		s.byID[p.ID] = i
		if !seenCategory[p.Category] {
			seenCategory[p.Category] = true
			s.categories = append(s.categories, p.Category)
		}
	}

	return s, nil
}

// Default builds the catalog from the built-in seed data.
func Default() (*Store, error) {
	return NewStore(Seed())
}

// List returns every product in catalog order.
func (s *Store) List(ctx context.Context) []domain.Product {
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Get returns the product with the given ID.
func (s *Store) Get(ctx context.Context, id string) (*domain.Product, error) {
	i, ok := s.byID[id]
	if !ok {
		return nil, domain.NotFound("catalog.get", "product", id)
	}
	p := s.products[i]
	return &p, nil
}

// ListByCategory returns products in the given category, preserving
// catalog order.
func (s *Store) ListByCategory(ctx context.Context, category string) []domain.Product {
	var out []domain.Product
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// Categories returns the distinct categories in catalog order.
func (s *Store) Categories(ctx context.Context) []string {
	out := make([]string, len(s.categories))
	copy(out, s.categories)
	return out
}
