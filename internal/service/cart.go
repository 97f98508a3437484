package service

import (
	"context"
	"sync"

	"github.com/fitgirl/storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// ShippingPolicy holds the flat-rate shipping rule: free above the
// threshold, a flat rate below it. Both values come from configuration.
type ShippingPolicy struct {
	FreeThreshold decimal.Decimal
	FlatRate      decimal.Decimal
}

// Cost returns the shipping cost for a subtotal.
func (p ShippingPolicy) Cost(subtotal decimal.Decimal) decimal.Decimal {
	if subtotal.GreaterThanOrEqual(p.FreeThreshold) {
		return decimal.Zero
	}
	return p.FlatRate
}

type cartService struct {
	mu       sync.RWMutex
	carts    map[string][]domain.CartLine
	shipping ShippingPolicy
}

// NewCartService creates an in-memory CartService. Carts are keyed by
// session ID and live for the lifetime of the process.
func NewCartService(shipping ShippingPolicy) domain.CartService {
	return &cartService{
		carts:    make(map[string][]domain.CartLine),
		shipping: shipping,
	}
}

// AddLine adds a line to the session's cart, merging into an existing
// line when the (product, color, size) triple matches.
func (s *cartService) AddLine(ctx context.Context, sessionID string, line domain.CartLine) (*domain.CartSummary, error) {
	if line.Quantity < 1 {
		return nil, domain.ErrInvalidQuantity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[sessionID]
	merged := false
	for i := range lines {
		if lines[i].ProductID == line.ProductID &&
			lines[i].Color.Name == line.Color.Name &&
			lines[i].Size == line.Size {
			lines[i].Quantity += line.Quantity
			merged = true
			break
		}
	}
	if !merged {
		lines = append(lines, line)
	}
	s.carts[sessionID] = lines

	return s.summarize(lines), nil
}

// UpdateQuantity sets the quantity of the line at index, clamped to at
// least 1. A line can only leave the cart through RemoveLine.
func (s *cartService) UpdateQuantity(ctx context.Context, sessionID string, index, quantity int) (*domain.CartSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[sessionID]
	if index < 0 || index >= len(lines) {
		return nil, domain.ErrLineNotFound
	}

	if quantity < 1 {
		quantity = 1
	}
	lines[index].Quantity = quantity

	return s.summarize(lines), nil
}

// RemoveLine deletes the line at index. Not reversible.
func (s *cartService) RemoveLine(ctx context.Context, sessionID string, index int) (*domain.CartSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := s.carts[sessionID]
	if index < 0 || index >= len(lines) {
		return nil, domain.ErrLineNotFound
	}

	lines = append(lines[:index], lines[index+1:]...)
	s.carts[sessionID] = lines

	return s.summarize(lines), nil
}

// Summary returns the cart's lines and totals. Unknown sessions get an
// empty summary rather than an error.
func (s *cartService) Summary(ctx context.Context, sessionID string) (*domain.CartSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.summarize(s.carts[sessionID]), nil
}

// Clear removes every line from the session's cart.
func (s *cartService) Clear(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.carts, sessionID)
	return nil
}

// summarize computes totals over the given lines. Subtotal accumulates
// exact decimals; nothing is rounded here. An empty cart summarizes to
// all zeros.
func (s *cartService) summarize(lines []domain.CartLine) *domain.CartSummary {
	summary := &domain.CartSummary{
		Lines:                make([]domain.CartLine, len(lines)),
		Subtotal:             decimal.Zero,
		Shipping:             decimal.Zero,
		Total:                decimal.Zero,
		AmountToFreeShipping: decimal.Zero,
	}
	copy(summary.Lines, lines)

	if len(lines) == 0 {
		return summary
	}

	for _, l := range lines {
		summary.Subtotal = summary.Subtotal.Add(l.LineTotal())
		summary.ItemCount += l.Quantity
	}

	summary.Shipping = s.shipping.Cost(summary.Subtotal)
	summary.Total = summary.Subtotal.Add(summary.Shipping)

	if remaining := s.shipping.FreeThreshold.Sub(summary.Subtotal); remaining.IsPositive() {
		summary.AmountToFreeShipping = remaining
	}

	return summary
}
