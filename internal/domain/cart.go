package domain

import (
	"context"

	"github.com/shopspring/decimal"
)

// =============================================================================
// CART DOMAIN ERRORS
// =============================================================================

var (
	ErrCartNotFound    = &Error{Code: ENOTFOUND, Message: "Cart not found"}
	ErrLineNotFound    = &Error{Code: ENOTFOUND, Message: "Cart line not found"}
	ErrInvalidQuantity = &Error{Code: EINVALID, Message: "Quantity must be at least 1"}
	ErrEmptyCart       = &Error{Code: EINVALID, Message: "Cart is empty"}
)

// CartService provides business logic for shopping cart operations.
// Carts are keyed by session ID and live only in process memory.
type CartService interface {
	// AddLine adds a line to the session's cart. Lines sharing the same
	// (product, color, size) triple are merged by adding quantities.
	AddLine(ctx context.Context, sessionID string, line CartLine) (*CartSummary, error)

	// UpdateQuantity sets the quantity of the line at the given position.
	// Quantities below 1 are clamped to 1; a line is never removed this way.
	UpdateQuantity(ctx context.Context, sessionID string, index, quantity int) (*CartSummary, error)

	// RemoveLine deletes the line at the given position.
	RemoveLine(ctx context.Context, sessionID string, index int) (*CartSummary, error)

	// Summary returns the cart's lines and calculated totals.
	// An unknown session yields an empty summary, not an error.
	Summary(ctx context.Context, sessionID string) (*CartSummary, error)

	// Clear removes every line from the session's cart.
	Clear(ctx context.Context, sessionID string) error
}

// CartLine is one cart entry: a unique product+color+size combination
// and its quantity.
type CartLine struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Image       string          `json:"image"`
	Color       Color           `json:"color"`
	Size        string          `json:"size"`
	Quantity    int             `json:"quantity"`
}

// LineTotal returns unit price times quantity, unrounded.
func (l CartLine) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// CartSummary aggregates cart lines with calculated totals.
// Monetary values carry exact decimal precision; rounding to two digits
// happens only when a value is formatted for display.
type CartSummary struct {
	Lines     []CartLine      `json:"lines"`
	Subtotal  decimal.Decimal `json:"subtotal"`
	Shipping  decimal.Decimal `json:"shipping"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"item_count"`

	// AmountToFreeShipping is how much more the customer must add to
	// reach the free-shipping threshold. Zero once the threshold is met.
	AmountToFreeShipping decimal.Decimal `json:"amount_to_free_shipping"`
}
