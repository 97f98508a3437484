package domain

import "context"

// =============================================================================
// SELECTION DOMAIN ERRORS
// =============================================================================

var (
	ErrNoSelection         = &Error{Code: ENOTFOUND, Message: "No product selection is open"}
	ErrIncompleteSelection = &Error{Code: EINVALID, Message: "Please choose a color and a size"}
	ErrSizeUnavailable     = &Error{Code: EINVALID, Message: "Size is not available"}
	ErrColorNotChosen      = &Error{Code: EINVALID, Message: "Color is not among the chosen colors"}
)

// SelectionService tracks the transient per-session product selection:
// the working set of chosen colors and sizes, the size-to-color
// assignment, and the quantity, gathered before committing to the cart.
//
// A session holds at most one active selection. Opening a product detail
// view replaces any previous selection and resets everything, so no
// state leaks between products.
type SelectionService interface {
	// Open starts a fresh selection for the given product, discarding
	// any selection the session had before.
	Open(ctx context.Context, sessionID, productID string) (*SelectionState, error)

	// Get returns the session's active selection.
	Get(ctx context.Context, sessionID string) (*SelectionState, error)

	// ToggleColor adds the named color to the chosen set, or removes it
	// if already chosen. Removing a color also removes every size
	// assignment pointing at it; those sizes stay chosen but unassigned.
	ToggleColor(ctx context.Context, sessionID, colorName string) (*SelectionState, error)

	// ToggleSize adds the named size to the chosen set, or removes it
	// (and its assignment) if already chosen. Unavailable sizes are
	// rejected.
	ToggleSize(ctx context.Context, sessionID, sizeName string) (*SelectionState, error)

	// Associate assigns a chosen color to a chosen size.
	Associate(ctx context.Context, sessionID, sizeName, colorName string) (*SelectionState, error)

	// SetQuantity sets the selection quantity, clamped to at least 1.
	SetQuantity(ctx context.Context, sessionID string, quantity int) (*SelectionState, error)

	// SetImageIndex moves the image gallery cursor.
	SetImageIndex(ctx context.Context, sessionID string, index int) (*SelectionState, error)

	// Commit adds the selection to the session's cart. It fails with
	// ErrIncompleteSelection, mutating nothing, unless the selection is
	// ready: at least one size chosen and every chosen size assigned a
	// color. The committed line uses the first chosen size (selection
	// order) and its assigned color.
	Commit(ctx context.Context, sessionID string) (*CartSummary, error)

	// Close discards the session's selection, as when the detail view
	// closes.
	Close(ctx context.Context, sessionID string) error
}

// SelectionState is a snapshot of an in-progress selection.
type SelectionState struct {
	ProductID string `json:"product_id"`

	// Colors  holds the chosen colors in selection order.
	// Sizes holds the chosen size names in selection order.
	Colors []Color  `json:"colors"`
	Sizes  []string `json:"sizes"`

	// Assignments maps each assigned size name to a chosen color name.
	// Every key is a member of Sizes; every value names a member of Colors.
	Assignments map[string]string `json:"assignments"`

	Quantity   int  `json:"quantity"`
	ImageIndex int  `json:"image_index"`
	Ready      bool `json:"ready"`
}
