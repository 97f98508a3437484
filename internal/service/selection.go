package service

import (
	"context"
	"sync"

	"github.com/fitgirl/storefront/internal/domain"
)

// selection is one session's in-progress product selection. Chosen
// colors and sizes keep selection order; assign maps size name to the
// chosen color's name.
type selection struct {
	product    domain.Product
	colors     []domain.Color
	sizes      []string
	assign     map[string]string
	quantity   int
	imageIndex int
}

func newSelection(product domain.Product) *selection {
	return &selection{
		product:  product,
		assign:   make(map[string]string),
		quantity: 1,
	}
}

// ready reports whether the selection can be committed: at least one
// size chosen and every chosen size assigned a color.
func (sel *selection) ready() bool {
	if len(sel.sizes) == 0 {
		return false
	}
	for _, size := range sel.sizes {
		if _, ok := sel.assign[size]; !ok {
			return false
		}
	}
	return true
}

func (sel *selection) state() *domain.SelectionState {
	st := &domain.SelectionState{
		ProductID:   sel.product.ID,
		Colors:      make([]domain.Color, len(sel.colors)),
		Sizes:       make([]string, len(sel.sizes)),
		Assignments: make(map[string]string, len(sel.assign)),
		Quantity:    sel.quantity,
		ImageIndex:  sel.imageIndex,
		Ready:       sel.ready(),
	}
	copy(st.Colors, sel.colors)
	copy(st.Sizes, sel.sizes)
	for k, v := range sel.assign {
		st.Assignments[k] = v
	}
	return st
}

type selectionService struct {
	mu      sync.Mutex
	catalog domain.CatalogService
	cart    domain.CartService
	active  map[string]*selection
}

// NewSelectionService creates a SelectionService backed by the catalog
// for product lookups and committing into the given cart.
func NewSelectionService(catalog domain.CatalogService, cart domain.CartService) domain.SelectionService {
	return &selectionService{
		catalog: catalog,
		cart:    cart,
		active:  make(map[string]*selection),
	}
}

// Open starts a fresh selection for the product, replacing whatever
// selection the session had. Everything resets: chosen colors and
// sizes, assignments, quantity back to 1, gallery cursor to 0.
func (s *selectionService) Open(ctx context.Context, sessionID, productID string) (*domain.SelectionState, error) {
	product, err := s.catalog.Get(ctx, productID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sel := newSelection(*product)
	s.active[sessionID] = sel
	return sel.state(), nil
}

// Get returns the session's active selection.
func (s *selectionService) Get(ctx context.Context, sessionID string) (*domain.SelectionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sel, ok := s.active[sessionID]
	if !ok {
		return nil, domain.ErrNoSelection
	}
	return sel.state(), nil
}

// ToggleColor adds or removes a chosen color. Removing a color drops
// every size assignment pointing at it; the sizes themselves stay
// chosen, just unassigned.
func (s *selectionService) ToggleColor(ctx context.Context, sessionID, colorName string) (*domain.SelectionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sel, ok := s.active[sessionID]
	if !ok {
		return nil, domain.ErrNoSelection
	}

	color, ok := sel.product.ColorByName(colorName)
	if !ok {
		return nil, domain.Errorf(domain.EINVALID, "selection.toggle_color", "unknown color: %s", colorName)
	}

	for i, c := range sel.colors {
		if c.Name == color.Name {
			sel.colors = append(sel.colors[:i], sel.colors[i+1:]...)
			for size, assigned := range sel.assign {
				if assigned == color.Name {
					delete(sel.assign, size)
				}
			}
			return sel.state(), nil
		}
	}

	sel.colors = append(sel.colors, color)
	return sel.state(), nil
}

// ToggleSize adds or removes a chosen size. A newly added size starts
// unassigned; removing one drops its assignment. Unavailable sizes are
// rejected.
func (s *selectionService) ToggleSize(ctx context.Context, sessionID, sizeName string) (*domain.SelectionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sel, ok := s.active[sessionID]
	if !ok {
		return nil, domain.ErrNoSelection
	}

	size, ok := sel.product.SizeByName(sizeName)
	if !ok {
		return nil, domain.Errorf(domain.EINVALID, "selection.toggle_size", "unknown size: %s", sizeName)
	}
	if !size.Available {
		return nil, domain.ErrSizeUnavailable
	}

	for i, name := range sel.sizes {
		if name == size.Name {
			sel.sizes = append(sel.sizes[:i], sel.sizes[i+1:]...)
			delete(sel.assign, size.Name)
			return sel.state(), nil
		}
	}

	sel.sizes = append(sel.sizes, size.Name)
	return sel.state(), nil
}

// Associate assigns a chosen color to a chosen size. Both must already
// be members of the chosen sets.
func (s *selectionService) Associate(ctx context.Context, sessionID, sizeName, colorName string) (*domain.SelectionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sel, ok := s.active[sessionID]
	if !ok {
		return nil, domain.ErrNoSelection
	}

	chosenSize := false
	for _, name := range sel.sizes {
		if name == sizeName {
			chosenSize = true
			break
		}
	}
	if !chosenSize {
		return nil, domain.Errorf(domain.EINVALID, "selection.associate", "size %s is not among the chosen sizes", sizeName)
	}

	chosenColor := false
	for _, c := range sel.colors {
		if c.Name == colorName {
			chosenColor = true
			break
		}
	}
	if !chosenColor {
		return nil, domain.ErrColorNotChosen
	}

	sel.assign[sizeName] = colorName
	return sel.state(), nil
}

// SetQuantity sets the selection quantity, floored at 1.
func (s *selectionService) SetQuantity(ctx context.Context, sessionID string, quantity int) (*domain.SelectionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sel, ok := s.active[sessionID]
	if !ok {
		return nil, domain.ErrNoSelection
	}

	if quantity < 1 {
		quantity = 1
	}
	sel.quantity = quantity
	return sel.state(), nil
}

// SetImageIndex moves the gallery cursor.
func (s *selectionService) SetImageIndex(ctx context.Context, sessionID string, index int) (*domain.SelectionState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sel, ok := s.active[sessionID]
	if !ok {
		return nil, domain.ErrNoSelection
	}

	if index < 0 || index >= len(sel.product.Images) {
		return nil, domain.Invalid("selection.set_image", "image index out of range")
	}
	sel.imageIndex = index
	return sel.state(), nil
}

// Commit adds the selection to the session's cart. The committed line
// uses the first chosen size (selection order) and its assigned color;
// additional chosen sizes do not produce extra lines. An unready
// selection is rejected and nothing changes.
func (s *selectionService) Commit(ctx context.Context, sessionID string) (*domain.CartSummary, error) {
	s.mu.Lock()

	sel, ok := s.active[sessionID]
	if !ok {
		s.mu.Unlock()
		return nil, domain.ErrNoSelection
	}
	if !sel.ready() {
		s.mu.Unlock()
		return nil, domain.ErrIncompleteSelection
	}

	size := sel.sizes[0]
	color, _ := sel.product.ColorByName(sel.assign[size])

	line := domain.CartLine{
		ProductID:   sel.product.ID,
		ProductName: sel.product.Name,
		UnitPrice:   sel.product.Price,
		Image:       sel.product.Images[0],
		Color:       color,
		Size:        size,
		Quantity:    sel.quantity,
	}
	s.mu.Unlock()

	return s.cart.AddLine(ctx, sessionID, line)
}

// Close discards the session's selection.
func (s *selectionService) Close(ctx context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.active, sessionID)
	return nil
}
