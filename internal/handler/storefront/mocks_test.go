package storefront

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/fitgirl/storefront/internal/cookie"
	"github.com/fitgirl/storefront/internal/domain"
)

// mockCatalogService implements domain.CatalogService for testing.
type mockCatalogService struct {
	listFunc           func(ctx context.Context) []domain.Product
	getFunc            func(ctx context.Context, id string) (*domain.Product, error)
	listByCategoryFunc func(ctx context.Context, category string) []domain.Product
	categoriesFunc     func(ctx context.Context) []string
}

func (m *mockCatalogService) List(ctx context.Context) []domain.Product {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil
}

func (m *mockCatalogService) Get(ctx context.Context, id string) (*domain.Product, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, id)
	}
	return nil, domain.ErrProductNotFound
}

func (m *mockCatalogService) ListByCategory(ctx context.Context, category string) []domain.Product {
	if m.listByCategoryFunc != nil {
		return m.listByCategoryFunc(ctx, category)
	}
	return nil
}

func (m *mockCatalogService) Categories(ctx context.Context) []string {
	if m.categoriesFunc != nil {
		return m.categoriesFunc(ctx)
	}
	return nil
}

// mockCartService implements domain.CartService for testing.
type mockCartService struct {
	addLineFunc        func(ctx context.Context, sessionID string, line domain.CartLine) (*domain.CartSummary, error)
	updateQuantityFunc func(ctx context.Context, sessionID string, index, quantity int) (*domain.CartSummary, error)
	removeLineFunc     func(ctx context.Context, sessionID string, index int) (*domain.CartSummary, error)
	summaryFunc        func(ctx context.Context, sessionID string) (*domain.CartSummary, error)
	clearFunc          func(ctx context.Context, sessionID string) error
}

func (m *mockCartService) AddLine(ctx context.Context, sessionID string, line domain.CartLine) (*domain.CartSummary, error) {
	if m.addLineFunc != nil {
		return m.addLineFunc(ctx, sessionID, line)
	}
	return &domain.CartSummary{}, nil
}

func (m *mockCartService) UpdateQuantity(ctx context.Context, sessionID string, index, quantity int) (*domain.CartSummary, error) {
	if m.updateQuantityFunc != nil {
		return m.updateQuantityFunc(ctx, sessionID, index, quantity)
	}
	return &domain.CartSummary{}, nil
}

func (m *mockCartService) RemoveLine(ctx context.Context, sessionID string, index int) (*domain.CartSummary, error) {
	if m.removeLineFunc != nil {
		return m.removeLineFunc(ctx, sessionID, index)
	}
	return &domain.CartSummary{}, nil
}

func (m *mockCartService) Summary(ctx context.Context, sessionID string) (*domain.CartSummary, error) {
	if m.summaryFunc != nil {
		return m.summaryFunc(ctx, sessionID)
	}
	return &domain.CartSummary{}, nil
}

func (m *mockCartService) Clear(ctx context.Context, sessionID string) error {
	if m.clearFunc != nil {
		return m.clearFunc(ctx, sessionID)
	}
	return nil
}

// mockSelectionService implements domain.SelectionService for testing.
type mockSelectionService struct {
	openFunc          func(ctx context.Context, sessionID, productID string) (*domain.SelectionState, error)
	getFunc           func(ctx context.Context, sessionID string) (*domain.SelectionState, error)
	toggleColorFunc   func(ctx context.Context, sessionID, colorName string) (*domain.SelectionState, error)
	toggleSizeFunc    func(ctx context.Context, sessionID, sizeName string) (*domain.SelectionState, error)
	associateFunc     func(ctx context.Context, sessionID, sizeName, colorName string) (*domain.SelectionState, error)
	setQuantityFunc   func(ctx context.Context, sessionID string, quantity int) (*domain.SelectionState, error)
	setImageIndexFunc func(ctx context.Context, sessionID string, index int) (*domain.SelectionState, error)
	commitFunc        func(ctx context.Context, sessionID string) (*domain.CartSummary, error)
	closeFunc         func(ctx context.Context, sessionID string) error
}

func (m *mockSelectionService) Open(ctx context.Context, sessionID, productID string) (*domain.SelectionState, error) {
	if m.openFunc != nil {
		return m.openFunc(ctx, sessionID, productID)
	}
	return &domain.SelectionState{}, nil
}

func (m *mockSelectionService) Get(ctx context.Context, sessionID string) (*domain.SelectionState, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, sessionID)
	}
	return &domain.SelectionState{}, nil
}

func (m *mockSelectionService) ToggleColor(ctx context.Context, sessionID, colorName string) (*domain.SelectionState, error) {
	if m.toggleColorFunc != nil {
		return m.toggleColorFunc(ctx, sessionID, colorName)
	}
	return &domain.SelectionState{}, nil
}

func (m *mockSelectionService) ToggleSize(ctx context.Context, sessionID, sizeName string) (*domain.SelectionState, error) {
	if m.toggleSizeFunc != nil {
		return m.toggleSizeFunc(ctx, sessionID, sizeName)
	}
	return &domain.SelectionState{}, nil
}

func (m *mockSelectionService) Associate(ctx context.Context, sessionID, sizeName, colorName string) (*domain.SelectionState, error) {
	if m.associateFunc != nil {
		return m.associateFunc(ctx, sessionID, sizeName, colorName)
	}
	return &domain.SelectionState{}, nil
}

func (m *mockSelectionService) SetQuantity(ctx context.Context, sessionID string, quantity int) (*domain.SelectionState, error) {
	if m.setQuantityFunc != nil {
		return m.setQuantityFunc(ctx, sessionID, quantity)
	}
	return &domain.SelectionState{}, nil
}

func (m *mockSelectionService) SetImageIndex(ctx context.Context, sessionID string, index int) (*domain.SelectionState, error) {
	if m.setImageIndexFunc != nil {
		return m.setImageIndexFunc(ctx, sessionID, index)
	}
	return &domain.SelectionState{}, nil
}

func (m *mockSelectionService) Commit(ctx context.Context, sessionID string) (*domain.CartSummary, error) {
	if m.commitFunc != nil {
		return m.commitFunc(ctx, sessionID)
	}
	return &domain.CartSummary{}, nil
}

func (m *mockSelectionService) Close(ctx context.Context, sessionID string) error {
	if m.closeFunc != nil {
		return m.closeFunc(ctx, sessionID)
	}
	return nil
}

// mockCheckoutService implements domain.CheckoutService for testing.
type mockCheckoutService struct {
	checkoutFunc func(ctx context.Context, sessionID string, fields domain.CheckoutFields) (*domain.OrderHandoff, error)
}

func (m *mockCheckoutService) Checkout(ctx context.Context, sessionID string, fields domain.CheckoutFields) (*domain.OrderHandoff, error) {
	if m.checkoutFunc != nil {
		return m.checkoutFunc(ctx, sessionID, fields)
	}
	return &domain.OrderHandoff{}, nil
}

func testCookieConfig() *cookie.Config {
	return cookie.NewConfig(false)
}

func withSessionCookie(r *http.Request, sessionID string) *http.Request {
	r.AddCookie(&http.Cookie{Name: cookie.SessionCookieName, Value: sessionID})
	return r
}

func sessionCookieValue(rec *httptest.ResponseRecorder) string {
	for _, c := range rec.Result().Cookies() {
		if c.Name == cookie.SessionCookieName {
			return c.Value
		}
	}
	return ""
}
