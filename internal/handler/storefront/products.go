// Package storefront holds the JSON handlers for the shopper-facing API.
package storefront

import (
	"net/http"

	"github.com/fitgirl/storefront/internal/domain"
	"github.com/fitgirl/storefront/internal/handler"
)

// ProductHandler serves the read-only catalog routes.
type ProductHandler struct {
	catalog domain.CatalogService
}

// NewProductHandler creates a new product handler.
func NewProductHandler(catalog domain.CatalogService) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// List handles GET /products with an optional ?category= filter.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var products []domain.Product
	if category := r.URL.Query().Get("category"); category != "" {
		products = h.catalog.ListByCategory(ctx, category)
	} else {
		products = h.catalog.List(ctx)
	}

	handler.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"products": products,
	})
}

// Get handles GET /products/{id}.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalog.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, product)
}

// Categories handles GET /categories.
func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	handler.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"categories": h.catalog.Categories(r.Context()),
	})
}
