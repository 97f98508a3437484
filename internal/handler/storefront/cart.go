package storefront

import (
	"net/http"
	"strconv"

	"github.com/fitgirl/storefront/internal/domain"
	"github.com/fitgirl/storefront/internal/handler"
)

// CartHandler serves the session cart routes.
type CartHandler struct {
	cart domain.CartService
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(cart domain.CartService) *CartHandler {
	return &CartHandler{cart: cart}
}

// View handles GET /cart.
func (h *CartHandler) View(w http.ResponseWriter, r *http.Request) {
	summary, err := h.cart.Summary(r.Context(), GetSessionID(r))
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, summary)
}

// UpdateLine handles PUT /cart/lines/{index}, setting the quantity of
// one cart line.
func (h *CartHandler) UpdateLine(w http.ResponseWriter, r *http.Request) {
	index, err := lineIndex(r)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	summary, err := h.cart.UpdateQuantity(r.Context(), GetSessionID(r), index, req.Quantity)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, summary)
}

// RemoveLine handles DELETE /cart/lines/{index}.
func (h *CartHandler) RemoveLine(w http.ResponseWriter, r *http.Request) {
	index, err := lineIndex(r)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	summary, err := h.cart.RemoveLine(r.Context(), GetSessionID(r), index)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, summary)
}

// Clear handles DELETE /cart.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.cart.Clear(r.Context(), GetSessionID(r)); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func lineIndex(r *http.Request) (int, error) {
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil || index < 0 {
		return 0, domain.Invalid("storefront.lineIndex", "line index must be a non-negative integer")
	}
	return index, nil
}
