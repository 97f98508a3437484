package storefront

import (
	"net/http"

	"github.com/fitgirl/storefront/internal/cookie"
	"github.com/fitgirl/storefront/internal/domain"
	"github.com/fitgirl/storefront/internal/handler"
)

// SelectionHandler serves the product detail selection routes: the
// working color and size choices a shopper makes before adding to cart.
type SelectionHandler struct {
	selection domain.SelectionService
	cookies   *cookie.Config
}

// NewSelectionHandler creates a new selection handler.
func NewSelectionHandler(selection domain.SelectionService, cookies *cookie.Config) *SelectionHandler {
	return &SelectionHandler{
		selection: selection,
		cookies:   cookies,
	}
}

// Open handles POST /products/{id}/selection. It starts a fresh
// selection for the product, replacing whatever the session had open.
func (h *SelectionHandler) Open(w http.ResponseWriter, r *http.Request) {
	sessionID, err := EnsureSession(w, r, h.cookies)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	state, err := h.selection.Open(r.Context(), sessionID, r.PathValue("id"))
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusCreated, state)
}

// Get handles GET /selection.
func (h *SelectionHandler) Get(w http.ResponseWriter, r *http.Request) {
	state, err := h.selection.Get(r.Context(), GetSessionID(r))
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, state)
}

// ToggleColor handles POST /selection/color.
func (h *SelectionHandler) ToggleColor(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Color string `json:"color"`
	}
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	state, err := h.selection.ToggleColor(r.Context(), GetSessionID(r), req.Color)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, state)
}

// ToggleSize handles POST /selection/size.
func (h *SelectionHandler) ToggleSize(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Size string `json:"size"`
	}
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	state, err := h.selection.ToggleSize(r.Context(), GetSessionID(r), req.Size)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, state)
}

// Associate handles POST /selection/associate, assigning a chosen color
// to a chosen size.
func (h *SelectionHandler) Associate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Size  string `json:"size"`
		Color string `json:"color"`
	}
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	state, err := h.selection.Associate(r.Context(), GetSessionID(r), req.Size, req.Color)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, state)
}

// SetQuantity handles PUT /selection/quantity.
func (h *SelectionHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Quantity int `json:"quantity"`
	}
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	state, err := h.selection.SetQuantity(r.Context(), GetSessionID(r), req.Quantity)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, state)
}

// SetImage handles PUT /selection/image.
func (h *SelectionHandler) SetImage(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Index int `json:"index"`
	}
	if err := handler.DecodeJSON(r, &req); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	state, err := h.selection.SetImageIndex(r.Context(), GetSessionID(r), req.Index)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, state)
}

// AddToCart handles POST /selection/add-to-cart. The selection stays
// open so the shopper can keep adjusting it.
func (h *SelectionHandler) AddToCart(w http.ResponseWriter, r *http.Request) {
	summary, err := h.selection.Commit(r.Context(), GetSessionID(r))
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, summary)
}

// BuyNow handles POST /selection/buy-now: commit the selection and
// close it in one step, sending the shopper straight to the cart.
func (h *SelectionHandler) BuyNow(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	sessionID := GetSessionID(r)

	summary, err := h.selection.Commit(ctx, sessionID)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	if err := h.selection.Close(ctx, sessionID); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, summary)
}

// Close handles DELETE /selection.
func (h *SelectionHandler) Close(w http.ResponseWriter, r *http.Request) {
	if err := h.selection.Close(r.Context(), GetSessionID(r)); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
