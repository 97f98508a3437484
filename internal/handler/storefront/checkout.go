package storefront

import (
	"net/http"

	"github.com/fitgirl/storefront/internal/domain"
	"github.com/fitgirl/storefront/internal/handler"
)

// CheckoutHandler turns a session cart plus customer details into the
// order handoff.
type CheckoutHandler struct {
	checkout domain.CheckoutService
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(checkout domain.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// Checkout handles POST /checkout. On success it returns the rendered
// order message and the WhatsApp URL; the frontend performs the actual
// redirect and clears the cart afterwards.
func (h *CheckoutHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var fields domain.CheckoutFields
	if err := handler.DecodeJSON(r, &fields); err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handoff, err := h.checkout.Checkout(r.Context(), GetSessionID(r), fields)
	if err != nil {
		handler.RespondError(w, r, err)
		return
	}

	handler.RespondJSON(w, http.StatusOK, handoff)
}
