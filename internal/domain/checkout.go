package domain

import "context"

// CheckoutService turns a cart plus customer details into an order
// message and its handoff destination. Dispatch is not its business:
// the service ends at producing the string and the URL.
type CheckoutService interface {
	// Checkout validates the customer fields, renders the order message
	// for the session's cart, and builds the WhatsApp handoff URL.
	// Missing required fields yield a ValidationError and no message.
	Checkout(ctx context.Context, sessionID string, fields CheckoutFields) (*OrderHandoff, error)
}

// CheckoutFields are the customer-supplied contact and delivery details.
// Every string field is required; IsStore marks a commercial address.
type CheckoutFields struct {
	Name         string `json:"name" validate:"required"`
	Address      string `json:"address" validate:"required"`
	Number       string `json:"number" validate:"required"`
	Neighborhood string `json:"neighborhood" validate:"required"`
	CEP          string `json:"cep" validate:"required"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	WhatsApp     string `json:"whatsapp" validate:"required"`
	IsStore      bool   `json:"is_store"`
}

// OrderHandoff is the rendered order ready to hand to the messaging
// channel.
type OrderHandoff struct {
	Message     string `json:"message"`
	WhatsAppURL string `json:"whatsapp_url"`
}
