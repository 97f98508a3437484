package service

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"github.com/fitgirl/storefront/internal/domain"
	"github.com/fitgirl/storefront/internal/money"
	"github.com/fitgirl/storefront/internal/whatsapp"
	"github.com/go-playground/validator/v10"
)

type checkoutService struct {
	cart      domain.CartService
	formatter *money.Formatter
	validate  *validator.Validate
	// destination is the shop's WhatsApp number the order is handed to.
	destination string
}

// NewCheckoutService creates a CheckoutService that reads the session's
// cart, validates the customer fields, and renders the order message.
func NewCheckoutService(cart domain.CartService, formatter *money.Formatter, destination string) domain.CheckoutService {
	v := validator.New()

	// Report field errors under their json names so the frontend can
	// match them to form inputs.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &checkoutService{
		cart:        cart,
		formatter:   formatter,
		validate:    v,
		destination: destination,
	}
}

// Checkout validates the fields, renders the order message for the
// session's cart, and builds the handoff URL. No partial submission:
// any missing field fails the whole operation and no message is
// produced.
func (s *checkoutService) Checkout(ctx context.Context, sessionID string, fields domain.CheckoutFields) (*domain.OrderHandoff, error) {
	if err := s.validateFields(fields); err != nil {
		return nil, err
	}

	summary, err := s.cart.Summary(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(summary.Lines) == 0 {
		return nil, domain.ErrEmptyCart
	}

	message := s.FormatOrder(summary, fields)

	return &domain.OrderHandoff{
		Message:     message,
		WhatsAppURL: whatsapp.Link(s.destination, message),
	}, nil
}

func (s *checkoutService) validateFields(fields domain.CheckoutFields) error {
	err := s.validate.Struct(fields)
	if err == nil {
		return nil
	}

	ve := &domain.ValidationError{
		Op:     "checkout.validate",
		Fields: make(map[string]string),
	}
	for _, fe := range err.(validator.ValidationErrors) {
		ve.Fields[fe.Field()] = fmt.Sprintf("%s is required", fe.Field())
	}
	return ve
}

// FormatOrder deterministically renders the order message the shop's
// WhatsApp operator expects: product lines, totals, customer contact,
// delivery address, and the residential-vs-commercial indicator.
func (s *checkoutService) FormatOrder(summary *domain.CartSummary, fields domain.CheckoutFields) string {
	var b strings.Builder

	b.WriteString("🛍️ *NOVO PEDIDO - FitGirl* 🛍️\n\n")

	b.WriteString("📋 *PRODUTOS:*\n")
	for _, line := range summary.Lines {
		fmt.Fprintf(&b, "• %s - %s - %s (%dx) - %s\n",
			line.ProductName, line.Color.Name, line.Size, line.Quantity,
			s.formatter.Format(line.LineTotal()))
	}

	b.WriteString("\n💰 *RESUMO:*\n")
	fmt.Fprintf(&b, "Subtotal: %s\n", s.formatter.Format(summary.Subtotal))
	fmt.Fprintf(&b, "Frete: %s\n", s.formatter.FormatShipping(summary.Shipping))
	fmt.Fprintf(&b, "*Total: %s*\n", s.formatter.Format(summary.Total))

	b.WriteString("\n👤 *DADOS DO CLIENTE:*\n")
	fmt.Fprintf(&b, "Nome: %s\n", fields.Name)
	fmt.Fprintf(&b, "Telefone: %s\n", fields.Phone)
	fmt.Fprintf(&b, "WhatsApp: %s\n", fields.WhatsApp)

	b.WriteString("\n📍 *ENDEREÇO DE ENTREGA:*\n")
	fmt.Fprintf(&b, "%s, %s\n", fields.Address, fields.Number)
	fmt.Fprintf(&b, "Bairro: %s\n", fields.Neighborhood)
	fmt.Fprintf(&b, "CEP: %s\n", fields.CEP)
	fmt.Fprintf(&b, "%s - %s\n", fields.City, fields.State)
	if fields.IsStore {
		b.WriteString("🏪 Entrega em loja\n")
	} else {
		b.WriteString("🏠 Entrega residencial\n")
	}

	b.WriteString("\nObrigada pelo seu pedido! 💕")

	return b.String()
}
