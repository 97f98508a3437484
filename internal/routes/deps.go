// Package routes wires handlers onto the router. Registration lives here
// so cmd/server stays a thin composition root.
package routes

import (
	"github.com/fitgirl/storefront/internal/handler/storefront"
)

// StorefrontDeps contains the handlers for all shopper-facing routes.
type StorefrontDeps struct {
	ProductHandler   *storefront.ProductHandler
	SelectionHandler *storefront.SelectionHandler
	CartHandler      *storefront.CartHandler
	CheckoutHandler  *storefront.CheckoutHandler
	ThemeHandler     *storefront.ThemeHandler
}
