package routes

import (
	"github.com/fitgirl/storefront/internal/router"
)

// RegisterStorefrontRoutes registers every shopper-facing JSON route.
func RegisterStorefrontRoutes(r *router.Router, deps StorefrontDeps) {
	// Catalog
	r.Get("/products", deps.ProductHandler.List)
	r.Get("/products/{id}", deps.ProductHandler.Get)
	r.Get("/categories", deps.ProductHandler.Categories)

	// Product detail selection
	r.Post("/products/{id}/selection", deps.SelectionHandler.Open)
	r.Get("/selection", deps.SelectionHandler.Get)
	r.Post("/selection/color", deps.SelectionHandler.ToggleColor)
	r.Post("/selection/size", deps.SelectionHandler.ToggleSize)
	r.Post("/selection/associate", deps.SelectionHandler.Associate)
	r.Put("/selection/quantity", deps.SelectionHandler.SetQuantity)
	r.Put("/selection/image", deps.SelectionHandler.SetImage)
	r.Post("/selection/add-to-cart", deps.SelectionHandler.AddToCart)
	r.Post("/selection/buy-now", deps.SelectionHandler.BuyNow)
	r.Delete("/selection", deps.SelectionHandler.Close)

	// Cart
	r.Get("/cart", deps.CartHandler.View)
	r.Put("/cart/lines/{index}", deps.CartHandler.UpdateLine)
	r.Delete("/cart/lines/{index}", deps.CartHandler.RemoveLine)
	r.Delete("/cart", deps.CartHandler.Clear)

	// Checkout
	r.Post("/checkout", deps.CheckoutHandler.Checkout)

	// Theme preference
	r.Get("/theme", deps.ThemeHandler.Get)
	r.Put("/theme", deps.ThemeHandler.Put)
}
