package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/fitgirl/storefront/internal"
	"github.com/fitgirl/storefront/internal/catalog"
	"github.com/fitgirl/storefront/internal/cookie"
	"github.com/fitgirl/storefront/internal/handler/storefront"
	"github.com/fitgirl/storefront/internal/middleware"
	"github.com/fitgirl/storefront/internal/money"
	"github.com/fitgirl/storefront/internal/router"
	"github.com/fitgirl/storefront/internal/routes"
	"github.com/fitgirl/storefront/internal/service"
)

func run() error {
	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Load the product catalog
	store, err := catalog.Default()
	if err != nil {
		return fmt.Errorf("catalog initialization failed: %w", err)
	}
	logger.Info("Catalog loaded", "products", len(store.List(context.Background())))

	// Initialize services
	cartService := service.NewCartService(service.ShippingPolicy{
		FreeThreshold: cfg.Shipping.FreeThreshold,
		FlatRate:      cfg.Shipping.FlatRate,
	})
	selectionService := service.NewSelectionService(store, cartService)
	checkoutService := service.NewCheckoutService(
		cartService,
		money.NewFormatter(cfg.Checkout.CurrencyPrefix),
		cfg.Checkout.WhatsAppNumber,
	)

	// Cookie configuration shared by session and theme handlers
	cookies := cookie.NewConfig(cfg.SecureCookies)

	// Build route dependencies
	deps := routes.StorefrontDeps{
		ProductHandler:   storefront.NewProductHandler(store),
		SelectionHandler: storefront.NewSelectionHandler(selectionService, cookies),
		CartHandler:      storefront.NewCartHandler(cartService),
		CheckoutHandler:  storefront.NewCheckoutHandler(checkoutService),
		ThemeHandler:     storefront.NewThemeHandler(cookies),
	}

	// Initialize Prometheus metrics
	metrics := middleware.NewMetrics("fitgirl")

	r := router.New(
		router.Recovery(logger),
		middleware.RequestID,
		metrics.Middleware,
		middleware.MaxBodySize(middleware.DefaultMaxBodySize),
		router.CORS(cfg.AllowedOrigins),
		router.Logger(logger),
		middleware.WithRequestLogger(logger),
	)

	// Metrics endpoint (protect via firewall in production)
	r.Get("/metrics", func(w http.ResponseWriter, req *http.Request) {
		metrics.Handler().ServeHTTP(w, req)
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	routes.RegisterStorefrontRoutes(r, deps)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("Starting storefront server", "address", addr, "env", cfg.Env)

	if err := http.ListenAndServe(addr, r); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
