package internal

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	Env      string
	LogLevel string
	Port     uint16

	// SecureCookies controls the Secure flag on session and theme cookies.
	SecureCookies bool

	// AllowedOrigins is the CORS allow-list for the JSON API.
	AllowedOrigins []string

	Shipping ShippingConfig
	Checkout CheckoutConfig
}

// ShippingConfig holds the flat-rate shipping rule. Threshold and rate
// are configuration constants, not derived from anything.
type ShippingConfig struct {
	FreeThreshold decimal.Decimal
	FlatRate      decimal.Decimal
}

// CheckoutConfig holds the order handoff destination and display currency.
type CheckoutConfig struct {
	// WhatsAppNumber is the shop's number orders are handed to,
	// in international format without punctuation.
	WhatsAppNumber string

	// CurrencyPrefix is the marker monetary values render with.
	CurrencyPrefix string
}

func NewConfig() (*Config, error) {
	// Try to load .env from current directory, then walk up to find it (max 2 levels)
	err := godotenv.Load()
	if err != nil {
		dir, _ := os.Getwd()
		found := false
		for i := 0; i < 2; i++ {
			dir = filepath.Join(dir, "..")
			if err := godotenv.Load(filepath.Join(dir, ".env")); err == nil {
				found = true
				break
			}
		}
		if !found {
			slog.Default().Warn("Warning: .env file not found, using environment variables and defaults")
		}
	}

	freeThreshold, err := getEnvDecimal("SHIPPING_FREE_THRESHOLD", "150.00")
	if err != nil {
		return nil, fmt.Errorf("invalid SHIPPING_FREE_THRESHOLD: %w", err)
	}
	flatRate, err := getEnvDecimal("SHIPPING_FLAT_RATE", "15.00")
	if err != nil {
		return nil, fmt.Errorf("invalid SHIPPING_FLAT_RATE: %w", err)
	}

	cfg := &Config{
		Env:            getEnv("ENV", "dev"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Port:           getEnvInt("PORT", 3000),
		SecureCookies:  getEnvBool("SECURE_COOKIES", false),
		AllowedOrigins: []string{getEnv("ALLOWED_ORIGIN", "*")},
		Shipping: ShippingConfig{
			FreeThreshold: freeThreshold,
			FlatRate:      flatRate,
		},
		Checkout: CheckoutConfig{
			WhatsAppNumber: getEnv("WHATSAPP_NUMBER", "558598284434"),
			CurrencyPrefix: getEnv("CURRENCY_PREFIX", "R$"),
		},
	}

	// Validate env
	validEnv := cfg.Env == "dev" || cfg.Env == "prod"
	if !validEnv {
		slog.Default().Warn("Invalid environment. Using default: prod", slog.String("env", cfg.Env))
		cfg.Env = "prod"
	}

	// Validate log level
	validLevel := cfg.LogLevel == "info" || cfg.LogLevel == "debug" || cfg.LogLevel == "warn" || cfg.LogLevel == "error"
	if !validLevel {
		slog.Default().Warn("Invalid log level. Using default: info", slog.String("value", cfg.LogLevel))
		cfg.LogLevel = "info"
	}

	if cfg.Shipping.FreeThreshold.IsNegative() || cfg.Shipping.FlatRate.IsNegative() {
		return nil, fmt.Errorf("shipping threshold and rate must be non-negative")
	}

	if cfg.Checkout.WhatsAppNumber == "" {
		return nil, fmt.Errorf("WHATSAPP_NUMBER must not be empty")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue uint16) uint16 {
	if value := os.Getenv(key); value != "" {
		var intValue uint16
		if _, err := fmt.Sscanf(value, "%d", &intValue); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1" || value == "yes"
	}
	return defaultValue
}

func getEnvDecimal(key, defaultValue string) (decimal.Decimal, error) {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}
	return decimal.NewFromString(value)
}
