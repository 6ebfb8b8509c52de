package api

import (
	"fmt"
	"os"
	"strings"

	"github.com/shopspring/decimal"
	"go.temporal.io/sdk/client"

	"github.com/mohammedHatemm/go-shop-api/internal/domains/checkout/pricing"
)

// Config carries environment-driven settings for the API process.
type Config struct {
	Port                  string
	PostgresDSN           string
	TemporalAddress       string
	TemporalNamespace     string
	TemporalDisabled      bool
	FulfillmentURL        string
	TaxRate               decimal.Decimal
	FreeShippingThreshold decimal.Decimal
	ShippingCost          decimal.Decimal
}

// LoadConfig reads environment variables, applies defaults, and validates basic constraints.
func LoadConfig() (Config, error) {
	cfg := Config{
		Port:                  envDefault("PORT", "8080"),
		PostgresDSN:           strings.TrimSpace(os.Getenv("POSTGRES_DSN")),
		TemporalAddress:       envDefault("TEMPORAL_ADDRESS", client.DefaultHostPort),
		TemporalNamespace:     envDefault("TEMPORAL_NAMESPACE", client.DefaultNamespace),
		TemporalDisabled:      isTruthy(os.Getenv("TEMPORAL_DISABLED")),
		FulfillmentURL:        strings.TrimSpace(os.Getenv("FULFILLMENT_URL")),
		TaxRate:               pricing.DefaultTaxRate,
		FreeShippingThreshold: pricing.DefaultFreeShippingThreshold,
		ShippingCost:          pricing.DefaultShippingCost,
	}
	var err error
	if cfg.TaxRate, err = decimalEnv("TAX_RATE", cfg.TaxRate); err != nil {
		return Config{}, err
	}
	if cfg.FreeShippingThreshold, err = decimalEnv("FREE_SHIPPING_THRESHOLD", cfg.FreeShippingThreshold); err != nil {
		return Config{}, err
	}
	if cfg.ShippingCost, err = decimalEnv("SHIPPING_COST", cfg.ShippingCost); err != nil {
		return Config{}, err
	}
	if cfg.TaxRate.IsNegative() || cfg.FreeShippingThreshold.IsNegative() || cfg.ShippingCost.IsNegative() {
		return Config{}, fmt.Errorf("pricing configuration must not be negative")
	}
	return cfg, nil
}

// Calculator builds the pricing calculator from the configured rates.
func (c Config) Calculator() pricing.Calculator {
	return pricing.NewCalculator(c.TaxRate, c.FreeShippingThreshold, c.ShippingCost)
}

func decimalEnv(key string, fallback decimal.Decimal) (decimal.Decimal, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	value, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%s must be a decimal number: %w", key, err)
	}
	return value, nil
}

func envDefault(key, fallback string) string {
	if val := strings.TrimSpace(os.Getenv(key)); val != "" {
		return val
	}
	return fallback
}

func isTruthy(value string) bool {
	value = strings.TrimSpace(strings.ToLower(value))
	return value == "1" || value == "true" || value == "yes"
}
