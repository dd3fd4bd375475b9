package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/halcyon-commerce/tax-engine/constants"
	"github.com/halcyon-commerce/tax-engine/helpers"
	"github.com/halcyon-commerce/tax-engine/types/business"
	"github.com/joho/godotenv"
)

// Config holds every policy flag the tax collector consults during a pass.
// Values are fixed for the lifetime of a collector; one Config must not be
// shared between stores with different tax settings.
type Config struct {
	// Algorithm selects the aggregation strategy. An unknown value is not
	// an error: the collector leaves items untaxed for compatibility.
	Algorithm business.Algorithm

	// Sequence controls discount ordering relative to tax. An unknown
	// value degrades to TaxAfterDiscountOnExcl at the calculation sites.
	Sequence business.CalculationSequence

	// Precision is the currency rounding precision in decimal places.
	Precision int32

	// PriceIncludesTax marks catalog prices as tax-inclusive.
	// CrossBorderPriceConversion is a compatibility flag that forces the
	// inclusive-price handling even when catalog prices are exclusive.
	// Either only takes effect when the customer's jurisdiction request is
	// equivalent to the store's.
	PriceIncludesTax           bool
	CrossBorderPriceConversion bool

	// ApplyTaxAfterDiscount nets the shipping discount out of the shipping
	// amount before tax is computed on it.
	ApplyTaxAfterDiscount bool

	// DiscountTax exposes shipping-plus-tax as the base for downstream
	// discount calculation.
	DiscountTax bool

	ShippingPriceIncludesTax bool
	ShippingTaxClassID       *uuid.UUID

	// ApplyTaxOnCustomPrice taxes an item's overridden price instead of
	// its catalog price.
	ApplyTaxOnCustomPrice bool

	// Display flags consumed by Fetch.
	DisplayCartZeroTax           bool
	DisplayCartSubtotalInclTax   bool
	DisplayCartSubtotalBoth      bool
	DisplayCartTaxWithGrandTotal bool

	// StoreRequest is the store's default jurisdiction request, compared
	// against the customer's request to decide whether inclusive-price
	// assumptions hold.
	StoreRequest business.RateRequest
}

// Default returns a configuration with the most common store settings:
// total-base aggregation, tax after discount on exclusive prices, two
// decimal places.
func Default() *Config {
	return &Config{
		Algorithm: business.AlgorithmTotalBase,
		Sequence:  business.TaxAfterDiscountOnExcl,
		Precision: constants.DefaultCurrencyPrecision,
	}
}

// LoadFromEnv builds a Config from environment variables, loading a .env
// file first if one is present. Unset variables keep the Default values.
func LoadFromEnv() (*Config, error) {
	// .env is optional outside local development
	_ = godotenv.Load()

	cfg := Default()

	if v := os.Getenv("TAX_CALC_ALGORITHM"); v != "" {
		cfg.Algorithm = business.Algorithm(v)
	}
	if v := os.Getenv("TAX_CALC_SEQUENCE"); v != "" {
		cfg.Sequence = business.CalculationSequence(v)
	}
	if v := os.Getenv("TAX_CURRENCY"); v != "" {
		helper := helpers.NewCurrencyHelper()
		if err := helper.ValidateCurrencyCode(v); err != nil {
			return nil, fmt.Errorf("invalid TAX_CURRENCY: %w", err)
		}
		cfg.Precision = helper.PrecisionFor(v)
	}

	var err error
	if cfg.PriceIncludesTax, err = envBool("TAX_PRICE_INCLUDES_TAX", cfg.PriceIncludesTax); err != nil {
		return nil, err
	}
	if cfg.CrossBorderPriceConversion, err = envBool("TAX_CROSS_BORDER_PRICE_CONVERSION", cfg.CrossBorderPriceConversion); err != nil {
		return nil, err
	}
	if cfg.ApplyTaxAfterDiscount, err = envBool("TAX_APPLY_AFTER_DISCOUNT", cfg.ApplyTaxAfterDiscount); err != nil {
		return nil, err
	}
	if cfg.DiscountTax, err = envBool("TAX_DISCOUNT_ON_INCL", cfg.DiscountTax); err != nil {
		return nil, err
	}
	if cfg.ShippingPriceIncludesTax, err = envBool("TAX_SHIPPING_PRICE_INCLUDES_TAX", cfg.ShippingPriceIncludesTax); err != nil {
		return nil, err
	}
	if cfg.ApplyTaxOnCustomPrice, err = envBool("TAX_APPLY_ON_CUSTOM_PRICE", cfg.ApplyTaxOnCustomPrice); err != nil {
		return nil, err
	}
	if cfg.DisplayCartZeroTax, err = envBool("TAX_DISPLAY_ZERO_TAX", cfg.DisplayCartZeroTax); err != nil {
		return nil, err
	}
	if cfg.DisplayCartSubtotalInclTax, err = envBool("TAX_DISPLAY_SUBTOTAL_INCL_TAX", cfg.DisplayCartSubtotalInclTax); err != nil {
		return nil, err
	}
	if cfg.DisplayCartSubtotalBoth, err = envBool("TAX_DISPLAY_SUBTOTAL_BOTH", cfg.DisplayCartSubtotalBoth); err != nil {
		return nil, err
	}
	if cfg.DisplayCartTaxWithGrandTotal, err = envBool("TAX_DISPLAY_WITH_GRAND_TOTAL", cfg.DisplayCartTaxWithGrandTotal); err != nil {
		return nil, err
	}

	if v := os.Getenv("TAX_SHIPPING_TAX_CLASS_ID"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, fmt.Errorf("invalid TAX_SHIPPING_TAX_CLASS_ID: %w", err)
		}
		cfg.ShippingTaxClassID = &id
	}

	cfg.StoreRequest.CountryID = os.Getenv("TAX_STORE_COUNTRY")
	cfg.StoreRequest.RegionID = os.Getenv("TAX_STORE_REGION")
	cfg.StoreRequest.PostCode = os.Getenv("TAX_STORE_POSTCODE")
	if v := os.Getenv("TAX_STORE_CUSTOMER_CLASS_ID"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return nil, fmt.Errorf("invalid TAX_STORE_CUSTOMER_CLASS_ID: %w", err)
		}
		cfg.StoreRequest.CustomerClassID = id
	}

	return cfg, nil
}

func envBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}
