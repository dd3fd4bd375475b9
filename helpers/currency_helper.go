package helpers

import (
	"fmt"
	"strings"

	"github.com/halcyon-commerce/tax-engine/constants"
)

// CurrencyHelper provides utility functions for currency operations
type CurrencyHelper struct{}

// NewCurrencyHelper creates a new currency helper
func NewCurrencyHelper() *CurrencyHelper {
	return &CurrencyHelper{}
}

// currencyPrecision maps ISO 4217 codes to the number of decimal places the
// currency is rounded to. Currencies not listed use the default precision.
var currencyPrecision = map[string]int32{
	"USD": 2,
	"EUR": 2,
	"GBP": 2,
	"CAD": 2,
	"AUD": 2,
	"CHF": 2,
	"JPY": 0,
	"KRW": 0,
	"VND": 0,
	"BHD": 3,
	"KWD": 3,
	"OMR": 3,
}

// PrecisionFor returns the rounding precision (decimal places) for a
// currency code.
func (h *CurrencyHelper) PrecisionFor(code string) int32 {
	if precision, ok := currencyPrecision[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return precision
	}
	return constants.DefaultCurrencyPrecision
}

// ValidateCurrencyCode validates a currency code format
func (h *CurrencyHelper) ValidateCurrencyCode(code string) error {
	// Trim and convert to uppercase
	code = strings.TrimSpace(strings.ToUpper(code))

	// Check length (ISO 4217 currency codes are 3 characters)
	if len(code) != 3 {
		return fmt.Errorf("currency code must be exactly 3 characters")
	}

	// Check for valid characters (A-Z only)
	for _, char := range code {
		if char < 'A' || char > 'Z' {
			return fmt.Errorf("currency code must contain only uppercase letters")
		}
	}

	return nil
}
