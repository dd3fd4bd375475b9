package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"

	// Currencies
	USDCurrency = "USD"

	// Default currency precision (decimal places) used when a currency
	// is not present in the precision table
	DefaultCurrencyPrecision = 2
)
