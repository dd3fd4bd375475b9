package business

// Algorithm selects how item taxes are aggregated into the address total.
type Algorithm string

const (
	// AlgorithmUnitBase computes tax per unit price, then multiplies by quantity.
	AlgorithmUnitBase Algorithm = "UNIT_BASE_CALCULATION"
	// AlgorithmRowBase computes tax on the extended row total directly.
	AlgorithmRowBase Algorithm = "ROW_BASE_CALCULATION"
	// AlgorithmTotalBase groups items by rate and computes one tax amount per group.
	AlgorithmTotalBase Algorithm = "TOTAL_BASE_CALCULATION"
)

// IsValid reports whether the algorithm is one of the known strategies.
// An unknown algorithm is not an error: the collector leaves items untaxed.
func (a Algorithm) IsValid() bool {
	switch a {
	case AlgorithmUnitBase, AlgorithmRowBase, AlgorithmTotalBase:
		return true
	}
	return false
}

// CalculationSequence controls when the discount is subtracted relative to
// the tax computation, and whether the discount collaborator downstream
// works on tax-inclusive prices.
type CalculationSequence string

const (
	TaxBeforeDiscountOnExcl CalculationSequence = "TAX_BEFORE_DISCOUNT_ON_EXCL"
	TaxBeforeDiscountOnIncl CalculationSequence = "TAX_BEFORE_DISCOUNT_ON_INCL"
	TaxAfterDiscountOnExcl  CalculationSequence = "TAX_AFTER_DISCOUNT_ON_EXCL"
	TaxAfterDiscountOnIncl  CalculationSequence = "TAX_AFTER_DISCOUNT_ON_INCL"
)
