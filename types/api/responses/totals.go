package responses

import (
	"github.com/halcyon-commerce/tax-engine/types/business"
	"github.com/shopspring/decimal"
)

// TotalLine is one display-ready total row produced by Fetch.
type TotalLine struct {
	Code         string                 `json:"code"`
	Title        string                 `json:"title"`
	Value        decimal.Decimal        `json:"value"`
	ValueInclTax *decimal.Decimal       `json:"value_incl_tax,omitempty"`
	ValueExclTax *decimal.Decimal       `json:"value_excl_tax,omitempty"`
	Area         string                 `json:"area,omitempty"`
	FullInfo     []*business.AppliedTax `json:"full_info,omitempty"`
}

// DisplayTotals is the finalized, display-ready view of an address's tax
// totals. It is derived read-only from the allocation ledger.
type DisplayTotals struct {
	Totals []TotalLine `json:"totals"`
}
