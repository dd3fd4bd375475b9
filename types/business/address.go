package business

import "github.com/shopspring/decimal"

// AppliedTax is an address-level ledger entry recording how much a single
// rate contributed across the whole pass. ProcessOrder records insertion
// sequence so display stays deterministic when the same rate is touched by
// several items.
type AppliedTax struct {
	ID           string           `json:"id"`
	Percent      *decimal.Decimal `json:"percent,omitempty"`
	Rates        []AppliedSubRate `json:"rates"`
	ProcessOrder int              `json:"process"`
	Amount       Money            `json:"amount"`
}

// AddressTotals is the allocation target for one address: running totals
// plus the applied-tax ledger. The tax collector adds into the totals; it
// never resets them, so a fresh pass starts from a zeroed value supplied by
// the caller.
type AddressTotals struct {
	Subtotal        Money
	SubtotalInclTax Money

	Shipping         Money
	ShippingDiscount Money
	ShippingTax      Money

	// ShippingForDiscount exposes shipping amount plus tax when discounts
	// are configured to apply to tax-inclusive shipping prices.
	ShippingForDiscount *Money

	// ExtraTax is an externally supplied tax amount (e.g. from fees) folded
	// into the total without going through rate logic.
	ExtraTax Money

	TaxAmount  Money
	GrandTotal Money

	// AppliedTaxesReset suppresses the ledger wipe at the start of a pass;
	// used when a caller accumulates several partial passes itself.
	AppliedTaxesReset bool
	AppliedTaxes      map[string]*AppliedTax
}
