package services

import (
	"github.com/halcyon-commerce/tax-engine/types/business"
	"github.com/shopspring/decimal"
)

// saveAppliedTaxes folds one tax contribution into the address-level
// applied-tax ledger, apportioning the amount across the rate rows it was
// computed from. Contributions accumulate unrounded so the ledger entries
// always sum to exactly what was booked. Rows that net out to zero are
// dropped so the ledger only ever carries taxes that actually charged
// something.
func (s *TaxCollectionService) saveAppliedTaxes(addr *business.AddressTotals, applied []business.AppliedRateRow, amount business.Money, ratePercent decimal.Decimal) {
	if addr.AppliedTaxes == nil {
		addr.AppliedTaxes = make(map[string]*business.AppliedTax)
	}

	for _, row := range applied {
		var rowTax business.Money
		if row.Percent == nil {
			// Compound decomposition: the row has no single percent, its
			// sub-rates carry the already-split amounts
			for _, sub := range row.Rates {
				rowTax = rowTax.Add(sub.Amount)
			}
		} else {
			// A zero-percent row still has to appear in the ledger; it is
			// apportioned with a nominal weight of one, while the entry
			// keeps the true percent
			nominal := *row.Percent
			if nominal.IsZero() {
				nominal = decimalOne
			}
			rate := ratePercent
			if rate.IsZero() {
				rate = decimalOne
			}
			rowTax = amount.Mul(nominal).Div(rate)
		}

		entry, ok := addr.AppliedTaxes[row.ID]
		if !ok {
			// Process order is assigned on first sight so display keeps
			// the sequence taxes were applied in
			entry = &business.AppliedTax{
				ID:           row.ID,
				Percent:      row.Percent,
				Rates:        row.Rates,
				ProcessOrder: len(addr.AppliedTaxes),
				Amount:       business.ZeroMoney(),
			}
			addr.AppliedTaxes[row.ID] = entry
		}

		if rowTax.IsZero() && entry.Amount.IsZero() {
			delete(addr.AppliedTaxes, row.ID)
			continue
		}
		entry.Amount = entry.Amount.Add(rowTax)
	}
}
