package services

import (
	"github.com/halcyon-commerce/tax-engine/types/business"
	"github.com/shopspring/decimal"
)

var (
	decimalOne     = decimal.NewFromInt(1)
	decimalHundred = decimal.NewFromInt(100)
)

// TaxCalculator holds the numeric primitives shared by every strategy:
// currency rounding and the tax-amount formula. One instance is safe for
// concurrent use; it carries no per-pass state.
type TaxCalculator struct {
	precision int32
}

// NewTaxCalculator creates a calculator rounding to the given number of
// decimal places.
func NewTaxCalculator(precision int32) *TaxCalculator {
	return &TaxCalculator{precision: precision}
}

// Round rounds an amount to the currency precision, half away from zero.
// Every rounding in the engine goes through here so item, group and
// shipping amounts stay mutually consistent.
func (c *TaxCalculator) Round(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(c.precision)
}

// RoundMoney rounds both currencies of a Money value.
func (c *TaxCalculator) RoundMoney(m business.Money) business.Money {
	return business.NewMoney(c.Round(m.Amount), c.Round(m.Base))
}

// CalcTaxAmount computes the tax on a base amount. rate is a fraction
// (0.1 for 10%). When priceIncludesTax is set the tax is extracted from a
// tax-included base (base - base/(1+rate)); otherwise it is added on top
// (base * rate). round controls whether the result is rounded here or the
// caller defers rounding (total-base grouping and shipping do).
func (c *TaxCalculator) CalcTaxAmount(base decimal.Decimal, rate decimal.Decimal, priceIncludesTax, round bool) decimal.Decimal {
	var amount decimal.Decimal
	if priceIncludesTax {
		amount = base.Sub(base.Div(decimalOne.Add(rate)))
	} else {
		amount = base.Mul(rate)
	}
	if round {
		amount = c.Round(amount)
	}
	return amount
}

// CalcTaxMoney applies CalcTaxAmount to both currencies of a Money value in
// the same order.
func (c *TaxCalculator) CalcTaxMoney(base business.Money, rate decimal.Decimal, priceIncludesTax, round bool) business.Money {
	return business.NewMoney(
		c.CalcTaxAmount(base.Amount, rate, priceIncludesTax, round),
		c.CalcTaxAmount(base.Base, rate, priceIncludesTax, round),
	)
}

// rateKey returns the stable map key for a rate percent. Decimal string
// formatting is platform-independent, unlike float formatting.
func rateKey(percent decimal.Decimal) string {
	return percent.String()
}

// roundingLedger tracks, per rate key, the signed remainder lost to
// rounding so a later group or the shipping calculation sharing the same
// rate recovers it. One ledger exists per allocation pass; it is never
// shared across passes.
type roundingLedger struct {
	deltas map[string]business.Money
}

func newRoundingLedger() *roundingLedger {
	return &roundingLedger{deltas: make(map[string]business.Money)}
}

// carry consumes and returns the remainder accumulated for a rate key,
// zero if none. Consuming guarantees a remainder is applied exactly once.
func (l *roundingLedger) carry(key string) business.Money {
	if delta, ok := l.deltas[key]; ok {
		delete(l.deltas, key)
		return delta
	}
	return business.ZeroMoney()
}

// store records the remainder for a rate key, replacing any prior value.
func (l *roundingLedger) store(key string, remainder business.Money) {
	l.deltas[key] = remainder
}
