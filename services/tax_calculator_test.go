package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/halcyon-commerce/tax-engine/types/business"
)

func TestCalcTaxAmount(t *testing.T) {
	calc := NewTaxCalculator(2)

	tests := []struct {
		name             string
		base             string
		rate             string
		priceIncludesTax bool
		round            bool
		want             string
	}{
		{
			name: "exclusive adds tax on top",
			base: "100.00", rate: "0.1", round: true,
			want: "10",
		},
		{
			name: "exclusive unrounded keeps the remainder",
			base: "0.99", rate: "0.1",
			want: "0.099",
		},
		{
			name: "inclusive extracts tax from the price",
			base: "110.00", rate: "0.1", priceIncludesTax: true, round: true,
			want: "10",
		},
		{
			name: "inclusive at zero rate extracts nothing",
			base: "110.00", rate: "0", priceIncludesTax: true, round: true,
			want: "0",
		},
		{
			name: "half cent rounds away from zero",
			base: "0.45", rate: "0.1", round: true,
			want: "0.05",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := calc.CalcTaxAmount(
				decimal.RequireFromString(tt.base),
				decimal.RequireFromString(tt.rate),
				tt.priceIncludesTax,
				tt.round,
			)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestCalcTaxMoney_BothCurrencies(t *testing.T) {
	calc := NewTaxCalculator(2)

	base := business.NewMoney(decimal.RequireFromString("100.00"), decimal.RequireFromString("250.00"))
	got := calc.CalcTaxMoney(base, decimal.RequireFromString("0.1"), false, true)

	assert.Equal(t, "10", got.Amount.String())
	assert.Equal(t, "25", got.Base.String())
}

func TestRound_Precision(t *testing.T) {
	tests := []struct {
		name      string
		precision int32
		in        string
		want      string
	}{
		{name: "two places", precision: 2, in: "1.005", want: "1.01"},
		{name: "zero places", precision: 0, in: "1.5", want: "2"},
		{name: "three places", precision: 3, in: "1.0005", want: "1.001"},
		{name: "negative rounds away from zero", precision: 2, in: "-1.005", want: "-1.01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := NewTaxCalculator(tt.precision)
			got := calc.Round(decimal.RequireFromString(tt.in))
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestRoundingLedger(t *testing.T) {
	ledger := newRoundingLedger()

	// An unknown key carries zero.
	assert.True(t, ledger.carry("10").IsZero())

	remainder := business.NewMoney(decimal.RequireFromString("-0.005"), decimal.RequireFromString("-0.005"))
	ledger.store("10", remainder)

	// Carrying consumes the remainder; a second carry is zero again.
	assert.Equal(t, "-0.005", ledger.carry("10").Amount.String())
	assert.True(t, ledger.carry("10").IsZero())

	// Keys are independent per rate.
	ledger.store("10", remainder)
	assert.True(t, ledger.carry("5").IsZero())
	assert.Equal(t, "-0.005", ledger.carry("10").Amount.String())
}

func TestRateKey_Stable(t *testing.T) {
	a := decimal.RequireFromString("8.25")
	b := decimal.RequireFromString("8.250")

	// Equal rates must share one ledger slot regardless of representation.
	assert.Equal(t, rateKey(a), rateKey(b))
}
