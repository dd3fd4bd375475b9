package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyon-commerce/tax-engine/config"
	"github.com/halcyon-commerce/tax-engine/types/business"
)

func newLedgerService(t *testing.T) *TaxCollectionService {
	t.Helper()
	service, _ := newTestService(t, config.Default())
	return service
}

func TestSaveAppliedTaxes_ProportionalSplit(t *testing.T) {
	service := newLedgerService(t)
	addr := &business.AddressTotals{}

	// A 10% total made of 6% and 4% splits a 10.00 tax amount 6.00/4.00.
	six := dec("6")
	four := dec("4")
	applied := []business.AppliedRateRow{
		{ID: "STATE", Percent: &six, Rates: []business.AppliedSubRate{{Code: "STATE", Percent: &six}}},
		{ID: "COUNTY", Percent: &four, Rates: []business.AppliedSubRate{{Code: "COUNTY", Percent: &four}}},
	}

	service.saveAppliedTaxes(addr, applied, money("10.00"), dec("10"))

	require.Len(t, addr.AppliedTaxes, 2)
	assert.Equal(t, "6", addr.AppliedTaxes["STATE"].Amount.Amount.String())
	assert.Equal(t, "4", addr.AppliedTaxes["COUNTY"].Amount.Amount.String())
	assert.Equal(t, 0, addr.AppliedTaxes["STATE"].ProcessOrder)
	assert.Equal(t, 1, addr.AppliedTaxes["COUNTY"].ProcessOrder)
}

func TestSaveAppliedTaxes_ContributionsSumExactly(t *testing.T) {
	service := newLedgerService(t)
	addr := &business.AddressTotals{}

	// Splitting 0.05 across two equal 5% rows of a 10% rate must not lose
	// or invent sub-cent amounts: the entries carry 0.025 each, unrounded,
	// and sum back to exactly the contributed tax.
	five := dec("5")
	applied := []business.AppliedRateRow{
		{ID: "STATE", Percent: &five, Rates: []business.AppliedSubRate{{Code: "STATE", Percent: &five}}},
		{ID: "COUNTY", Percent: &five, Rates: []business.AppliedSubRate{{Code: "COUNTY", Percent: &five}}},
	}

	service.saveAppliedTaxes(addr, applied, money("0.05"), dec("10"))

	require.Len(t, addr.AppliedTaxes, 2)
	assert.Equal(t, "0.025", addr.AppliedTaxes["STATE"].Amount.Amount.String())
	assert.Equal(t, "0.025", addr.AppliedTaxes["COUNTY"].Amount.Amount.String())

	sum := addr.AppliedTaxes["STATE"].Amount.Add(addr.AppliedTaxes["COUNTY"].Amount)
	assert.True(t, sum.Amount.Equal(dec("0.05")))
	assert.True(t, sum.Base.Equal(dec("0.05")))
}

func TestSaveAppliedTaxes_ZeroPercentRowKeepsTruePercent(t *testing.T) {
	service := newLedgerService(t)
	addr := &business.AddressTotals{}

	// The zero-percent row is weighted as one for the split, but the ledger
	// entry records the rate it actually carries.
	ten := dec("10")
	zero := dec("0")
	applied := []business.AppliedRateRow{
		{ID: "STATE", Percent: &ten, Rates: []business.AppliedSubRate{{Code: "STATE", Percent: &ten}}},
		{ID: "EXEMPT", Percent: &zero, Rates: []business.AppliedSubRate{{Code: "EXEMPT", Percent: &zero}}},
	}

	service.saveAppliedTaxes(addr, applied, money("10.00"), ten)

	require.Contains(t, addr.AppliedTaxes, "EXEMPT")
	entry := addr.AppliedTaxes["EXEMPT"]
	require.NotNil(t, entry.Percent)
	assert.True(t, entry.Percent.IsZero())
	assert.Equal(t, "1", entry.Amount.Amount.String())
}

func TestSaveAppliedTaxes_AccumulatesAcrossCalls(t *testing.T) {
	service := newLedgerService(t)
	addr := &business.AddressTotals{}

	ten := dec("10")
	applied := []business.AppliedRateRow{
		{ID: "US-CA", Percent: &ten, Rates: []business.AppliedSubRate{{Code: "US-CA", Percent: &ten}}},
	}

	service.saveAppliedTaxes(addr, applied, money("3.00"), ten)
	service.saveAppliedTaxes(addr, applied, money("2.50"), ten)

	require.Contains(t, addr.AppliedTaxes, "US-CA")
	assert.Equal(t, "5.5", addr.AppliedTaxes["US-CA"].Amount.Amount.String())
	assert.Equal(t, 0, addr.AppliedTaxes["US-CA"].ProcessOrder)
}

func TestSaveAppliedTaxes_NilPercentUsesNestedAmounts(t *testing.T) {
	service := newLedgerService(t)
	addr := &business.AddressTotals{}

	// A row without a single percent reports the amounts its nested rates
	// already carry instead of a proportional share.
	applied := []business.AppliedRateRow{
		{
			ID: "COMPOUND",
			Rates: []business.AppliedSubRate{
				{Code: "BASE", Amount: money("2.00")},
				{Code: "SURCHARGE", Amount: money("0.40")},
			},
		},
	}

	service.saveAppliedTaxes(addr, applied, money("10.00"), dec("10"))

	require.Contains(t, addr.AppliedTaxes, "COMPOUND")
	assert.Equal(t, "2.4", addr.AppliedTaxes["COMPOUND"].Amount.Amount.String())
}

func TestSaveAppliedTaxes_DropsZeroEntries(t *testing.T) {
	service := newLedgerService(t)
	addr := &business.AddressTotals{}

	zero := dec("0")
	applied := []business.AppliedRateRow{
		{ID: "EXEMPT", Percent: &zero, Rates: []business.AppliedSubRate{{Code: "EXEMPT", Percent: &zero}}},
	}

	service.saveAppliedTaxes(addr, applied, business.ZeroMoney(), dec("0"))
	assert.NotContains(t, addr.AppliedTaxes, "EXEMPT")

	// A zero contribution on an entry that already charged something is
	// kept.
	ten := dec("10")
	charged := []business.AppliedRateRow{
		{ID: "US-CA", Percent: &ten, Rates: []business.AppliedSubRate{{Code: "US-CA", Percent: &ten}}},
	}
	service.saveAppliedTaxes(addr, charged, money("1.00"), ten)
	service.saveAppliedTaxes(addr, charged, business.ZeroMoney(), ten)

	require.Contains(t, addr.AppliedTaxes, "US-CA")
	assert.Equal(t, "1", addr.AppliedTaxes["US-CA"].Amount.Amount.String())
}
