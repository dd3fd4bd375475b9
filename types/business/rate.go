package business

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RateRequest identifies the jurisdiction and classes a tax rate is looked
// up for. ProductClassID is rewritten per item while the other fields stay
// fixed for the whole pass.
type RateRequest struct {
	CountryID       string
	RegionID        string
	PostCode        string
	CustomerClassID uuid.UUID
	ProductClassID  uuid.UUID
}

// EquivalentTo reports whether two requests resolve to the same jurisdiction
// for pricing purposes. The product class is deliberately excluded: it
// varies per item and has no bearing on whether the customer is taxed like
// the store's home jurisdiction.
func (r *RateRequest) EquivalentTo(o *RateRequest) bool {
	if r == nil || o == nil {
		return false
	}
	return r.CountryID == o.CountryID &&
		r.RegionID == o.RegionID &&
		r.PostCode == o.PostCode &&
		r.CustomerClassID == o.CustomerClassID
}

// AppliedSubRate is one named component of a (possibly compound) tax rate.
// Amount is only populated for nested components whose contribution was
// already computed at a deeper level.
type AppliedSubRate struct {
	Code    string           `json:"code"`
	Title   string           `json:"title"`
	Percent *decimal.Decimal `json:"percent,omitempty"`
	Amount  Money            `json:"amount"`
}

// AppliedRateRow is one row of a resolved rate decomposition as returned by
// the rate resolver. Percent is nil when the row wraps nested sub-rates
// whose amounts are reported instead of a proportional split.
type AppliedRateRow struct {
	ID      string           `json:"id"`
	Percent *decimal.Decimal `json:"percent,omitempty"`
	Rates   []AppliedSubRate `json:"rates"`
}
