package business

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LineItem is a single cart or order row. The tax collector mutates it in
// place: tax fields are always written, and price fields are rewritten when
// prices are tax-inclusive (the computed tax is subtracted to recover the
// tax-exclusive price).
//
// An item either stands alone or owns an ordered set of child items
// (ParentID set on the children). Child taxes are always computed first and
// rolled up into the parent, never the reverse.
type LineItem struct {
	ID         uuid.UUID
	ParentID   *uuid.UUID
	TaxClassID uuid.UUID

	// Qty is the ordered quantity. Zero-quantity rows are skipped by the
	// collector.
	Qty decimal.Decimal

	// Price is the tax-exclusive catalog unit price. PriceInclTax is the
	// tax-inclusive unit price; it is only meaningful when the store sells
	// at tax-inclusive prices.
	Price           Money
	PriceInclTax    Money
	CustomPrice     *Money
	RowTotal        Money
	RowTotalInclTax Money

	Discount Money

	// Non-price taxable add-ons (fees, weee and similar). ExtraTaxable is
	// per unit, ExtraRowTaxable per row.
	ExtraTaxable    Money
	ExtraRowTaxable Money

	// ChildrenCalculated marks a parent whose children carry their own
	// prices and taxes; the parent row is then reconciled from them.
	ChildrenCalculated bool

	// Written by the tax collector.
	TaxAmount                Money
	TaxPercent               decimal.Decimal
	DiscountCalculationPrice Money
}

// IsChild reports whether this item belongs to a parent row.
func (i *LineItem) IsChild() bool {
	return i.ParentID != nil
}

// CalculationPrice returns the unit price tax is calculated on: the custom
// price when one is set, the catalog price otherwise.
func (i *LineItem) CalculationPrice() Money {
	if i.CustomPrice != nil {
		return *i.CustomPrice
	}
	return i.Price
}

// HasCustomPrice reports whether the item carries an overridden unit price.
func (i *LineItem) HasCustomPrice() bool {
	return i.CustomPrice != nil
}
