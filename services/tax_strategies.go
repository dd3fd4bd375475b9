package services

import (
	"context"

	"github.com/google/uuid"
	"github.com/halcyon-commerce/tax-engine/types/business"
	"github.com/shopspring/decimal"
)

// childIndex maps parent item ids to their children, preserving the order
// the caller supplied the items in.
func childIndex(items []*business.LineItem) map[uuid.UUID][]*business.LineItem {
	children := make(map[uuid.UUID][]*business.LineItem)
	for _, item := range items {
		if item.ParentID != nil {
			children[*item.ParentID] = append(children[*item.ParentID], item)
		}
	}
	return children
}

// unitBaseCalculation computes tax per unit price, then scales by quantity.
func (s *TaxCollectionService) unitBaseCalculation(ctx context.Context, p *collectionPass, items []*business.LineItem) error {
	children := childIndex(items)
	for _, item := range items {
		// Child taxes are collected through their parent
		if item.IsChild() {
			continue
		}

		kids := children[item.ID]
		if item.ChildrenCalculated && len(kids) > 0 {
			for _, child := range kids {
				if err := s.unitTaxForItem(ctx, p, child); err != nil {
					return err
				}
			}
			recalculateParent(item, kids)
		} else {
			if err := s.unitTaxForItem(ctx, p, item); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *TaxCollectionService) unitTaxForItem(ctx context.Context, p *collectionPass, item *business.LineItem) error {
	// Nothing to tax on a zero-quantity row, and the per-unit division
	// below requires a nonzero quantity
	if item.Qty.IsZero() {
		return nil
	}

	p.request.ProductClassID = item.TaxClassID
	percent, err := s.resolver.GetRate(ctx, &p.request)
	if err != nil {
		return err
	}

	s.calcUnitTaxAmount(p, item, percent)
	s.addAmount(p, item.TaxAmount)

	applied, err := s.resolver.GetAppliedRates(ctx, &p.request)
	if err != nil {
		return err
	}
	s.saveAppliedTaxes(p.addr, applied, item.TaxAmount, percent)
	return nil
}

// calcUnitTaxAmount computes one unit tax amount from a representative unit
// price and writes the rounded row tax onto the item.
func (s *TaxCollectionService) calcUnitTaxAmount(p *collectionPass, item *business.LineItem, percent decimal.Decimal) {
	var price business.Money
	switch {
	case p.inclusivePricing:
		price = s.calc.RoundMoney(item.PriceInclTax).Add(item.ExtraTaxable)
	case item.HasCustomPrice() && s.config.ApplyTaxOnCustomPrice:
		price = s.calc.RoundMoney(item.CalculationPrice()).Add(item.ExtraTaxable)
	default:
		price = s.calc.RoundMoney(item.Price).Add(item.ExtraTaxable)
	}

	qty := item.Qty
	item.TaxPercent = percent
	rate := percent.Div(decimalHundred)

	var unitTax business.Money
	switch s.config.Sequence {
	case business.TaxBeforeDiscountOnExcl:
		unitTax = s.calc.CalcTaxMoney(price, rate, p.inclusivePricing, true)
	case business.TaxBeforeDiscountOnIncl:
		unitTax = s.calc.CalcTaxMoney(price, rate, p.inclusivePricing, true)
		if p.inclusivePricing {
			item.DiscountCalculationPrice = price
		} else {
			item.DiscountCalculationPrice = price.Add(unitTax)
		}
	default:
		// Tax after discount, and the degraded path for unknown sequences
		unitTax = s.calc.CalcTaxMoney(price.Sub(item.Discount.Div(qty)), rate, p.inclusivePricing, true)
	}

	rowTax := s.calc.RoundMoney(unitTax.Mul(qty))

	if p.inclusivePricing {
		s.rewriteInclusivePrices(item, unitTax, rowTax)
	}

	item.TaxAmount = rowTax
}

// rowBaseCalculation computes tax on the extended row total directly.
func (s *TaxCollectionService) rowBaseCalculation(ctx context.Context, p *collectionPass, items []*business.LineItem) error {
	children := childIndex(items)
	for _, item := range items {
		if item.IsChild() {
			continue
		}

		kids := children[item.ID]
		if item.ChildrenCalculated && len(kids) > 0 {
			for _, child := range kids {
				if err := s.rowTaxForItem(ctx, p, child); err != nil {
					return err
				}
			}
			recalculateParent(item, kids)
		} else {
			if err := s.rowTaxForItem(ctx, p, item); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *TaxCollectionService) rowTaxForItem(ctx context.Context, p *collectionPass, item *business.LineItem) error {
	if item.Qty.IsZero() {
		return nil
	}

	p.request.ProductClassID = item.TaxClassID
	percent, err := s.resolver.GetRate(ctx, &p.request)
	if err != nil {
		return err
	}

	s.calcRowTaxAmount(p, item, percent)
	s.addAmount(p, item.TaxAmount)

	applied, err := s.resolver.GetAppliedRates(ctx, &p.request)
	if err != nil {
		return err
	}
	s.saveAppliedTaxes(p.addr, applied, item.TaxAmount, percent)
	return nil
}

// rowTaxableBase selects the row subtotal tax is computed on, before extra
// taxable add-ons.
func (s *TaxCollectionService) rowTaxableBase(p *collectionPass, item *business.LineItem) business.Money {
	if p.inclusivePricing {
		return item.RowTotalInclTax
	}
	if item.HasCustomPrice() && s.config.ApplyTaxOnCustomPrice {
		return item.RowTotal
	}
	return item.Price.Mul(item.Qty)
}

// calcRowTaxAmount computes the row tax on the extended row subtotal and
// writes it onto the item.
func (s *TaxCollectionService) calcRowTaxAmount(p *collectionPass, item *business.LineItem, percent decimal.Decimal) {
	qty := item.Qty
	subtotal := s.rowTaxableBase(p, item).Add(item.ExtraRowTaxable)

	item.TaxPercent = percent
	rate := percent.Div(decimalHundred)

	var rowTax business.Money
	switch s.config.Sequence {
	case business.TaxBeforeDiscountOnExcl:
		rowTax = s.calc.CalcTaxMoney(subtotal, rate, p.inclusivePricing, true)
	case business.TaxBeforeDiscountOnIncl:
		rowTax = s.calc.CalcTaxMoney(subtotal, rate, p.inclusivePricing, true)
		// The division by quantity only feeds the downstream discount
		// collaborator, never the tax amount itself
		if p.inclusivePricing {
			item.DiscountCalculationPrice = subtotal.Div(qty)
		} else {
			item.DiscountCalculationPrice = subtotal.Add(rowTax).Div(qty)
		}
	default:
		rowTax = s.calc.CalcTaxMoney(subtotal.Sub(item.Discount), rate, p.inclusivePricing, true)
	}

	if p.inclusivePricing {
		unitTax := s.calc.RoundMoney(rowTax.Div(qty))
		s.rewriteInclusivePrices(item, unitTax, rowTax)
	}

	item.TaxAmount = rowTax
}

// taxGroup accumulates the taxable bases of every item sharing one rate.
type taxGroup struct {
	percent      decimal.Decimal
	appliedRates []business.AppliedRateRow
	totals       []business.Money
}

// totalBaseCalculation groups items by rate, sums their taxable bases and
// computes one tax amount per group. Items still get individual tax fields
// for display, but the group amount is what is booked to the address.
func (s *TaxCollectionService) totalBaseCalculation(ctx context.Context, p *collectionPass, items []*business.LineItem) error {
	children := childIndex(items)
	groups := make(map[string]*taxGroup)
	var order []string

	aggregate := func(item *business.LineItem) error {
		if item.Qty.IsZero() {
			return nil
		}

		p.request.ProductClassID = item.TaxClassID
		percent, err := s.resolver.GetRate(ctx, &p.request)
		if err != nil {
			return err
		}
		applied, err := s.resolver.GetAppliedRates(ctx, &p.request)
		if err != nil {
			return err
		}

		key := rateKey(percent)
		group, ok := groups[key]
		if !ok {
			group = &taxGroup{percent: percent}
			groups[key] = group
			order = append(order, key)
		}
		group.appliedRates = applied
		s.aggregateTaxPerRate(p, item, percent, group)
		return nil
	}

	for _, item := range items {
		if item.IsChild() {
			continue
		}

		kids := children[item.ID]
		if item.ChildrenCalculated && len(kids) > 0 {
			for _, child := range kids {
				if err := aggregate(child); err != nil {
					return err
				}
			}
			recalculateParent(item, kids)
		} else {
			if err := aggregate(item); err != nil {
				return err
			}
		}
	}

	for _, key := range order {
		group := groups[key]
		sum := business.ZeroMoney()
		for _, total := range group.totals {
			sum = sum.Add(total)
		}
		rate := group.percent.Div(decimalHundred)
		groupTax := s.calc.CalcTaxMoney(sum, rate, p.inclusivePricing, true)
		s.addAmount(p, groupTax)
		s.saveAppliedTaxes(p.addr, group.appliedRates, groupTax, group.percent)
	}
	return nil
}

// aggregateTaxPerRate computes the item's own tax with delta rounding and
// adds its taxable base to the rate group. The item-level tax fields are
// informative under this strategy; the group-rounded amount is
// authoritative.
func (s *TaxCollectionService) aggregateTaxPerRate(p *collectionPass, item *business.LineItem, percent decimal.Decimal, group *taxGroup) {
	qty := item.Qty
	subtotal := s.rowTaxableBase(p, item)
	calcTotal := subtotal.Add(item.ExtraRowTaxable)

	item.TaxPercent = percent
	rate := percent.Div(decimalHundred)
	key := rateKey(percent)

	var rowTax business.Money
	switch s.config.Sequence {
	case business.TaxBeforeDiscountOnExcl:
		rowTax = s.calc.CalcTaxMoney(calcTotal, rate, p.inclusivePricing, false)
	case business.TaxBeforeDiscountOnIncl:
		rowTax = s.calc.CalcTaxMoney(calcTotal, rate, p.inclusivePricing, false)
		if p.inclusivePricing {
			item.DiscountCalculationPrice = subtotal.Div(qty)
		} else {
			item.DiscountCalculationPrice = subtotal.Add(rowTax).Div(qty)
		}
	default:
		calcTotal = calcTotal.Sub(item.Discount)
		rowTax = s.calc.CalcTaxMoney(calcTotal, rate, p.inclusivePricing, false)
	}

	// Delta rounding: recover the remainder the previous item on this rate
	// lost, and pass the new remainder on
	rowTax = rowTax.Add(p.deltas.carry(key))
	rounded := s.calc.RoundMoney(rowTax)
	p.deltas.store(key, rowTax.Sub(rounded))
	rowTax = rounded

	if p.inclusivePricing {
		unitTax := s.calc.RoundMoney(rowTax.Div(qty))
		s.rewriteInclusivePrices(item, unitTax, rowTax)
	}

	item.TaxAmount = rowTax
	group.totals = append(group.totals, calcTotal)
}

// rewriteInclusivePrices recovers tax-exclusive prices on an item whose
// prices carried tax, by subtracting the computed unit/row tax.
func (s *TaxCollectionService) rewriteInclusivePrices(item *business.LineItem, unitTax, rowTax business.Money) {
	if item.HasCustomPrice() {
		custom := item.PriceInclTax.Sub(unitTax)
		item.CustomPrice = &custom
	} else {
		item.Price = item.PriceInclTax.Sub(unitTax)
	}
	item.RowTotal = item.RowTotalInclTax.Sub(rowTax)
}

// recalculateParent reconciles a parent row from its already-computed
// children. It must run after every child of the item is processed and
// before the next sibling is.
func recalculateParent(parent *business.LineItem, children []*business.LineItem) {
	price := business.ZeroMoney()
	taxAmount := business.ZeroMoney()
	rowTotal := business.ZeroMoney()
	for _, child := range children {
		price = price.Add(child.CalculationPrice())
		taxAmount = taxAmount.Add(child.TaxAmount)
		rowTotal = rowTotal.Add(child.RowTotal)
	}
	parent.Price = price
	parent.TaxAmount = taxAmount
	parent.RowTotal = rowTotal
}
