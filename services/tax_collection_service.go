package services

import (
	"context"
	"sort"

	"github.com/halcyon-commerce/tax-engine/config"
	"github.com/halcyon-commerce/tax-engine/logger"
	"github.com/halcyon-commerce/tax-engine/types/api/responses"
	"github.com/halcyon-commerce/tax-engine/types/business"
	"go.uber.org/zap"
)

// TaxCollectionService allocates tax across the line items of one address:
// it computes per-item and shipping taxes with the configured strategy,
// accumulates address totals and maintains the applied-tax ledger.
//
// One service is safe for concurrent passes over different addresses; all
// mutable pass state lives in a per-call collectionPass.
type TaxCollectionService struct {
	resolver RateResolver
	calc     *TaxCalculator
	config   *config.Config
	logger   *zap.Logger
}

// NewTaxCollectionService creates a new tax collection service.
func NewTaxCollectionService(resolver RateResolver, cfg *config.Config) *TaxCollectionService {
	return &TaxCollectionService{
		resolver: resolver,
		calc:     NewTaxCalculator(cfg.Precision),
		config:   cfg,
		logger:   logger.Log,
	}
}

// collectionPass carries the state of one Collect call. The rounding ledger
// and the jurisdiction-equivalence flag are computed once per pass and must
// not leak into the next one.
type collectionPass struct {
	addr    *business.AddressTotals
	request business.RateRequest
	// sameJurisdiction is true when the customer is taxed like the store's
	// home jurisdiction. inclusivePricing additionally requires catalog
	// prices to carry tax; shipping extraction only needs the former. Both
	// are computed once; recomputing per item would be wrong once item
	// prices were rewritten.
	sameJurisdiction bool
	inclusivePricing bool
	deltas           *roundingLedger
}

// Collect computes and accumulates tax for one address. items may be empty,
// in which case the address is returned untouched. request is the
// customer's jurisdiction request; its product class field is rewritten per
// item during the pass.
//
// Collect mutates both the items (tax fields, and price fields under
// tax-inclusive pricing) and addr. On error, mutations already applied are
// not rolled back; the caller must re-run from a clean snapshot.
func (s *TaxCollectionService) Collect(ctx context.Context, addr *business.AddressTotals, items []*business.LineItem, request *business.RateRequest) error {
	if !addr.AppliedTaxesReset {
		addr.AppliedTaxes = make(map[string]*business.AppliedTax)
	}

	if len(items) == 0 {
		return nil
	}

	sameJurisdiction := s.config.StoreRequest.EquivalentTo(request)
	pass := &collectionPass{
		addr:             addr,
		request:          *request,
		sameJurisdiction: sameJurisdiction,
		inclusivePricing: s.usePriceIncludeTax(sameJurisdiction),
		deltas:           newRoundingLedger(),
	}

	var err error
	switch s.config.Algorithm {
	case business.AlgorithmUnitBase:
		err = s.unitBaseCalculation(ctx, pass, items)
	case business.AlgorithmRowBase:
		err = s.rowBaseCalculation(ctx, pass, items)
	case business.AlgorithmTotalBase:
		err = s.totalBaseCalculation(ctx, pass, items)
	default:
		// Unknown algorithm leaves items untaxed
		s.logger.Debug("Skipping tax calculation for unknown algorithm",
			zap.String("algorithm", string(s.config.Algorithm)))
	}
	if err != nil {
		return err
	}

	// When prices include tax the exclusive subtotal is discovered by
	// subtracting the collected tax, not computed directly.
	if pass.inclusivePricing {
		addr.Subtotal = addr.SubtotalInclTax.Sub(addr.TaxAmount)
	}

	s.addAmount(pass, addr.ExtraTax)

	return s.calculateShippingTax(ctx, pass)
}

// usePriceIncludeTax decides whether tax-inclusive price handling applies:
// catalog prices include tax (or the cross-border compatibility flag is
// set) and the customer's request matches the store's default request.
func (s *TaxCollectionService) usePriceIncludeTax(sameJurisdiction bool) bool {
	return (s.config.PriceIncludesTax || s.config.CrossBorderPriceConversion) && sameJurisdiction
}

// addAmount folds a tax amount into the address's running total.
func (s *TaxCollectionService) addAmount(p *collectionPass, amount business.Money) {
	p.addr.TaxAmount = p.addr.TaxAmount.Add(amount)
}

// calculateShippingTax computes tax on the shipping charge. It runs once
// per pass and no-ops when no shipping tax class is configured or the rate
// resolves to zero.
func (s *TaxCollectionService) calculateShippingTax(ctx context.Context, p *collectionPass) error {
	shippingAmount := p.addr.Shipping
	calcAmount := shippingAmount
	if s.config.ApplyTaxAfterDiscount {
		calcAmount = shippingAmount.Sub(p.addr.ShippingDiscount)
	}

	shippingTax := business.ZeroMoney()
	if s.config.ShippingTaxClassID != nil {
		p.request.ProductClassID = *s.config.ShippingTaxClassID
		percent, err := s.resolver.GetRate(ctx, &p.request)
		if err != nil {
			return err
		}
		if !percent.IsZero() {
			rate := percent.Div(decimalHundred)
			// Shipping extraction does not depend on catalog prices being
			// inclusive, only on the shipping charge itself carrying tax
			// for a home-jurisdiction customer
			if s.config.ShippingPriceIncludesTax && p.sameJurisdiction {
				shippingTax = s.calc.CalcTaxMoney(calcAmount, rate, true, false)
				shippingAmount = shippingAmount.Sub(shippingTax)
			} else {
				shippingTax = s.calc.CalcTaxMoney(calcAmount, rate, false, false)
			}

			// Recover remainders left behind by item groups on this rate
			shippingTax = shippingTax.Add(p.deltas.carry(rateKey(percent)))
			shippingTax = s.calc.RoundMoney(shippingTax)

			p.addr.Shipping = shippingAmount

			if s.config.DiscountTax {
				forDiscount := shippingAmount.Add(shippingTax)
				p.addr.ShippingForDiscount = &forDiscount
			}

			s.addAmount(p, shippingTax)

			applied, err := s.resolver.GetAppliedRates(ctx, &p.request)
			if err != nil {
				return err
			}
			s.saveAppliedTaxes(p.addr, applied, shippingTax, percent)
		}
	}

	p.addr.ShippingTax = shippingTax
	return nil
}

// Fetch formats the already-collected amounts into display-ready total
// lines. It is read-only: no allocation state is modified.
func (s *TaxCollectionService) Fetch(addr *business.AddressTotals) *responses.DisplayTotals {
	totals := &responses.DisplayTotals{}

	area := ""
	if s.config.DisplayCartTaxWithGrandTotal && !addr.GrandTotal.IsZero() {
		area = "taxes"
	}

	if !addr.TaxAmount.Amount.IsZero() || s.config.DisplayCartZeroTax {
		totals.Totals = append(totals.Totals, responses.TotalLine{
			Code:     "tax",
			Title:    "Tax",
			Value:    addr.TaxAmount.Amount,
			Area:     area,
			FullInfo: sortedAppliedTaxes(addr.AppliedTaxes),
		})
	}

	// Display-mode selection changes which subtotal values are
	// authoritative, so it belongs here rather than in rendering.
	if s.config.DisplayCartSubtotalBoth || s.config.DisplayCartSubtotalInclTax {
		subtotalInclTax := addr.SubtotalInclTax.Amount
		if !subtotalInclTax.IsPositive() {
			subtotalInclTax = addr.Subtotal.Amount.
				Add(addr.TaxAmount.Amount).
				Sub(addr.ShippingTax.Amount)
		}
		exclTax := addr.Subtotal.Amount
		totals.Totals = append(totals.Totals, responses.TotalLine{
			Code:         "subtotal",
			Title:        "Subtotal",
			Value:        subtotalInclTax,
			ValueInclTax: &subtotalInclTax,
			ValueExclTax: &exclTax,
		})
	}

	return totals
}

// sortedAppliedTaxes returns ledger entries in insertion order.
func sortedAppliedTaxes(applied map[string]*business.AppliedTax) []*business.AppliedTax {
	if len(applied) == 0 {
		return nil
	}
	entries := make([]*business.AppliedTax, 0, len(applied))
	for _, entry := range applied {
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ProcessOrder < entries[j].ProcessOrder
	})
	return entries
}
