package services

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/halcyon-commerce/tax-engine/db"
	"github.com/halcyon-commerce/tax-engine/logger"
	"github.com/halcyon-commerce/tax-engine/types/business"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ErrUnresolvableRate is returned when an item's taxable class cannot be
// resolved to any rate configuration. It signals bad configuration or data
// and aborts the pass; it is never retried.
var ErrUnresolvableRate = errors.New("tax rate cannot be resolved for product tax class")

// RateResolver supplies tax rates and their compound decomposition for a
// jurisdiction request. Implementations must be deterministic for identical
// request fields within one allocation pass.
type RateResolver interface {
	// GetRate returns the total rate as a percent (8.25 for 8.25%).
	GetRate(ctx context.Context, request *business.RateRequest) (decimal.Decimal, error)
	// GetAppliedRates returns the rate's decomposition into applied rows,
	// one per priority group of a compound tax.
	GetAppliedRates(ctx context.Context, request *business.RateRequest) ([]business.AppliedRateRow, error)
}

// PostgresRateResolver resolves rates from the tax_rates tables. Results
// are memoized per request key, so repeated lookups within a pass are both
// cheap and deterministic.
type PostgresRateResolver struct {
	queries db.Querier
	logger  *zap.Logger

	mu         sync.Mutex
	rateCache  map[string]decimal.Decimal
	ratesCache map[string][]business.AppliedRateRow
}

// NewPostgresRateResolver creates a rate resolver over the given queries.
func NewPostgresRateResolver(queries db.Querier) *PostgresRateResolver {
	return &PostgresRateResolver{
		queries:    queries,
		logger:     logger.Log,
		rateCache:  make(map[string]decimal.Decimal),
		ratesCache: make(map[string][]business.AppliedRateRow),
	}
}

// GetRate returns the summed percent of every rate row matching the request.
func (r *PostgresRateResolver) GetRate(ctx context.Context, request *business.RateRequest) (decimal.Decimal, error) {
	key := requestKey(request)

	r.mu.Lock()
	if rate, ok := r.rateCache[key]; ok {
		r.mu.Unlock()
		return rate, nil
	}
	r.mu.Unlock()

	rows, err := r.lookupRates(ctx, request)
	if err != nil {
		return decimal.Zero, err
	}

	rate := decimal.Zero
	for _, row := range rows {
		percent, err := numericToDecimal(row.Percent)
		if err != nil {
			return decimal.Zero, errors.Wrapf(err, "reading percent of tax rate %s", row.Code)
		}
		rate = rate.Add(percent)
	}

	r.mu.Lock()
	r.rateCache[key] = rate
	r.mu.Unlock()

	return rate, nil
}

// GetAppliedRates groups the matching rate rows by priority: rates sharing
// a priority are charged together and reported as one applied row whose
// percent is their sum.
func (r *PostgresRateResolver) GetAppliedRates(ctx context.Context, request *business.RateRequest) ([]business.AppliedRateRow, error) {
	key := requestKey(request)

	r.mu.Lock()
	if applied, ok := r.ratesCache[key]; ok {
		r.mu.Unlock()
		return applied, nil
	}
	r.mu.Unlock()

	rows, err := r.lookupRates(ctx, request)
	if err != nil {
		return nil, err
	}

	var applied []business.AppliedRateRow
	var current *business.AppliedRateRow
	currentPriority := int32(0)
	for _, row := range rows {
		percent, err := numericToDecimal(row.Percent)
		if err != nil {
			return nil, errors.Wrapf(err, "reading percent of tax rate %s", row.Code)
		}
		sub := business.AppliedSubRate{
			Code:    row.Code,
			Title:   row.Title,
			Percent: &percent,
		}
		if current == nil || row.Priority != currentPriority {
			applied = append(applied, business.AppliedRateRow{})
			current = &applied[len(applied)-1]
			currentPriority = row.Priority
		}
		current.Rates = append(current.Rates, sub)
	}

	// Row id and percent derive from the member rates
	for i := range applied {
		codes := make([]string, 0, len(applied[i].Rates))
		total := decimal.Zero
		for _, sub := range applied[i].Rates {
			codes = append(codes, sub.Code)
			total = total.Add(*sub.Percent)
		}
		applied[i].ID = strings.Join(codes, "/")
		percent := total
		applied[i].Percent = &percent
	}

	r.mu.Lock()
	r.ratesCache[key] = applied
	r.mu.Unlock()

	return applied, nil
}

func (r *PostgresRateResolver) lookupRates(ctx context.Context, request *business.RateRequest) ([]db.TaxRate, error) {
	if request.ProductClassID == uuid.Nil {
		return nil, ErrUnresolvableRate
	}

	if _, err := r.queries.GetTaxClass(ctx, request.ProductClassID); err != nil {
		r.logger.Warn("Unknown product tax class",
			zap.String("product_class_id", request.ProductClassID.String()),
			zap.Error(err))
		return nil, ErrUnresolvableRate
	}

	rows, err := r.queries.ListApplicableTaxRates(ctx, db.ListApplicableTaxRatesParams{
		CountryID:       request.CountryID,
		RegionID:        request.RegionID,
		PostCode:        request.PostCode,
		CustomerClassID: request.CustomerClassID,
		ProductClassID:  request.ProductClassID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "listing applicable tax rates")
	}
	return rows, nil
}

func requestKey(request *business.RateRequest) string {
	return strings.Join([]string{
		request.CountryID,
		request.RegionID,
		request.PostCode,
		request.CustomerClassID.String(),
		request.ProductClassID.String(),
	}, "|")
}

func numericToDecimal(n pgtype.Numeric) (decimal.Decimal, error) {
	if !n.Valid || n.Int == nil {
		return decimal.Zero, errors.New("numeric value is null")
	}
	return decimal.NewFromBigInt(n.Int, n.Exp), nil
}
