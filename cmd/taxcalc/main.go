// Command taxcalc runs one tax collection pass against the configured
// Postgres rate store and prints the resulting totals. It exists for
// inspecting rate configuration locally, not for production use.
package main

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/halcyon-commerce/tax-engine/config"
	"github.com/halcyon-commerce/tax-engine/db"
	"github.com/halcyon-commerce/tax-engine/logger"
	"github.com/halcyon-commerce/tax-engine/services"
	"github.com/halcyon-commerce/tax-engine/types/business"
)

func main() {
	stage := os.Getenv("STAGE")
	if stage == "" {
		stage = "local"
	}
	logger.InitLogger(stage)
	defer func() { _ = logger.Sync() }()

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v\n", err)
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v\n", err)
	}
	defer pool.Close()

	productClass, err := uuid.Parse(os.Getenv("TAX_PRODUCT_CLASS_ID"))
	if err != nil {
		log.Fatalf("Invalid TAX_PRODUCT_CLASS_ID: %v\n", err)
	}

	resolver := services.NewPostgresRateResolver(db.New(pool))
	service := services.NewTaxCollectionService(resolver, cfg)

	price := decimal.RequireFromString(envOr("TAX_DEMO_PRICE", "100.00"))
	qty := decimal.RequireFromString(envOr("TAX_DEMO_QTY", "1"))

	item := &business.LineItem{
		ID:         uuid.New(),
		TaxClassID: productClass,
		Qty:        qty,
		Price:      business.NewMoney(price, price),
		RowTotal:   business.NewMoney(price.Mul(qty), price.Mul(qty)),
	}
	addr := &business.AddressTotals{}

	request := cfg.StoreRequest
	if country := os.Getenv("TAX_DEMO_COUNTRY"); country != "" {
		request.CountryID = country
		request.RegionID = os.Getenv("TAX_DEMO_REGION")
		request.PostCode = os.Getenv("TAX_DEMO_POSTCODE")
	}

	if err := service.Collect(ctx, addr, []*business.LineItem{item}, &request); err != nil {
		log.Fatalf("Tax collection failed: %v\n", err)
	}

	out := map[string]any{
		"tax_amount":    addr.TaxAmount.Amount,
		"tax_percent":   item.TaxPercent,
		"shipping_tax":  addr.ShippingTax.Amount,
		"applied_taxes": addr.AppliedTaxes,
		"totals":        service.Fetch(addr),
	}
	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		log.Fatalf("Failed to encode result: %v\n", err)
	}
	os.Stdout.Write(append(encoded, '\n'))
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
