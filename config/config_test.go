package config

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/halcyon-commerce/tax-engine/types/business"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, business.AlgorithmTotalBase, cfg.Algorithm)
	assert.Equal(t, business.TaxAfterDiscountOnExcl, cfg.Sequence)
	assert.Equal(t, int32(2), cfg.Precision)
	assert.False(t, cfg.PriceIncludesTax)
	assert.Nil(t, cfg.ShippingTaxClassID)
}

func TestLoadFromEnv(t *testing.T) {
	shippingClass := uuid.New()

	t.Setenv("TAX_CALC_ALGORITHM", string(business.AlgorithmUnitBase))
	t.Setenv("TAX_CALC_SEQUENCE", string(business.TaxBeforeDiscountOnIncl))
	t.Setenv("TAX_CURRENCY", "JPY")
	t.Setenv("TAX_PRICE_INCLUDES_TAX", "true")
	t.Setenv("TAX_SHIPPING_TAX_CLASS_ID", shippingClass.String())
	t.Setenv("TAX_STORE_COUNTRY", "JP")
	t.Setenv("TAX_STORE_REGION", "13")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)

	assert.Equal(t, business.AlgorithmUnitBase, cfg.Algorithm)
	assert.Equal(t, business.TaxBeforeDiscountOnIncl, cfg.Sequence)
	assert.Equal(t, int32(0), cfg.Precision)
	assert.True(t, cfg.PriceIncludesTax)
	require.NotNil(t, cfg.ShippingTaxClassID)
	assert.Equal(t, shippingClass, *cfg.ShippingTaxClassID)
	assert.Equal(t, "JP", cfg.StoreRequest.CountryID)
	assert.Equal(t, "13", cfg.StoreRequest.RegionID)
}

func TestLoadFromEnv_Invalid(t *testing.T) {
	t.Run("bad currency", func(t *testing.T) {
		t.Setenv("TAX_CURRENCY", "YENS")
		_, err := LoadFromEnv()
		assert.Error(t, err)
	})

	t.Run("bad bool", func(t *testing.T) {
		t.Setenv("TAX_PRICE_INCLUDES_TAX", "maybe")
		_, err := LoadFromEnv()
		assert.Error(t, err)
	})

	t.Run("bad shipping class id", func(t *testing.T) {
		t.Setenv("TAX_SHIPPING_TAX_CLASS_ID", "not-a-uuid")
		_, err := LoadFromEnv()
		assert.Error(t, err)
	})
}
