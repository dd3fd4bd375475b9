package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrecisionFor(t *testing.T) {
	helper := NewCurrencyHelper()

	tests := []struct {
		name string
		code string
		want int32
	}{
		{name: "two decimal currency", code: "USD", want: 2},
		{name: "zero decimal currency", code: "JPY", want: 0},
		{name: "three decimal currency", code: "KWD", want: 3},
		{name: "lowercase input", code: "eur", want: 2},
		{name: "padded input", code: " GBP ", want: 2},
		{name: "unknown falls back to default", code: "XYZ", want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, helper.PrecisionFor(tt.code))
		})
	}
}

func TestValidateCurrencyCode(t *testing.T) {
	helper := NewCurrencyHelper()

	assert.NoError(t, helper.ValidateCurrencyCode("USD"))
	assert.NoError(t, helper.ValidateCurrencyCode("usd"))
	assert.Error(t, helper.ValidateCurrencyCode("US"))
	assert.Error(t, helper.ValidateCurrencyCode("USDX"))
	assert.Error(t, helper.ValidateCurrencyCode("U$D"))
	assert.Error(t, helper.ValidateCurrencyCode(""))
}
