package utils

import (
	"testing"

	"github.com/SscSPs/storefront_pricing/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatWithCurrencyPrecision(t *testing.T) {
	eur, _ := domain.LookupCurrency(domain.EUR)
	xof, _ := domain.LookupCurrency(domain.XOF)

	tests := []struct {
		name     string
		amount   string
		currency domain.Currency
		want     string
	}{
		{name: "two decimals", amount: "165.0075", currency: eur, want: "165.01"},
		{name: "pads to two decimals", amount: "1.5", currency: eur, want: "1.50"},
		{name: "base currency has no decimals", amount: "110005.4", currency: xof, want: "110005"},
		{name: "negative", amount: "-3.456", currency: eur, want: "-3.46"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatWithCurrencyPrecision(decimal.RequireFromString(tt.amount), tt.currency)
			assert.Equal(t, tt.want, got)
		})
	}
}
