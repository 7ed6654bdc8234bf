package domain_test

import (
	"testing"

	"github.com/SscSPs/storefront_pricing/internal/apperrors"
	"github.com/SscSPs/storefront_pricing/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func TestParseCurrencyCode(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    domain.CurrencyCode
		wantErr bool
	}{
		{name: "base currency", raw: "XOF", want: domain.XOF},
		{name: "lower case is normalised", raw: "eur", want: domain.EUR},
		{name: "surrounding whitespace is trimmed", raw: "  usd ", want: domain.USD},
		{name: "unknown code", raw: "GBP", wantErr: true},
		{name: "empty string", raw: "", wantErr: true},
		{name: "garbage", raw: "€€€", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseCurrencyCode(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperrors.ErrUnsupportedCurrency)
				assert.Empty(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSupportedCurrencies(t *testing.T) {
	currencies := domain.SupportedCurrencies()
	require.Len(t, currencies, 3)
	assert.Equal(t, domain.BaseCurrency, currencies[0].CurrencyCode, "base currency should be listed first")

	// Every code must be a real ISO 4217 unit.
	for _, c := range currencies {
		unit, err := currency.ParseISO(string(c.CurrencyCode))
		require.NoError(t, err, "currency %s", c.CurrencyCode)
		assert.Equal(t, string(c.CurrencyCode), unit.String())
		scale, _ := currency.Standard.Rounding(unit)
		assert.Equal(t, scale, c.Precision, "precision for %s should follow ISO 4217 minor units", c.CurrencyCode)
		assert.NotEmpty(t, c.Symbol)
		assert.NotEmpty(t, c.Name)
	}

	// Mutating the returned slice must not leak into the table.
	currencies[0].Symbol = "changed"
	base, ok := domain.LookupCurrency(domain.BaseCurrency)
	require.True(t, ok)
	assert.Equal(t, "F CFA", base.Symbol)
}

func TestIsSupported(t *testing.T) {
	assert.True(t, domain.IsSupported(domain.XOF))
	assert.True(t, domain.IsSupported(domain.EUR))
	assert.True(t, domain.IsSupported(domain.USD))
	assert.False(t, domain.IsSupported("xof"))
	assert.False(t, domain.IsSupported("JPY"))
}

func TestDefaultRateTable_Diagonal(t *testing.T) {
	table := domain.DefaultRateTable()
	for _, c := range domain.SupportedCurrencies() {
		r, ok := table.Rate(c.CurrencyCode, c.CurrencyCode)
		require.True(t, ok)
		assert.True(t, r.Equal(decimal.NewFromInt(1)), "rate(%s, %s) = %s", c.CurrencyCode, c.CurrencyCode, r)
	}
}

func TestDefaultRateTable_Square(t *testing.T) {
	table := domain.DefaultRateTable()
	for _, from := range domain.SupportedCurrencies() {
		for _, to := range domain.SupportedCurrencies() {
			r, ok := table.Rate(from.CurrencyCode, to.CurrencyCode)
			require.True(t, ok, "missing rate %s->%s", from.CurrencyCode, to.CurrencyCode)
			assert.True(t, r.IsPositive(), "rate %s->%s must be positive", from.CurrencyCode, to.CurrencyCode)
		}
	}

	r, _ := table.Rate(domain.XOF, domain.EUR)
	assert.Equal(t, "0.0015", r.String())
	r, _ = table.Rate(domain.XOF, domain.USD)
	assert.Equal(t, "0.0017", r.String())
}

func TestDefaultRateTable_UnknownCode(t *testing.T) {
	_, ok := domain.DefaultRateTable().Rate(domain.XOF, "JPY")
	assert.False(t, ok)
	_, ok = domain.DefaultRateTable().Rate("JPY", "JPY")
	assert.False(t, ok)
}

func TestNewRateTable_Overrides(t *testing.T) {
	rows := []domain.ExchangeRate{
		{FromCurrencyCode: domain.XOF, ToCurrencyCode: domain.EUR, Rate: decimal.RequireFromString("0.00152")},
		{FromCurrencyCode: domain.XOF, ToCurrencyCode: "GBP", Rate: decimal.RequireFromString("0.0013")},
		{FromCurrencyCode: domain.EUR, ToCurrencyCode: domain.USD, Rate: decimal.Zero},
		{FromCurrencyCode: domain.USD, ToCurrencyCode: domain.USD, Rate: decimal.NewFromInt(2)},
	}

	table, applied := domain.NewRateTable(rows, domain.DefaultRateTable())
	assert.Equal(t, 1, applied)

	r, ok := table.Rate(domain.XOF, domain.EUR)
	require.True(t, ok)
	assert.Equal(t, "0.00152", r.String())

	// Skipped rows fall back to the static table.
	fallback, _ := domain.DefaultRateTable().Rate(domain.EUR, domain.USD)
	r, ok = table.Rate(domain.EUR, domain.USD)
	require.True(t, ok)
	assert.True(t, fallback.Equal(r))

	r, _ = table.Rate(domain.USD, domain.USD)
	assert.True(t, r.Equal(decimal.NewFromInt(1)))

	// The fallback table itself is untouched.
	r, _ = domain.DefaultRateTable().Rate(domain.XOF, domain.EUR)
	assert.Equal(t, "0.0015", r.String())
}

func TestNewRateTable_DerivesReversePair(t *testing.T) {
	rows := []domain.ExchangeRate{
		{FromCurrencyCode: domain.XOF, ToCurrencyCode: domain.EUR, Rate: decimal.RequireFromString("0.00152")},
	}

	table, applied := domain.NewRateTable(rows, domain.DefaultRateTable())
	assert.Equal(t, 1, applied)

	r, ok := table.Rate(domain.EUR, domain.XOF)
	require.True(t, ok)
	assert.Equal(t, "657.8947368421052632", r.String())

	// 100000 XOF -> 152.00 EUR -> back within a cent.
	forward, _ := table.Rate(domain.XOF, domain.EUR)
	eur := decimal.NewFromInt(100000).Mul(forward).Round(2)
	back := eur.Mul(r).Round(2)
	assert.True(t, back.Sub(decimal.NewFromInt(100000)).Abs().LessThanOrEqual(decimal.RequireFromString("0.01")), "round trip gave %s", back)
}

func TestNewRateTable_KeepsExplicitReversePair(t *testing.T) {
	rows := []domain.ExchangeRate{
		{FromCurrencyCode: domain.XOF, ToCurrencyCode: domain.EUR, Rate: decimal.RequireFromString("0.00152")},
		{FromCurrencyCode: domain.EUR, ToCurrencyCode: domain.XOF, Rate: decimal.RequireFromString("655.957")},
	}

	table, applied := domain.NewRateTable(rows, domain.DefaultRateTable())
	assert.Equal(t, 2, applied)

	r, ok := table.Rate(domain.EUR, domain.XOF)
	require.True(t, ok)
	assert.Equal(t, "655.957", r.String())
}
