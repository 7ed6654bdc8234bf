package services

import (
	"context"

	"github.com/SscSPs/storefront_pricing/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyCatalogSvc exposes the supported currencies and the active rate table.
type CurrencyCatalogSvc interface {
	// ListCurrencies returns the supported currencies, base currency first.
	ListCurrencies() []domain.Currency

	// Rate returns the multiplier converting from into to.
	Rate(from, to domain.CurrencyCode) (decimal.Decimal, error)
}

// PriceFormatterSvc converts and renders monetary amounts.
type PriceFormatterSvc interface {
	// ConvertPrice converts amount between two supported currencies, rounding half-up to cents.
	ConvertPrice(amount decimal.Decimal, from, to domain.CurrencyCode) decimal.Decimal

	// FormatPrice renders a base-currency amount in the requested (or preferred) currency.
	FormatPrice(ctx context.Context, amount decimal.Decimal, opts ...domain.FormatOption) string

	// FormatPriceWithSymbol is FormatPrice with the symbol always shown.
	FormatPriceWithSymbol(ctx context.Context, amount decimal.Decimal, opts ...domain.FormatOption) string
}

// CurrencyPreferenceSvc manages the persisted display currency.
type CurrencyPreferenceSvc interface {
	// GetPreferredCurrency returns the stored preference, or the base currency.
	GetPreferredCurrency(ctx context.Context) domain.CurrencyCode

	// SetPreferredCurrency overwrites the stored preference.
	SetPreferredCurrency(ctx context.Context, code domain.CurrencyCode) error
}

// PricingSvcFacade combines all pricing-related service interfaces
type PricingSvcFacade interface {
	CurrencyCatalogSvc
	PriceFormatterSvc
	CurrencyPreferenceSvc

	// ForClient returns a facade whose preference reads and writes are isolated to namespace.
	ForClient(namespace string) PricingSvcFacade
}
