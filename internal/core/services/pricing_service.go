package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/storefront_pricing/internal/apperrors"
	"github.com/SscSPs/storefront_pricing/internal/core/domain"
	portsrepo "github.com/SscSPs/storefront_pricing/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/storefront_pricing/internal/core/ports/services"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
)

// PreferredCurrencyKey is the storage key holding the display currency code.
const PreferredCurrencyKey = "preferred_currency"

// DefaultDisplayLocale drives digit grouping and the decimal separator.
var DefaultDisplayLocale = language.MustParse("fr-FR")

// centsScale is the number of decimals kept after a cross-currency conversion.
const centsScale = 2

var half = decimal.New(5, -1)

// RateProvider supplies exchange rates between supported currencies.
// domain.RateTable satisfies it.
type RateProvider interface {
	Rate(from, to domain.CurrencyCode) (decimal.Decimal, bool)
}

// PricingService converts and formats prices and manages the preferred display currency.
type PricingService struct {
	BaseService
	store   portsrepo.PreferenceStore
	rates   RateProvider
	locale  language.Tag
	symbols numberSymbols
}

// PricingServiceOption configures a PricingService.
type PricingServiceOption func(*PricingService)

// WithRateProvider replaces the static rate table.
func WithRateProvider(rates RateProvider) PricingServiceOption {
	return func(s *PricingService) {
		s.rates = rates
	}
}

// WithDisplayLocale sets the locale used for number formatting.
func WithDisplayLocale(tag language.Tag) PricingServiceOption {
	return func(s *PricingService) {
		s.locale = tag
	}
}

// NewPricingService creates a PricingService reading and writing the preference through store.
func NewPricingService(store portsrepo.PreferenceStore, opts ...PricingServiceOption) *PricingService {
	s := &PricingService{
		store:  store,
		rates:  domain.DefaultRateTable(),
		locale: DefaultDisplayLocale,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.symbols = localeNumberSymbols(s.locale)
	return s
}

// Ensure implementation matches interface
var _ portssvc.PricingSvcFacade = (*PricingService)(nil)

// ForClient returns a copy whose preference is isolated to namespace.
func (s *PricingService) ForClient(namespace string) portssvc.PricingSvcFacade {
	scoped := *s
	scoped.store = newScopedStore(s.store, namespace)
	return &scoped
}

// ListCurrencies returns the supported currencies, base currency first.
func (s *PricingService) ListCurrencies() []domain.Currency {
	return domain.SupportedCurrencies()
}

// Rate returns the multiplier converting from into to.
func (s *PricingService) Rate(from, to domain.CurrencyCode) (decimal.Decimal, error) {
	if !domain.IsSupported(from) {
		return decimal.Zero, fmt.Errorf("%w: '%s'", apperrors.ErrUnsupportedCurrency, from)
	}
	if !domain.IsSupported(to) {
		return decimal.Zero, fmt.Errorf("%w: '%s'", apperrors.ErrUnsupportedCurrency, to)
	}
	rate, ok := s.rates.Rate(from, to)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: no rate for %s->%s", apperrors.ErrNotFound, from, to)
	}
	return rate, nil
}

// GetPreferredCurrency returns the stored display currency.
// A missing, unrecognised or unreadable value yields the base currency.
func (s *PricingService) GetPreferredCurrency(ctx context.Context) domain.CurrencyCode {
	value, found, err := s.store.GetItem(ctx, PreferredCurrencyKey)
	if err != nil {
		s.LogWarn(ctx, err, "Failed to read preferred currency, using base currency")
		return domain.BaseCurrency
	}
	if !found {
		return domain.BaseCurrency
	}

	code := domain.CurrencyCode(value)
	if !domain.IsSupported(code) {
		s.LogDebug(ctx, "Ignoring unrecognised stored currency", slog.String("stored_value", value))
		return domain.BaseCurrency
	}
	return code
}

// SetPreferredCurrency overwrites the stored display currency. Callers pass a supported code.
func (s *PricingService) SetPreferredCurrency(ctx context.Context, code domain.CurrencyCode) error {
	if err := s.store.SetItem(ctx, PreferredCurrencyKey, string(code)); err != nil {
		return fmt.Errorf("failed to save preferred currency in service: %w", err)
	}
	s.LogDebug(ctx, "Preferred currency updated", slog.String("currency_code", string(code)))
	return nil
}

// ConvertPrice converts amount from one supported currency to another.
// The identity conversion returns amount untouched; every other result is
// rounded half-up to the hundredths digit. Codes outside the supported set yield zero.
func (s *PricingService) ConvertPrice(amount decimal.Decimal, from, to domain.CurrencyCode) decimal.Decimal {
	if from == to {
		return amount
	}
	rate, ok := s.rates.Rate(from, to)
	if !ok {
		return decimal.Zero
	}
	return roundHalfUp(amount.Mul(rate), centsScale)
}

// FormatPrice renders a base-currency amount for display.
// The base currency is shown without decimals and with an optional trailing label;
// other currencies always show two decimals and their symbol.
func (s *PricingService) FormatPrice(ctx context.Context, amount decimal.Decimal, opts ...domain.FormatOption) string {
	o := domain.DefaultFormatOptions()
	for _, opt := range opts {
		opt(&o)
	}

	code := o.Currency
	if code == "" {
		code = s.GetPreferredCurrency(ctx)
	}
	meta, _ := domain.LookupCurrency(code)
	converted := s.ConvertPrice(amount, domain.BaseCurrency, code)

	if code == domain.BaseCurrency {
		text := s.symbols.format(converted, 0)
		if !o.ShowSymbol {
			return text
		}
		return text + " " + meta.Symbol
	}

	return s.symbols.format(converted, centsScale) + " " + meta.Symbol
}

// FormatPriceWithSymbol is FormatPrice with the currency label always shown.
func (s *PricingService) FormatPriceWithSymbol(ctx context.Context, amount decimal.Decimal, opts ...domain.FormatOption) string {
	return s.FormatPrice(ctx, amount, append(opts[:len(opts):len(opts)], domain.WithSymbol(true))...)
}

// roundHalfUp rounds d to places decimals, with ties going toward positive infinity.
func roundHalfUp(d decimal.Decimal, places int32) decimal.Decimal {
	return d.Shift(places).Add(half).Floor().Shift(-places)
}
