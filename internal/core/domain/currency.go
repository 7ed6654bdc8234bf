package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/storefront_pricing/internal/apperrors"
)

// CurrencyCode is an ISO 4217 code from the closed set the storefront supports.
type CurrencyCode string

const (
	XOF CurrencyCode = "XOF" // Franc CFA (BCEAO), base currency
	EUR CurrencyCode = "EUR" // Euro
	USD CurrencyCode = "USD" // US Dollar
)

// BaseCurrency is the unit every stored amount is expressed in.
const BaseCurrency = XOF

// Currency represents a supported currency in the domain.
type Currency struct {
	CurrencyCode CurrencyCode `json:"currencyCode"` // e.g., "EUR"
	Symbol       string       `json:"symbol"`       // e.g., "€"
	Name         string       `json:"name"`         // e.g., "Euro"
	Precision    int          `json:"precision"`    // display decimals
}

// supportedCurrencies is ordered base first; it is never mutated after init.
var supportedCurrencies = []Currency{
	{CurrencyCode: XOF, Symbol: "F CFA", Name: "Franc CFA (BCEAO)", Precision: 0},
	{CurrencyCode: EUR, Symbol: "€", Name: "Euro", Precision: 2},
	{CurrencyCode: USD, Symbol: "$", Name: "US Dollar", Precision: 2},
}

var currencyByCode = func() map[CurrencyCode]Currency {
	m := make(map[CurrencyCode]Currency, len(supportedCurrencies))
	for _, c := range supportedCurrencies {
		m[c.CurrencyCode] = c
	}
	return m
}()

// SupportedCurrencies returns a copy of the currency table, base currency first.
func SupportedCurrencies() []Currency {
	out := make([]Currency, len(supportedCurrencies))
	copy(out, supportedCurrencies)
	return out
}

// IsSupported reports whether code belongs to the closed currency set.
func IsSupported(code CurrencyCode) bool {
	_, ok := currencyByCode[code]
	return ok
}

// LookupCurrency returns the metadata for code.
func LookupCurrency(code CurrencyCode) (Currency, bool) {
	c, ok := currencyByCode[code]
	return c, ok
}

// ParseCurrencyCode normalises raw user input and checks it against the supported set.
func ParseCurrencyCode(raw string) (CurrencyCode, error) {
	code := CurrencyCode(strings.ToUpper(strings.TrimSpace(raw)))
	if !IsSupported(code) {
		return "", fmt.Errorf("%w: '%s'", apperrors.ErrUnsupportedCurrency, raw)
	}
	return code, nil
}

// String implements fmt.Stringer.
func (c CurrencyCode) String() string {
	return string(c)
}
