package utils

import (
	"github.com/SscSPs/storefront_pricing/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatWithCurrencyPrecision renders amount as a plain machine-readable number with the
// currency's display precision, padding with zeros where needed.
// Example: 165.0075 with EUR (precision 2) returns "165.01"
// Example: 110005.4 with XOF (precision 0) returns "110005"
func FormatWithCurrencyPrecision(amount decimal.Decimal, currency domain.Currency) string {
	return FormatWithPrecision(amount, currency.Precision)
}

// FormatWithPrecision formats an amount with the given precision
// This is a convenience function when you only have the precision value
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}
