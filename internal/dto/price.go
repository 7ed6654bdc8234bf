package dto

import (
	"github.com/SscSPs/storefront_pricing/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ConvertPriceRequest defines the input for a single conversion.
type ConvertPriceRequest struct {
	Amount           *decimal.Decimal `json:"amount" binding:"required"`
	FromCurrencyCode string           `json:"from" binding:"required,currencycode"`
	ToCurrencyCode   string           `json:"to" binding:"required,currencycode"`
}

// ConvertPriceResponse carries the converted amount.
type ConvertPriceResponse struct {
	Amount           decimal.Decimal `json:"amount"`
	FromCurrencyCode string          `json:"from"`
	ToCurrencyCode   string          `json:"to"`
	ConvertedAmount  decimal.Decimal `json:"convertedAmount"`
	Display          string          `json:"display"` // converted amount at the target currency's precision
}

// ToConvertPriceResponse builds the response for a conversion.
func ToConvertPriceResponse(amount, converted decimal.Decimal, from, to domain.CurrencyCode) ConvertPriceResponse {
	return ConvertPriceResponse{
		Amount:           amount,
		FromCurrencyCode: string(from),
		ToCurrencyCode:   string(to),
		ConvertedAmount:  converted,
		Display:          formatAmount(converted, to),
	}
}

// FormatPricesRequest asks for display strings of base-currency amounts, at most 200 per call.
// CurrencyCode defaults to the caller's preferred currency and ShowSymbol to true.
type FormatPricesRequest struct {
	Amounts      []decimal.Decimal `json:"amounts" binding:"required,min=1,max=200"`
	CurrencyCode string            `json:"currency" binding:"omitempty,currencycode"`
	ShowSymbol   *bool             `json:"showSymbol"`
}

// FormattedPrice is one rendered amount.
type FormattedPrice struct {
	Amount          decimal.Decimal `json:"amount"`
	ConvertedAmount decimal.Decimal `json:"convertedAmount"`
	Formatted       string          `json:"formatted"`
}

// FormatPricesResponse carries the rendered amounts in request order.
type FormatPricesResponse struct {
	CurrencyCode string           `json:"currency"`
	Prices       []FormattedPrice `json:"prices"`
}
