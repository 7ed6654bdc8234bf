package dto

import (
	"github.com/SscSPs/storefront_pricing/internal/core/domain"
	"github.com/SscSPs/storefront_pricing/internal/utils"
	"github.com/shopspring/decimal"
)

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyCode string `json:"currencyCode"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	Precision    int    `json:"precision"`
	IsBase       bool   `json:"isBase"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode: string(curr.CurrencyCode),
		Symbol:       curr.Symbol,
		Name:         curr.Name,
		Precision:    curr.Precision,
		IsBase:       curr.CurrencyCode == domain.BaseCurrency,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, curr := range currencies {
		res[i] = ToCurrencyResponse(curr) // Reuse the single converter
	}
	return res
}

// ExchangeRateResponse defines the structure for API responses containing exchange rate details.
type ExchangeRateResponse struct {
	FromCurrencyCode string          `json:"fromCurrencyCode"`
	ToCurrencyCode   string          `json:"toCurrencyCode"`
	Rate             decimal.Decimal `json:"rate"`
}

// PreferenceResponse describes the caller's display currency.
type PreferenceResponse struct {
	Currency CurrencyResponse `json:"currency"`
}

// UpdatePreferenceRequest sets the caller's display currency.
type UpdatePreferenceRequest struct {
	CurrencyCode string `json:"currency" binding:"required,currencycode"`
}

// ToPreferenceResponse builds a PreferenceResponse for code.
func ToPreferenceResponse(code domain.CurrencyCode) PreferenceResponse {
	curr, _ := domain.LookupCurrency(code)
	return PreferenceResponse{Currency: ToCurrencyResponse(curr)}
}

// formatAmount renders amount with the display precision of code.
func formatAmount(amount decimal.Decimal, code domain.CurrencyCode) string {
	curr, _ := domain.LookupCurrency(code)
	return utils.FormatWithCurrencyPrecision(amount, curr)
}
