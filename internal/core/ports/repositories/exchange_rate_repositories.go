package repositories

import (
	"context"

	"github.com/SscSPs/storefront_pricing/internal/core/domain"
)

// ExchangeRateReader defines read operations for exchange rate data
type ExchangeRateReader interface {
	// ListExchangeRates retrieves the latest effective rate for every stored currency pair.
	ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error)
}
