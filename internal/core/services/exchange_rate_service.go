package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/storefront_pricing/internal/core/domain"
	portsrepo "github.com/SscSPs/storefront_pricing/internal/core/ports/repositories"
)

// ExchangeRateService builds the rate table used for conversions.
type ExchangeRateService struct {
	BaseService
	rateRepo portsrepo.ExchangeRateReader
}

// NewExchangeRateService creates a new ExchangeRateService. rateRepo may be nil.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateReader) *ExchangeRateService {
	return &ExchangeRateService{rateRepo: rateRepo}
}

// LoadRateTable returns a one-off snapshot of the stored rates layered over the
// static table. Without a repository the static table is returned as is.
func (s *ExchangeRateService) LoadRateTable(ctx context.Context) (domain.RateTable, error) {
	static := domain.DefaultRateTable()
	if s.rateRepo == nil {
		return static, nil
	}

	rows, err := s.rateRepo.ListExchangeRates(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to load exchange rate snapshot")
		return static, fmt.Errorf("failed to load exchange rates in service: %w", err)
	}

	table, applied := domain.NewRateTable(rows, static)
	if skipped := len(rows) - applied; skipped > 0 {
		s.GetLogger(ctx).Warn("Skipped unusable exchange rate rows", slog.Int("skipped", skipped))
	}
	s.LogInfo(ctx, "Exchange rate snapshot loaded", slog.Int("applied", applied))
	return table, nil
}
