package services

import (
	"context"
	"fmt"

	portsrepo "github.com/SscSPs/storefront_pricing/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/storefront_pricing/internal/core/ports/services"
	"github.com/SscSPs/storefront_pricing/internal/platform/config"
	"golang.org/x/text/language"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(ctx context.Context, cfg *config.Config, repos portsrepo.RepositoryProvider) (*portssvc.ServiceContainer, error) {
	locale, err := language.Parse(cfg.DisplayLocale)
	if err != nil {
		return nil, fmt.Errorf("invalid display locale %q: %w", cfg.DisplayLocale, err)
	}

	rates, err := NewExchangeRateService(repos.ExchangeRateRepo).LoadRateTable(ctx)
	if err != nil {
		return nil, err
	}

	return &portssvc.ServiceContainer{
		Pricing: NewPricingService(
			repos.PreferenceStore,
			WithRateProvider(rates),
			WithDisplayLocale(locale),
		),
	}, nil
}
