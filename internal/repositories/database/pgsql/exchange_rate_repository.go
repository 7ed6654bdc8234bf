package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/storefront_pricing/internal/core/domain"
	portsrepo "github.com/SscSPs/storefront_pricing/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxExchangeRateRepository reads exchange rates using pgxpool.
type PgxExchangeRateRepository struct {
	BaseRepository
}

// NewPgxExchangeRateRepository creates a new PgxExchangeRateRepository.
func NewPgxExchangeRateRepository(db *pgxpool.Pool) *PgxExchangeRateRepository {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: db},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ExchangeRateReader = (*PgxExchangeRateRepository)(nil)

// ListExchangeRates returns the most recent rate already in effect for every currency pair.
func (r *PgxExchangeRateRepository) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	query := `
		SELECT DISTINCT ON (from_currency_code, to_currency_code)
			from_currency_code, to_currency_code, rate::text, date_effective
		FROM exchange_rates
		WHERE date_effective <= NOW()
		ORDER BY from_currency_code, to_currency_code, date_effective DESC;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query exchange rates: %w", err)
	}
	defer rows.Close()

	rates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.ExchangeRate, error) {
		var (
			rate    domain.ExchangeRate
			from    string
			to      string
			rateStr string
		)
		if err := row.Scan(&from, &to, &rateStr, &rate.DateEffective); err != nil {
			return rate, err
		}
		parsed, err := decimal.NewFromString(rateStr)
		if err != nil {
			return rate, fmt.Errorf("invalid rate %q for %s->%s: %w", rateStr, from, to, err)
		}
		rate.FromCurrencyCode = domain.CurrencyCode(from)
		rate.ToCurrencyCode = domain.CurrencyCode(to)
		rate.Rate = parsed
		return rate, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan exchange rates: %w", err)
	}
	return rates, nil
}
