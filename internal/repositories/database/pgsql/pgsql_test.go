package pgsql

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/SscSPs/storefront_pricing/internal/core/domain"
	"github.com/SscSPs/storefront_pricing/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestPool connects to TEST_PGSQL_URL and applies the migrations, or skips the test.
func newTestPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	url := os.Getenv("TEST_PGSQL_URL")
	if url == "" {
		t.Skip("TEST_PGSQL_URL not set; skipping PostgreSQL repository tests")
	}

	require.NoError(t, database.RunMigrations(url, "file://../../../../migrations", slog.Default()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	pool, err := database.NewPgxPool(ctx, url)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func TestPgxPreferenceRepository_RoundTrip(t *testing.T) {
	pool := newTestPool(t)
	repo := NewPgxPreferenceRepository(pool)
	ctx := context.Background()
	key := "client:" + uuid.NewString() + ":preferred_currency"
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), "DELETE FROM client_preferences WHERE pref_key = $1", key)
	})

	_, found, err := repo.GetItem(ctx, key)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, repo.SetItem(ctx, key, "EUR"))
	require.NoError(t, repo.SetItem(ctx, key, "USD"))

	value, found, err := repo.GetItem(ctx, key)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "USD", value)
}

func TestPgxExchangeRateRepository_LatestEffective(t *testing.T) {
	pool := newTestPool(t)
	repo := NewPgxExchangeRateRepository(pool)
	ctx := context.Background()

	_, err := pool.Exec(ctx, "DELETE FROM exchange_rates WHERE from_currency_code = 'XOF' AND to_currency_code = 'EUR'")
	require.NoError(t, err)
	t.Cleanup(func() {
		_, _ = pool.Exec(context.Background(), "DELETE FROM exchange_rates WHERE from_currency_code = 'XOF' AND to_currency_code = 'EUR'")
	})

	now := time.Now()
	_, err = pool.Exec(ctx, `
		INSERT INTO exchange_rates (from_currency_code, to_currency_code, rate, date_effective) VALUES
			('XOF', 'EUR', 0.0014, $1),
			('XOF', 'EUR', 0.00152, $2),
			('XOF', 'EUR', 0.0099, $3)`,
		now.Add(-48*time.Hour), now.Add(-time.Hour), now.Add(24*time.Hour))
	require.NoError(t, err)

	rates, err := repo.ListExchangeRates(ctx)
	require.NoError(t, err)

	var got *domain.ExchangeRate
	for i := range rates {
		if rates[i].FromCurrencyCode == domain.XOF && rates[i].ToCurrencyCode == domain.EUR {
			got = &rates[i]
		}
	}
	require.NotNil(t, got, "expected an XOF->EUR rate")
	assert.Equal(t, "0.00152", got.Rate.String(), "future-dated rates must be ignored")
}
