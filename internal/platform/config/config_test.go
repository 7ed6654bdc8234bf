package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, added in Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	prev, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(prev) })
}

func TestLoadConfig_Defaults(t *testing.T) {
	chdir(t, t.TempDir()) // no stray .env file
	// Empty variables are ignored by viper, so this masks the host environment.
	for _, key := range []string{"PORT", "PREFERENCE_STORE", "RATE_SOURCE", "DISPLAY_LOCALE", "CLIENT_COOKIE_NAME", "CORS_ALLOWED_ORIGINS"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, PreferenceStoreMemory, cfg.PreferenceStore)
	assert.Equal(t, RateSourceStatic, cfg.RateSource)
	assert.Equal(t, "fr-FR", cfg.DisplayLocale)
	assert.Equal(t, "sf_client", cfg.ClientCookieName)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.UsesPostgres())
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("PREFERENCE_STORE", "Redis")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("DISPLAY_LOCALE", "en-US")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://shop.example, https://admin.example ,")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, PreferenceStoreRedis, cfg.PreferenceStore)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, "en-US", cfg.DisplayLocale)
	assert.Equal(t, []string{"https://shop.example", "https://admin.example"}, cfg.CORSAllowedOrigins)
}

func TestLoadConfig_PostgresRequiresURL(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("RATE_SOURCE", "postgres")
	t.Setenv("PGSQL_URL", "")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_UnknownStore(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("PREFERENCE_STORE", "localstorage")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, "PREFERENCE_STORE")
}
