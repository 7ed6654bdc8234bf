package config

import (
	"fmt"
	"log"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported preference store backends.
const (
	PreferenceStoreMemory   = "memory"
	PreferenceStoreRedis    = "redis"
	PreferenceStorePostgres = "postgres"
)

// Supported exchange rate sources.
const (
	RateSourceStatic   = "static"
	RateSourcePostgres = "postgres"
)

// Config holds application configuration.
type Config struct {
	Port         string
	IsProduction bool
	DatabaseURL  string

	PreferenceStore string
	RateSource      string

	RedisAddr      string
	RedisPassword  string
	RedisDB        int
	RedisKeyPrefix string

	DisplayLocale string

	// Client identity
	JWTSecret          string // optional, lets signed-in shoppers keep their preference across devices
	ClientCookieName   string
	ClientCookieMaxAge int

	CORSAllowedOrigins []string
	RateLimit          string // ulule/limiter format, e.g. "300-M"
}

// UsesPostgres reports whether any component needs a database connection.
func (c *Config) UsesPostgres() bool {
	return c.PreferenceStore == PreferenceStorePostgres || c.RateSource == RateSourcePostgres
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PREFERENCE_STORE", PreferenceStoreMemory)
	v.SetDefault("RATE_SOURCE", RateSourceStatic)
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)
	v.SetDefault("REDIS_KEY_PREFIX", "storefront:pref:")
	v.SetDefault("DISPLAY_LOCALE", "fr-FR")
	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("CLIENT_COOKIE_NAME", "sf_client")
	v.SetDefault("CLIENT_COOKIE_MAX_AGE", 60*60*24*365)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("RATE_LIMIT", "300-M")

	// Values from .env were exported by godotenv; real environment variables win.
	v.AutomaticEnv()

	cfg := &Config{
		Port:               v.GetString("PORT"),
		IsProduction:       v.GetBool("IS_PRODUCTION"),
		DatabaseURL:        v.GetString("PGSQL_URL"),
		PreferenceStore:    strings.ToLower(v.GetString("PREFERENCE_STORE")),
		RateSource:         strings.ToLower(v.GetString("RATE_SOURCE")),
		RedisAddr:          v.GetString("REDIS_ADDR"),
		RedisPassword:      v.GetString("REDIS_PASSWORD"),
		RedisDB:            v.GetInt("REDIS_DB"),
		RedisKeyPrefix:     v.GetString("REDIS_KEY_PREFIX"),
		DisplayLocale:      v.GetString("DISPLAY_LOCALE"),
		JWTSecret:          v.GetString("JWT_SECRET"),
		ClientCookieName:   v.GetString("CLIENT_COOKIE_NAME"),
		ClientCookieMaxAge: v.GetInt("CLIENT_COOKIE_MAX_AGE"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
		RateLimit:          v.GetString("RATE_LIMIT"),
	}

	if cfg.Port == "" {
		cfg.Port = "8080" // Default port
		log.Printf("Warning: PORT environment variable not set. Defaulting to %s\n", cfg.Port)
	}

	switch cfg.PreferenceStore {
	case PreferenceStoreMemory, PreferenceStoreRedis, PreferenceStorePostgres:
	default:
		return nil, fmt.Errorf("unknown PREFERENCE_STORE %q", cfg.PreferenceStore)
	}

	switch cfg.RateSource {
	case RateSourceStatic, RateSourcePostgres:
	default:
		return nil, fmt.Errorf("unknown RATE_SOURCE %q", cfg.RateSource)
	}

	if cfg.UsesPostgres() && cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("PGSQL_URL is required when PREFERENCE_STORE or RATE_SOURCE is %q", PreferenceStorePostgres)
	}

	if cfg.PreferenceStore == PreferenceStoreMemory && cfg.IsProduction {
		log.Println("Warning: PREFERENCE_STORE=memory in production. Preferences are lost on restart.")
	}

	if cfg.JWTSecret == "" {
		log.Println("Warning: JWT_SECRET not set. All clients are identified by cookie only.")
	}

	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
