package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/XavierBriggs/fortuna/services/nflstats/internal/cache"
)

// Source names accepted by STATS_SOURCE
const (
	SourceESPN     = "espn"
	SourcePostgres = "postgres"
)

// LogConfig holds logger configuration
type LogConfig struct {
	Level  string
	Pretty bool
}

// ESPNConfig holds the stats provider configuration
type ESPNConfig struct {
	BaseURL string
	Timeout time.Duration
}

// CacheConfig holds Redis cache configuration. An empty URL disables the cache.
type CacheConfig struct {
	RedisURL string
	TTL      time.Duration
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Addr        string
	CORSOrigins []string
}

// Config holds all application configuration
type Config struct {
	Log    LogConfig
	Source string
	ESPN   ESPNConfig
	Cache  CacheConfig
	// ArchiveDSN enables the PostgreSQL archive when set
	ArchiveDSN string
	Server     ServerConfig
}

// Load reads configuration from the environment and an optional .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	cfg := &Config{
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "warn"),
			Pretty: getEnvAsBool("LOG_PRETTY", true),
		},
		Source: strings.ToLower(getEnv("STATS_SOURCE", SourceESPN)),
		ESPN: ESPNConfig{
			BaseURL: getEnv("ESPN_BASE_URL", ""),
			Timeout: getEnvAsDuration("ESPN_TIMEOUT", 15*time.Second),
		},
		Cache: CacheConfig{
			RedisURL: getEnv("REDIS_URL", ""),
			TTL:      getEnvAsDuration("CACHE_TTL", cache.DefaultTTL),
		},
		ArchiveDSN: getEnv("ARCHIVE_DSN", ""),
		Server: ServerConfig{
			Addr:        getEnv("SERVER_ADDR", ":8080"),
			CORSOrigins: getEnvAsList("CORS_ORIGINS", []string{"*"}),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks that the selected source can be built
func (c *Config) Validate() error {
	switch c.Source {
	case SourceESPN:
	case SourcePostgres:
		if c.ArchiveDSN == "" {
			return fmt.Errorf("ARCHIVE_DSN is required when STATS_SOURCE=%s", SourcePostgres)
		}
	default:
		return fmt.Errorf("unknown STATS_SOURCE %q: use %s or %s", c.Source, SourceESPN, SourcePostgres)
	}
	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var list []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			list = append(list, item)
		}
	}
	return list
}
