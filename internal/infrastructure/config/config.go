package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET, required"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// TokenTTL is the lifetime of issued bearer tokens. TokenLeeway is the
	// clock-skew tolerance applied when verifying expiry.
	TokenTTL    time.Duration `env:"TOKEN_TTL,    default=60m"`
	TokenLeeway time.Duration `env:"TOKEN_LEEWAY, default=30s"`

	// ReportCacheTTL bounds how stale a cached report payload may be.
	ReportCacheTTL time.Duration `env:"REPORT_CACHE_TTL, default=60s"`

	Postgres PostgresConfig
	Redis    RedisConfig
}

type PostgresConfig struct {
	DSN string `env:"POSTGRES_DSN, default=host=localhost user=postgres password=postgres dbname=salon port=5432 sslmode=disable"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
