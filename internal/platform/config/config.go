// Package config loads service configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds every tunable of the service. Validation rules the identity
// service enforces (email domains, password length) live here so the rule set
// is swappable without touching control flow.
type Config struct {
	Port    string `env:"PORT" envDefault:"8080"`
	DevMode bool   `env:"DEV_MODE"`

	// Database. DBDriver selects mysql or postgres.
	DBDriver               string `env:"DB_DRIVER" envDefault:"mysql"`
	DBUser                 string `env:"DB_USER"`
	DBPassword             string `env:"DB_PASSWORD"`
	DBHost                 string `env:"DB_HOST" envDefault:"127.0.0.1"`
	DBPort                 string `env:"DB_PORT" envDefault:"3306"`
	DBName                 string `env:"DB_NAME"`
	InstanceConnectionName string `env:"INSTANCE_CONNECTION_NAME"`
	RunMigrations          bool   `env:"RUN_MIGRATIONS"`

	// Redis cache. The service runs without it when unreachable.
	RedisHost     string        `env:"REDIS_HOST" envDefault:"127.0.0.1"`
	RedisPort     string        `env:"REDIS_PORT" envDefault:"6379"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	CacheTTL      time.Duration `env:"CACHE_TTL" envDefault:"5m"`

	// Tokens. TokenTTL 0 issues tokens without an expiry claim.
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"24h"`

	// Registration rules.
	AllowedEmailDomains []string `env:"ALLOWED_EMAIL_DOMAINS" envDefault:"gmail.com,yahoo.com"`
	MinPasswordLength   int      `env:"MIN_PASSWORD_LENGTH" envDefault:"6"`
}

// Load parses the configuration from the environment.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
