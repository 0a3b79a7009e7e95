package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config is the process-wide configuration, loaded once at startup and never
// mutated afterwards.
type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Database DatabaseConfig
	JWT      JWTConfig
	CORS     CORSConfig
}

type DatabaseConfig struct {
	DSN string `env:"DATABASE_URL, default=postgres://localhost:5432/todo?sslmode=disable"`
}

type JWTConfig struct {
	Secret          string `env:"JWT_SECRET"`
	Algorithm       string `env:"JWT_ALGORITHM,        default=HS256"`
	ExpirationHours int    `env:"JWT_EXPIRATION_HOURS, default=24"`
}

// Expiration returns the token lifetime as a duration.
func (c JWTConfig) Expiration() time.Duration {
	return time.Duration(c.ExpirationHours) * time.Hour
}

type CORSConfig struct {
	AllowedOrigins []string `env:"CORS_ORIGINS, default=*"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
