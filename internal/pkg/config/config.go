package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// BaseURL is the public origin encoded into scannable tracking links.
	BaseURL string `env:"BASE_URL, default=http://localhost:8080"`

	Mongo     MongoConfig
	Redis     RedisConfig
	Site      SiteConfig
	RateLimit RateLimitConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=tracking_portal"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// SiteConfig overrides individual site identity values. Empty fields defer to
// the site_settings document and, below that, the built-in defaults.
type SiteConfig struct {
	Name         string `env:"SITE_NAME"`
	Email        string `env:"SITE_EMAIL"`
	Phone        string `env:"SITE_PHONE"`
	Address      string `env:"SITE_ADDRESS"`
	SupportEmail string `env:"SUPPORT_EMAIL"`
}

type RateLimitConfig struct {
	// Lookups per window per client IP.
	Limit         int64 `env:"LOOKUP_RATE_LIMIT,  default=30"`
	WindowSeconds int   `env:"LOOKUP_RATE_WINDOW, default=60"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
