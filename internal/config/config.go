package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	EmailProviderResend = "resend"
	EmailProviderSES    = "ses"
)

type Config struct {
	Env             string        `env:"APP_ENV" envDefault:"development"`
	ServerAddr      string        `env:"SERVER_ADDR" envDefault:":8080"`
	FrontendOrigins []string      `env:"FRONTEND_ORIGINS" envDefault:"http://localhost:3000" envSeparator:","`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	RateLimitSubmit    int `env:"RATE_LIMIT_SUBMIT" envDefault:"5"`
	RateLimitCheckout  int `env:"RATE_LIMIT_CHECKOUT" envDefault:"10"`
	RateLimitWindowSec int `env:"RATE_LIMIT_WINDOW_SEC" envDefault:"60"`

	RedisURL        string `env:"REDIS_URL"`
	RedisAddr       string `env:"REDIS_ADDR"`
	RedisPassword   string `env:"REDIS_PASSWORD"`
	RedisDB         int    `env:"REDIS_DB" envDefault:"0"`
	CacheTTLSeconds int    `env:"CACHE_TTL_SECONDS" envDefault:"60"`

	// Empty MongoURI keeps the built-in sample catalog.
	MongoURI string `env:"MONGO_URI"`
	MongoDB  string `env:"MONGO_DB"`

	EmailProvider string   `env:"EMAIL_PROVIDER" envDefault:"resend"`
	ResendAPIKey  string   `env:"RESEND_API_KEY"`
	EmailFrom     string   `env:"EMAIL_FROM" envDefault:"PilotRoom <onboarding@resend.dev>"`
	EmailTo       []string `env:"EMAIL_TO" envDefault:"info@cryptocardia.ca" envSeparator:","`
	AWSRegion     string   `env:"AWS_REGION"`

	StripeSecretKey string `env:"STRIPE_SECRET_KEY"`
	PublicBaseURL   string `env:"PUBLIC_BASE_URL" envDefault:"http://localhost:3000"`
}

func Load() (*Config, error) {
	// godotenv never overrides variables already present in the environment.
	_ = godotenv.Load(".env")

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	cfg.EmailProvider = strings.ToLower(strings.TrimSpace(cfg.EmailProvider))
	switch cfg.EmailProvider {
	case EmailProviderResend, EmailProviderSES:
	default:
		return nil, fmt.Errorf("unsupported EMAIL_PROVIDER %q", cfg.EmailProvider)
	}

	cfg.EmailTo = trimAll(cfg.EmailTo)
	cfg.FrontendOrigins = trimAll(cfg.FrontendOrigins)
	cfg.PublicBaseURL = strings.TrimRight(strings.TrimSpace(cfg.PublicBaseURL), "/")

	if cfg.MongoURI != "" && cfg.MongoDB == "" {
		cfg.MongoDB = mongoDBFromURI(cfg.MongoURI)
	}
	if cfg.MongoURI != "" && cfg.MongoDB == "" {
		cfg.MongoDB = "pilotroom"
	}

	return cfg, nil
}

func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

func (c *Config) RateLimitWindow() time.Duration {
	return time.Duration(c.RateLimitWindowSec) * time.Second
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

func mongoDBFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err != nil {
		return ""
	}
	db := strings.Trim(u.Path, "/")
	if db == "" {
		return ""
	}
	// mongodb URIs sometimes include extra path segments; only the first one names the db.
	if idx := strings.Index(db, "/"); idx >= 0 {
		db = db[:idx]
	}
	return db
}
