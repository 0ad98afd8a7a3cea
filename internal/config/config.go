package config

import (
	"context"
	"errors"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Env  string
	Port int

	// Empty DBURL selects the in-memory backend.
	DBURL string

	JWTSecret     string
	TokenTTLHours int

	AdminEmail    string
	AdminPassword string
	AdminName     string

	RedisAddr       string
	RedisPassword   string
	RedisDB         int
	CacheTTLSeconds int

	OTLPEndpoint   string
	TracingEnabled bool

	AuthRateLimit  int
	AuthRateWindow time.Duration
}

// dev-only fallback, refused outside dev by Validate.
const devJWTSecret = "dev-secret-change-me"

func Load() Config {
	return Config{
		Env:             getEnv("APP_ENV", "dev"),
		Port:            getEnvInt("PORT", 8080),
		DBURL:           getEnv("DATABASE_URL", ""),
		JWTSecret:       getEnv("JWT_SECRET", ""),
		TokenTTLHours:   getEnvInt("JWT_TTL_HOURS", 24),
		AdminEmail:      getEnv("ADMIN_EMAIL", ""),
		AdminPassword:   getEnv("ADMIN_PASSWORD", ""),
		AdminName:       getEnv("ADMIN_NAME", "Administrator"),
		RedisAddr:       getEnv("REDIS_ADDR", ""),
		RedisPassword:   getEnv("REDIS_PASSWORD", ""),
		RedisDB:         getEnvInt("REDIS_DB", 0),
		CacheTTLSeconds: getEnvInt("CACHE_TTL_SECONDS", 5),
		OTLPEndpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		TracingEnabled:  getEnv("OTEL_TRACING_ENABLED", "") == "true",
		AuthRateLimit:   getEnvInt("AUTH_RATE_LIMIT", 20),
		AuthRateWindow:  time.Duration(getEnvInt("AUTH_RATE_WINDOW_SECONDS", 60)) * time.Second,
	}
}

// Validate enforces the settings a deployment must not run without.
// A missing JWT secret is tolerated only in dev, where a fixed value is
// substituted so local runs work out of the box.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		if c.Env != "dev" {
			return errors.New("JWT_SECRET must be set outside dev")
		}
		c.JWTSecret = devJWTSecret
	}

	if c.TokenTTLHours <= 0 {
		c.TokenTTLHours = 24
	}

	return nil
}

func (c Config) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLHours) * time.Hour
}

func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLSeconds) * time.Second
}

func WithTimeout(duration time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), duration)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		num, err := strconv.Atoi(v)

		if err != nil {
			return fallback
		}

		return num
	}
	return fallback
}
