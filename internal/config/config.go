package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Env      string
	HTTPPort string
	LogLevel string

	DatabaseURL string

	SessionCookieSecret string
	SessionTTL          time.Duration
	CookieDomain        string
	CookieSecure        bool
	CookieSameSite      string

	RedisAddr string

	LoginRateLimit       int
	LoginRateLimitWindow time.Duration

	AdminUsername string
	AdminEmail    string
	AdminPassword string
}

func Load() (*Config, error) {
	cfg := &Config{
		Env:                 getEnv("APP_ENV", "development"),
		HTTPPort:            getEnv("HTTP_PORT", "3000"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		DatabaseURL:         os.Getenv("DATABASE_URL"),
		SessionCookieSecret: os.Getenv("SESSION_COOKIE_SECRET"),
		CookieDomain:        os.Getenv("COOKIE_DOMAIN"),
		CookieSecure:        getEnvBool("COOKIE_SECURE", false),
		CookieSameSite:      strings.ToLower(getEnv("COOKIE_SAMESITE", "lax")),
		RedisAddr:           os.Getenv("REDIS_ADDR"),
		LoginRateLimit:      getEnvInt("LOGIN_RATE_LIMIT", 5),
		AdminUsername:       getEnv("ADMIN_USERNAME", "admin"),
		AdminEmail:          getEnv("ADMIN_EMAIL", "admin@localhost"),
		AdminPassword:       os.Getenv("ADMIN_PASSWORD"),
	}

	sessionTTL, err := time.ParseDuration(getEnv("SESSION_TTL", "720h"))
	if err != nil {
		return nil, fmt.Errorf("parse SESSION_TTL: %w", err)
	}
	cfg.SessionTTL = sessionTTL

	window, err := time.ParseDuration(getEnv("LOGIN_RATE_LIMIT_WINDOW", "1m"))
	if err != nil {
		return nil, fmt.Errorf("parse LOGIN_RATE_LIMIT_WINDOW: %w", err)
	}
	cfg.LoginRateLimitWindow = window

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []string
	if c.DatabaseURL == "" {
		errs = append(errs, "DATABASE_URL is required")
	}
	if len(c.SessionCookieSecret) < 16 {
		errs = append(errs, "SESSION_COOKIE_SECRET must be at least 16 chars")
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, "SESSION_TTL must be > 0")
	}
	if c.LoginRateLimit <= 0 {
		errs = append(errs, "LOGIN_RATE_LIMIT must be > 0")
	}
	if c.LoginRateLimitWindow <= 0 {
		errs = append(errs, "LOGIN_RATE_LIMIT_WINDOW must be > 0")
	}
	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func (c *Config) IsDevelopment() bool { return c.Env == "development" }

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
