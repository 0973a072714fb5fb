package config

import (
	"fmt"
	"os"
)

// InsecureSessionSecret is the fallback used when SESSION_SECRET is unset.
// Startup logs a loud warning when it is in effect.
const InsecureSessionSecret = "fallback_secret"

type Config struct {
	Port          string
	DatabaseURL   string
	RedisAddr     string
	RedisPassword string
	SessionSecret string
	LocalesDir    string
	TemplatesDir  string
	StaticDir     string
	DefaultLocale string
	DevMode       bool
}

// Load reads configuration from environment variables. The database URL is
// the only hard requirement; everything else has a workable default.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          "8080",
		RedisAddr:     "localhost:6379",
		SessionSecret: InsecureSessionSecret,
		LocalesDir:    "locales",
		TemplatesDir:  "web/templates",
		StaticDir:     "web/static",
		DefaultLocale: "en",
	}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.RedisAddr = v
	}
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	if v := os.Getenv("SESSION_SECRET"); v != "" {
		cfg.SessionSecret = v
	}
	if v := os.Getenv("LOCALES_DIR"); v != "" {
		cfg.LocalesDir = v
	}
	if v := os.Getenv("TEMPLATES_DIR"); v != "" {
		cfg.TemplatesDir = v
	}
	if v := os.Getenv("STATIC_DIR"); v != "" {
		cfg.StaticDir = v
	}
	if v := os.Getenv("DEFAULT_LOCALE"); v != "" {
		cfg.DefaultLocale = v
	}
	cfg.DevMode = os.Getenv("DEV_MODE") == "true"

	return cfg, nil
}
