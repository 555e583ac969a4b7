package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// DefaultSecretKey is the development secret. It must be overridden outside dev.
const DefaultSecretKey = "change_this_to_something_secret"

// Config holds the application configuration.
type Config struct {
	Env             string  `mapstructure:"APP_ENV"`
	Port            string  `mapstructure:"APP_PORT"`
	DatabaseURL     string  `mapstructure:"DATABASE_URL"`
	SecretKey       string  `mapstructure:"SECRET_KEY"`
	WSBaseURL       string  `mapstructure:"WS_BASE_URL"`
	SessionTTLHours int     `mapstructure:"SESSION_TTL_HOURS"`
	CookieSecure    bool    `mapstructure:"COOKIE_SECURE"`
	CORSOrigins     string  `mapstructure:"CORS_ORIGINS"`
	RateLimitRPS    float64 `mapstructure:"RATE_LIMIT_RPS"`
	RateLimitBurst  int     `mapstructure:"RATE_LIMIT_BURST"`
	StaticDir       string  `mapstructure:"STATIC_DIR"`
}

var defaults = map[string]any{
	"APP_ENV":           "dev",
	"APP_PORT":          "8080",
	"DATABASE_URL":      "sqlite:///citylegends.db",
	"SECRET_KEY":        DefaultSecretKey,
	"WS_BASE_URL":       "ws://localhost:8081",
	"SESSION_TTL_HOURS": 168,
	"COOKIE_SECURE":     false,
	"CORS_ORIGINS":      "*",
	"RATE_LIMIT_RPS":    20.0,
	"RATE_LIMIT_BURST":  40,
	"STATIC_DIR":        "./web/static",
}

// Load reads the configuration from an optional .env file in dir and from
// environment variables. Environment variables win over the file.
func Load(dir string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	// Unmarshal only sees keys viper knows about, so every key gets a default.
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read .env: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if cfg.SessionTTLHours <= 0 {
		cfg.SessionTTLHours = defaults["SESSION_TTL_HOURS"].(int)
	}
	cfg.WSBaseURL = strings.TrimRight(cfg.WSBaseURL, "/")
	return &cfg, nil
}

// Validate rejects configurations that cannot run safely.
func Validate(cfg Config) error {
	if cfg.Port == "" {
		return errors.New("APP_PORT must not be empty")
	}
	if cfg.DatabaseURL == "" {
		return errors.New("DATABASE_URL must not be empty")
	}
	if cfg.Env != "dev" && (cfg.SecretKey == "" || cfg.SecretKey == DefaultSecretKey) {
		return fmt.Errorf("SECRET_KEY must be set when APP_ENV=%s", cfg.Env)
	}
	return nil
}
