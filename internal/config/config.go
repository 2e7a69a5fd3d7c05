// Package config provides application configuration loading and validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // zone database for hosts without one

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"
)

// Config holds the complete application configuration.
type Config struct {
	Server ServerConfig
	SGS    SGSConfig `mapstructure:"sgs"`
	Rates  RatesConfig
	Log    LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port               int      `mapstructure:"port"`
	ServeSwagger       bool     `mapstructure:"serve_swagger"`
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

// SGSConfig holds settings for the Banco Central SGS time-series API.
type SGSConfig struct {
	BaseURL   string `mapstructure:"base_url"`
	Series    int    `mapstructure:"series"`
	Timeout   int    `mapstructure:"timeout_sec"`
	UserAgent string `mapstructure:"user_agent"`
}

// RatesConfig holds settings for rate resolution.
type RatesConfig struct {
	Timezone string `mapstructure:"timezone"` // Zone in which "today" is evaluated.
}

// LogConfig holds logger settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// LoadConfig reads configuration from config files, environment variables, and defaults.
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error loading .env file: %v\n", err)
	}

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Config search paths
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("./internal/config")

	v.SetEnvPrefix("PTAXSVC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Plain PORT is honoured for platforms that inject it.
	if port := os.Getenv("PORT"); port != "" && os.Getenv("PTAXSVC_SERVER_PORT") == "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT %q: %w", port, err)
		}
		cfg.Server.Port = p
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 5001)
	v.SetDefault("server.serve_swagger", true)
	v.SetDefault("server.cors_allowed_origins", []string{"*"})
	v.SetDefault("sgs.base_url", "https://api.bcb.gov.br/dados/serie")
	v.SetDefault("sgs.series", 1)
	v.SetDefault("sgs.timeout_sec", 10)
	v.SetDefault("sgs.user_agent", "")
	v.SetDefault("rates.timezone", "America/Sao_Paulo")
	v.SetDefault("log.level", "info")
}

// Validate checks that all required configuration fields are set and valid.
func (c *Config) Validate() error {
	var errs []error
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		errs = append(errs, fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port))
	}

	if c.SGS.BaseURL == "" {
		errs = append(errs, fmt.Errorf("sgs.base_url is required (set PTAXSVC_SGS_BASE_URL)"))
	}
	if c.SGS.Series <= 0 {
		errs = append(errs, fmt.Errorf("sgs.series must be positive, got %d", c.SGS.Series))
	}
	if c.SGS.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("sgs.timeout_sec must be positive, got %d", c.SGS.Timeout))
	}

	if _, err := time.LoadLocation(c.Rates.Timezone); err != nil {
		errs = append(errs, fmt.Errorf("rates.timezone %q is invalid: %w", c.Rates.Timezone, err))
	}

	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level %q is invalid: %w", c.Log.Level, err))
	}

	return errors.Join(errs...)
}

// Location returns the configured time zone. Validate guarantees it loads.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Rates.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
