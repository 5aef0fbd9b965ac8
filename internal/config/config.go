package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Engine holds all configuration of the augmentation engine.
type Engine struct {
	// Logging: debug, info, warn, error
	LogLevel string `yaml:"log_level" env:"AUGMARKET_LOG_LEVEL"`

	// Database
	Database DatabaseConfig `yaml:"database"`

	// Pricing constants
	Pricing Pricing `yaml:"pricing"`

	// World difficulty
	Difficulty Difficulty `yaml:"difficulty"`
}

// DatabaseConfig holds PostgreSQL connection parameters.
type DatabaseConfig struct {
	Host     string `yaml:"host" env:"AUGMARKET_DB_HOST"`
	Port     int    `yaml:"port" env:"AUGMARKET_DB_PORT"`
	User     string `yaml:"user" env:"AUGMARKET_DB_USER"`
	Password string `yaml:"password" env:"AUGMARKET_DB_PASSWORD"`
	DBName   string `yaml:"dbname" env:"AUGMARKET_DB_NAME"`
	SSLMode  string `yaml:"sslmode" env:"AUGMARKET_DB_SSLMODE"`
}

// DSN returns the PostgreSQL connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		d.User, d.Password, d.Host, d.Port, d.DBName, d.SSLMode,
	)
}

// DefaultEngine returns Engine config with stock game constants and x1 difficulty.
func DefaultEngine() Engine {
	return Engine{
		LogLevel: "info",
		Database: DatabaseConfig{
			Host:     "127.0.0.1",
			Port:     5432,
			User:     "augmarket",
			Password: "augmarket",
			DBName:   "augmarket",
			SSLMode:  "disable",
		},
		Pricing:    DefaultPricing(),
		Difficulty: DefaultDifficulty(),
	}
}

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate checks value ranges. Growth factors must stay above 1 so prices
// grow with every purchase.
func (e Engine) Validate() error {
	var errs []error
	if !slices.Contains(logLevels, e.LogLevel) {
		errs = append(errs, fmt.Errorf("log_level %q: want one of %v", e.LogLevel, logLevels))
	}
	if err := e.Pricing.Validate(); err != nil {
		errs = append(errs, err)
	}
	if err := e.Difficulty.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// LoadEngine loads engine config from a YAML file, then applies AUGMARKET_*
// environment overrides. If the file doesn't exist, defaults are used.
func LoadEngine(path string) (Engine, error) {
	cfg := DefaultEngine()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parsing env overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("validating config %s: %w", path, err)
	}
	return cfg, nil
}
