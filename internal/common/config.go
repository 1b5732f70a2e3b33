// Package common provides shared utilities for kabuto
package common

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config holds all configuration for kabuto
type Config struct {
	Environment       string        `toml:"environment"`
	ReportingCurrency string        `toml:"reporting_currency"` // currency all aggregate figures are expressed in ("JPY")
	Server            ServerConfig  `toml:"server"`
	Storage           StorageConfig `toml:"storage"`
	Clients           ClientsConfig `toml:"clients"`
	Logging           LoggingConfig `toml:"logging"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// StorageConfig holds SurrealDB connection settings. An empty address means
// the asset store runs in-memory with the demo dataset.
type StorageConfig struct {
	Address        string `toml:"address"`
	Namespace      string `toml:"namespace"`
	Database       string `toml:"database"`
	Username       string `toml:"username"`
	Password       string `toml:"password"`
	ConnectTimeout string `toml:"connect_timeout"`
}

// GetConnectTimeout parses and returns the bounded wait used when deciding
// between the remote store and the demo fallback.
func (c *StorageConfig) GetConnectTimeout() time.Duration {
	d, err := time.ParseDuration(c.ConnectTimeout)
	if err != nil {
		return 5 * time.Second
	}
	return d
}

// ClientsConfig holds API client configurations
type ClientsConfig struct {
	Gemini GeminiConfig `toml:"gemini"`
	FMP    FMPConfig    `toml:"fmp"`
	News   NewsConfig   `toml:"news"`
}

// GeminiConfig holds Gemini API configuration
type GeminiConfig struct {
	APIKey          string  `toml:"api_key"`
	Model           string  `toml:"model"`
	Temperature     float64 `toml:"temperature"`
	MaxOutputTokens int     `toml:"max_output_tokens"`
}

// FMPConfig holds Financial Modeling Prep API configuration
type FMPConfig struct {
	BaseURL   string `toml:"base_url"`
	APIKey    string `toml:"api_key"`
	RateLimit int    `toml:"rate_limit"`
	Timeout   string `toml:"timeout"`
}

// GetTimeout parses and returns the timeout duration
func (c *FMPConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 30 * time.Second
	}
	return d
}

// NewsConfig holds Google News RSS retrieval configuration
type NewsConfig struct {
	BaseURL       string `toml:"base_url"`
	Timeout       string `toml:"timeout"`
	PerStockLimit int    `toml:"per_stock_limit"`
	MarketLimit   int    `toml:"market_limit"`
}

// GetTimeout parses and returns the timeout duration
func (c *NewsConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 15 * time.Second
	}
	return d
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// NewDefaultConfig returns a Config with sensible defaults
func NewDefaultConfig() *Config {
	return &Config{
		Environment:       "development",
		ReportingCurrency: "JPY",
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Storage: StorageConfig{
			Namespace:      "kabuto",
			Database:       "kabuto",
			ConnectTimeout: "5s",
		},
		Clients: ClientsConfig{
			Gemini: GeminiConfig{
				Model:           "gemini-2.5-flash",
				Temperature:     0.2,
				MaxOutputTokens: 8000,
			},
			FMP: FMPConfig{
				BaseURL:   "https://financialmodelingprep.com/api/v3",
				RateLimit: 5,
				Timeout:   "30s",
			},
			News: NewsConfig{
				BaseURL:       "https://news.google.com/rss",
				Timeout:       "15s",
				PerStockLimit: 2,
				MarketLimit:   5,
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// LoadConfig loads configuration from files with environment overrides
func LoadConfig(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	// Load and merge each config file in order (later files override earlier)
	for _, path := range paths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue // Skip missing files
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(config)
	validateReportingCurrency(config)

	return config, nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(config *Config) {
	if env := os.Getenv("KABUTO_ENV"); env != "" {
		config.Environment = env
	}

	if host := os.Getenv("KABUTO_HOST"); host != "" {
		config.Server.Host = host
	}

	if port := os.Getenv("KABUTO_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}

	if level := os.Getenv("KABUTO_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}

	if addr := os.Getenv("KABUTO_STORAGE_ADDRESS"); addr != "" {
		config.Storage.Address = addr
	}
	if v := os.Getenv("KABUTO_STORAGE_USERNAME"); v != "" {
		config.Storage.Username = v
	}
	if v := os.Getenv("KABUTO_STORAGE_PASSWORD"); v != "" {
		config.Storage.Password = v
	}

	if key := ResolveAPIKey("gemini"); key != "" {
		config.Clients.Gemini.APIKey = key
	}
	if key := ResolveAPIKey("fmp"); key != "" {
		config.Clients.FMP.APIKey = key
	}
}

// ResolveAPIKey resolves an API key from the environment. Returns the first
// non-empty value among the recognized variable names for the given client.
func ResolveAPIKey(name string) string {
	keyToEnvMapping := map[string][]string{
		"gemini": {"GEMINI_API_KEY", "GOOGLE_API_KEY", "KABUTO_GEMINI_API_KEY"},
		"fmp":    {"FMP_API_KEY", "KABUTO_FMP_API_KEY"},
	}

	for _, envVarName := range keyToEnvMapping[name] {
		if v := os.Getenv(envVarName); v != "" {
			return v
		}
	}
	return ""
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Environment))
	return env == "production" || env == "prod"
}

// validateReportingCurrency forces the reporting currency to "JPY", the only
// currency the fixed rate table normalizes into.
func validateReportingCurrency(config *Config) {
	rc := strings.ToUpper(config.ReportingCurrency)
	if rc != "JPY" {
		rc = "JPY"
	}
	config.ReportingCurrency = rc
}
