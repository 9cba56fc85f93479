package config

import (
	"time"

	"golang-trade-journal/pkg/config"
)

// Gemini holds the configuration for the Gemini API.
type Gemini struct {
	APIKey              string `mapstructure:"api_key"`
	BaseURL             string `mapstructure:"base_url"`
	Model               string `mapstructure:"model"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
	MaxTokenPerMinute   int    `mapstructure:"max_token_per_minute"`
}

// Finnhub holds the configuration for the Finnhub quote API.
type Finnhub struct {
	BaseURL             string        `mapstructure:"base_url"`
	APIKey              string        `mapstructure:"api_key"`
	MaxRequestPerMinute int           `mapstructure:"max_request_per_minute"`
	QuoteCacheTTL       time.Duration `mapstructure:"quote_cache_ttl"`
}

// Analytics holds tuning for the analytics endpoints.
type Analytics struct {
	SummaryCacheTTL time.Duration `mapstructure:"summary_cache_ttl"`
	CapitalUnits    int           `mapstructure:"capital_units"`
	RiskFreeRatePct float64       `mapstructure:"risk_free_rate_pct"`
	CapitalBase     float64       `mapstructure:"capital_base"`
}

// Simulation bounds the Monte Carlo endpoint.
type Simulation struct {
	MaxSimulations int `mapstructure:"max_simulations"`
	MaxTrades      int `mapstructure:"max_trades"`
	Workers        int `mapstructure:"workers"`
}

// Config holds the full configuration for the journal service.
type Config struct {
	App        config.App      `mapstructure:"app"`
	Logger     config.Logger   `mapstructure:"logger"`
	Database   config.Database `mapstructure:"database"`
	Redis      config.Redis    `mapstructure:"redis"`
	API        config.API      `mapstructure:"api"`
	Gemini     Gemini          `mapstructure:"gemini"`
	Finnhub    Finnhub         `mapstructure:"finnhub"`
	Analytics  Analytics       `mapstructure:"analytics"`
	Simulation Simulation      `mapstructure:"simulation"`
}

// Load loads the journal service configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
