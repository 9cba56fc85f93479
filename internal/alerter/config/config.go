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
	BaseURL             string `mapstructure:"base_url"`
	APIKey              string `mapstructure:"api_key"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
}

// Telegram holds configuration for the Telegram notifier.
type Telegram struct {
	BotToken string `mapstructure:"bot_token"`
	ChatID   int64  `mapstructure:"chat_id"`
}

// Alerter holds the cron schedules and alert tuning.
type Alerter struct {
	PriceCheckSchedule string        `mapstructure:"price_check_schedule"`
	NewsSchedule       string        `mapstructure:"news_schedule"`
	AlertCooldown      time.Duration `mapstructure:"alert_cooldown"`
}

// News holds the scraping and summary tuning.
type News struct {
	RSSBaseURL       string   `mapstructure:"rss_base_url"`
	MaxNewsPerSymbol int      `mapstructure:"max_news_per_symbol"`
	MaxNewsAgeDays   int      `mapstructure:"max_news_age_days"`
	MaxConcurrent    int      `mapstructure:"max_concurrent"`
	BlacklistDomains []string `mapstructure:"blacklist_domains"`
}

// Config holds the full configuration for the alert service.
type Config struct {
	App      config.App      `mapstructure:"app"`
	Logger   config.Logger   `mapstructure:"logger"`
	Database config.Database `mapstructure:"database"`
	Redis    config.Redis    `mapstructure:"redis"`
	Gemini   Gemini          `mapstructure:"gemini"`
	Finnhub  Finnhub         `mapstructure:"finnhub"`
	Telegram Telegram        `mapstructure:"telegram"`
	Alerter  Alerter         `mapstructure:"alerter"`
	News     News            `mapstructure:"news"`
}

// Load loads the alert service configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
