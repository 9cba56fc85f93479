package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang-trade-journal/internal/alerter/config"
	"golang-trade-journal/internal/alerter/dto"
	"golang-trade-journal/pkg/logger"

	"golang.org/x/time/rate"
)

// QuoteRepository fetches real-time quotes for alert evaluation.
type QuoteRepository interface {
	GetQuote(ctx context.Context, symbol string) (*dto.Quote, error)
}

// NewFinnhubQuoteRepository creates a quote repository backed by Finnhub.
func NewFinnhubQuoteRepository(cfg *config.Config, log *logger.Logger) QuoteRepository {
	secondsPerRequest := time.Minute / time.Duration(cfg.Finnhub.MaxRequestPerMinute)
	return &finnhubQuoteRepository{
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
		cfg:     cfg,
		logger:  log,
		limiter: rate.NewLimiter(rate.Every(secondsPerRequest), 1),
	}
}

type finnhubQuoteRepository struct {
	client  *http.Client
	cfg     *config.Config
	logger  *logger.Logger
	limiter *rate.Limiter
}

func (r *finnhubQuoteRepository) GetQuote(ctx context.Context, symbol string) (*dto.Quote, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for request limit: %w", err)
	}

	querySymbol := symbol
	if !strings.Contains(symbol, ":") {
		querySymbol = strings.NewReplacer("/", "", "-", "").Replace(symbol)
	}

	apiURL := fmt.Sprintf("%s/quote?symbol=%s&token=%s", r.cfg.Finnhub.BaseURL, url.QueryEscape(querySymbol), r.cfg.Finnhub.APIKey)
	req, err := http.NewRequestWithContext(ctx, "GET", apiURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create new http request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		r.logger.Error("Failed to fetch quote", logger.ErrorField(err), logger.StringField("symbol", querySymbol))
		return nil, fmt.Errorf("failed to fetch quote: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("received non-OK response from Finnhub: %d - %s", resp.StatusCode, string(body))
	}

	var raw dto.FinnhubQuote
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, fmt.Errorf("failed to decode quote response: %w", err)
	}

	if raw.Current == 0 && raw.Timestamp == 0 {
		return nil, fmt.Errorf("no quote data for symbol %s", symbol)
	}

	return &dto.Quote{
		Symbol:        symbol,
		Price:         raw.Current,
		PercentChange: raw.PercentChange,
		High:          raw.High,
		Low:           raw.Low,
		Timestamp:     raw.Timestamp,
	}, nil
}
