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

	"golang-trade-journal/internal/journal/config"
	"golang-trade-journal/internal/journal/dto"
	"golang-trade-journal/pkg/logger"

	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// QuoteRepository fetches real-time quotes for watchlist symbols.
type QuoteRepository interface {
	GetQuote(ctx context.Context, symbol string) (*dto.QuoteResponse, error)
}

// NewFinnhubQuoteRepository creates a quote repository backed by the Finnhub
// /quote endpoint, with a short-lived in-memory cache in front of it.
func NewFinnhubQuoteRepository(cfg *config.Config, log *logger.Logger) QuoteRepository {
	secondsPerRequest := time.Minute / time.Duration(cfg.Finnhub.MaxRequestPerMinute)
	return &finnhubQuoteRepository{
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
		cfg:     cfg,
		logger:  log,
		cache:   cache.New(cfg.Finnhub.QuoteCacheTTL, 2*cfg.Finnhub.QuoteCacheTTL),
		limiter: rate.NewLimiter(rate.Every(secondsPerRequest), 1),
	}
}

type finnhubQuoteRepository struct {
	client  *http.Client
	cfg     *config.Config
	logger  *logger.Logger
	cache   *cache.Cache
	limiter *rate.Limiter
}

// GetQuote returns the latest quote for a symbol, serving from cache when a
// recent fetch is still fresh.
func (r *finnhubQuoteRepository) GetQuote(ctx context.Context, symbol string) (*dto.QuoteResponse, error) {
	querySymbol := normalizeSymbol(symbol)

	if cached, found := r.cache.Get(querySymbol); found {
		if quote, ok := cached.(*dto.QuoteResponse); ok {
			return quote, nil
		}
	}

	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("failed to wait for request limit: %w", err)
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

	quote := &dto.QuoteResponse{
		Symbol:        symbol,
		Price:         raw.Current,
		Change:        raw.Change,
		PercentChange: raw.PercentChange,
		High:          raw.High,
		Low:           raw.Low,
		Open:          raw.Open,
		PrevClose:     raw.PrevClose,
		Timestamp:     raw.Timestamp,
	}
	r.cache.Set(querySymbol, quote, cache.DefaultExpiration)

	return quote, nil
}

// normalizeSymbol rewrites pair notation into Finnhub's plain form.
// Exchange-prefixed symbols (BINANCE:BTCUSDT) pass through unchanged.
func normalizeSymbol(symbol string) string {
	if strings.Contains(symbol, ":") {
		return symbol
	}
	symbol = strings.ReplaceAll(symbol, "/", "")
	return strings.ReplaceAll(symbol, "-", "")
}
