package service

import (
	"bytes"
	"context"
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"sync"
	"time"

	"golang-trade-journal/internal/alerter/config"
	"golang-trade-journal/internal/alerter/repository"
	"golang-trade-journal/internal/entity"
	"golang-trade-journal/pkg/logger"
	"golang-trade-journal/pkg/utils"

	"github.com/PuerkitoBio/goquery"
	"github.com/mauidude/go-readability"
	"github.com/mmcdole/gofeed"
)

// NewsService ingests news for every watched symbol and keeps a fresh
// AI-generated digest per symbol for the insight endpoints.
type NewsService interface {
	RefreshNews(ctx context.Context) error
}

// NewNewsService creates a new news service.
func NewNewsService(
	cfg *config.Config,
	planRepo repository.PlanRepository,
	newsRepo repository.NewsRepository,
	summarizer repository.NewsSummarizerRepository,
	log *logger.Logger,
) NewsService {
	return &newsService{
		cfg:        cfg,
		planRepo:   planRepo,
		newsRepo:   newsRepo,
		summarizer: summarizer,
		client:     &http.Client{Timeout: 30 * time.Second},
		logger:     log,
	}
}

type newsService struct {
	cfg        *config.Config
	planRepo   repository.PlanRepository
	newsRepo   repository.NewsRepository
	summarizer repository.NewsSummarizerRepository
	client     *http.Client
	logger     *logger.Logger
}

// RefreshNews scrapes and summarizes news for every distinct symbol on an
// active alertable plan. Symbols fan out under a bounded semaphore.
func (s *newsService) RefreshNews(ctx context.Context) error {
	plans, err := s.planRepo.FindAlertable(ctx)
	if err != nil {
		s.logger.Error("Failed to load plans for news refresh", logger.ErrorField(err))
		return err
	}

	seen := make(map[string]bool)
	var symbols []string
	for _, plan := range plans {
		if !seen[plan.Symbol] {
			seen[plan.Symbol] = true
			symbols = append(symbols, plan.Symbol)
		}
	}
	if len(symbols) == 0 {
		return nil
	}

	maxConcurrent := s.cfg.News.MaxConcurrent
	if maxConcurrent <= 0 {
		maxConcurrent = 2
	}
	semaphore := make(chan struct{}, maxConcurrent)

	var wg sync.WaitGroup
	for _, symbol := range symbols {
		if !utils.ShouldContinue(ctx, s.logger) {
			break
		}
		wg.Add(1)
		sym := symbol
		utils.GoSafe(func() {
			defer wg.Done()
			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			if err := s.refreshSymbol(ctx, sym); err != nil {
				s.logger.Error("Failed to refresh news for symbol", logger.ErrorField(err), logger.StringField("symbol", sym))
			}
		})
	}
	wg.Wait()
	return nil
}

func (s *newsService) refreshSymbol(ctx context.Context, symbol string) error {
	if err := s.scrapeSymbol(ctx, symbol); err != nil {
		return err
	}
	return s.summarizeSymbol(ctx, symbol)
}

// scrapeSymbol pulls the symbol's RSS feed, filters out articles already
// stored, extracts readable bodies and persists the rest.
func (s *newsService) scrapeSymbol(ctx context.Context, symbol string) error {
	feedURL := fmt.Sprintf("%s/search?q=%s+stock&hl=en-US&gl=US&ceid=US:en",
		s.cfg.News.RSSBaseURL, url.QueryEscape(symbol))

	s.logger.Info("Processing RSS feed", logger.StringField("url", feedURL))

	fp := gofeed.NewParser()
	feed, err := fp.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return fmt.Errorf("failed to parse RSS feed: %w", err)
	}

	sort.Slice(feed.Items, func(i, j int) bool {
		if feed.Items[i].PublishedParsed == nil || feed.Items[j].PublishedParsed == nil {
			return false
		}
		return feed.Items[i].PublishedParsed.After(*feed.Items[j].PublishedParsed)
	})

	items, err := s.filterItems(ctx, feed.Items)
	if err != nil {
		return err
	}

	stored := 0
	for _, item := range items {
		if !utils.ShouldContinue(ctx, s.logger) {
			break
		}
		if stored >= s.cfg.News.MaxNewsPerSymbol {
			break
		}
		if err := s.storeItem(ctx, symbol, item); err != nil {
			s.logger.Warn("Failed to store news item", logger.ErrorField(err), logger.StringField("title", item.Title))
			continue
		}
		stored++
	}

	s.logger.Info("Symbol news refreshed",
		logger.StringField("symbol", symbol),
		logger.IntField("feed_items", len(feed.Items)),
		logger.IntField("stored", stored),
	)
	return nil
}

// filterItems drops items that are already stored, too old, unparseable or
// from blacklisted domains.
func (s *newsService) filterItems(ctx context.Context, items []*gofeed.Item) ([]*gofeed.Item, error) {
	if len(items) == 0 {
		return nil, nil
	}

	hashes := make([]string, 0, len(items))
	for _, item := range items {
		hashes = append(hashes, itemHash(item))
	}
	existing, err := s.newsRepo.FindExistingHashes(ctx, hashes)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch existing news: %w", err)
	}

	cutoff := time.Now().AddDate(0, 0, -s.cfg.News.MaxNewsAgeDays)

	var filtered []*gofeed.Item
	for _, item := range items {
		if existing[itemHash(item)] {
			continue
		}
		if item.PublishedParsed == nil || item.PublishedParsed.Before(cutoff) {
			continue
		}
		if host := itemHost(item); host != "" && containsString(s.cfg.News.BlacklistDomains, host) {
			s.logger.Warn("Skip news from blacklisted domain", logger.StringField("domain", host))
			continue
		}
		filtered = append(filtered, item)
	}
	return filtered, nil
}

func (s *newsService) storeItem(ctx context.Context, symbol string, item *gofeed.Item) error {
	content, err := s.extractContent(ctx, item.Link)
	if err != nil {
		return err
	}

	news := &entity.SymbolNews{
		Symbol:         symbol,
		Title:          item.Title,
		Link:           item.Link,
		Source:         itemHost(item),
		PublishedAt:    item.PublishedParsed,
		RawContent:     content,
		HashIdentifier: itemHash(item),
	}
	return s.newsRepo.CreateIgnoreConflict(ctx, news)
}

// extractContent fetches the article and reduces it to readable plain text.
func (s *newsService) extractContent(ctx context.Context, link string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", link, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request for news item: %w", err)
	}
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch news content: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("failed to fetch news content, status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response body: %w", err)
	}

	doc, err := readability.NewDocument(string(body))
	if err != nil {
		return "", fmt.Errorf("failed to parse news content: %w", err)
	}

	docHTML, err := goquery.NewDocumentFromReader(bytes.NewReader([]byte(doc.Content())))
	if err != nil {
		return "", fmt.Errorf("failed to parse news content: %w", err)
	}
	return strings.TrimSpace(docHTML.Text()), nil
}

// summarizeSymbol regenerates the symbol's digest from its stored articles.
func (s *newsService) summarizeSymbol(ctx context.Context, symbol string) error {
	news, err := s.newsRepo.FindRecentBySymbol(ctx, symbol, s.cfg.News.MaxNewsAgeDays, s.cfg.News.MaxNewsPerSymbol)
	if err != nil {
		return fmt.Errorf("failed to load recent news: %w", err)
	}
	if len(news) == 0 {
		s.logger.Info("No news found for summary generation", logger.StringField("symbol", symbol))
		return nil
	}

	result, err := s.summarizer.GenerateNewsSummary(ctx, symbol, news)
	if err != nil {
		return fmt.Errorf("failed to generate news summary: %w", err)
	}

	start, end := newsWindow(news)
	summary := &entity.SymbolNewsSummary{
		Symbol:          symbol,
		Sentiment:       result.Sentiment,
		ConfidenceScore: result.ConfidenceScore,
		KeyIssues:       result.KeyIssues,
		ShortSummary:    result.ShortSummary,
		Reasoning:       result.Reasoning,
		SummaryStart:    start,
		SummaryEnd:      end,
	}
	return s.newsRepo.CreateSummary(ctx, summary)
}

func newsWindow(news []entity.SymbolNews) (time.Time, time.Time) {
	start, end := time.Now(), time.Time{}
	for _, n := range news {
		if n.PublishedAt == nil {
			continue
		}
		if n.PublishedAt.Before(start) {
			start = *n.PublishedAt
		}
		if n.PublishedAt.After(end) {
			end = *n.PublishedAt
		}
	}
	if end.IsZero() {
		end = time.Now()
	}
	return start, end
}

func itemHash(item *gofeed.Item) string {
	sum := md5.Sum([]byte(item.Link + "|" + item.Published))
	return hex.EncodeToString(sum[:])
}

func itemHost(item *gofeed.Item) string {
	parsed, err := url.Parse(item.Link)
	if err != nil {
		return ""
	}
	return parsed.Hostname()
}

func containsString(list []string, target string) bool {
	for _, s := range list {
		if s == target {
			return true
		}
	}
	return false
}
