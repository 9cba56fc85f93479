package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"golang-trade-journal/internal/entity"
	"golang-trade-journal/internal/journal/config"
	"golang-trade-journal/internal/journal/repository"
	"golang-trade-journal/pkg/common"
	"golang-trade-journal/pkg/logger"
	"golang-trade-journal/pkg/metrics"
	"golang-trade-journal/pkg/redis"
)

// AnalyticsService exposes the metrics engine over the user's stored trade
// history. The summary endpoint is cached; everything else recomputes per
// request, which stays cheap at journal scale.
type AnalyticsService interface {
	EquityCurve(ctx context.Context, userID string) ([]metrics.EquityPoint, error)
	Drawdown(ctx context.Context, userID string) (*metrics.DrawdownReport, error)
	RiskOfRuin(ctx context.Context, userID string) (*metrics.RuinReport, error)
	SystemQuality(ctx context.Context, userID string) (*metrics.QualityReport, error)
	Excursion(ctx context.Context, userID string) (*metrics.ExcursionReport, error)
	Behavior(ctx context.Context, userID string) (*metrics.BehaviorReport, error)
	Summary(ctx context.Context, userID string) (*metrics.SummaryReport, error)
	EmotionBreakdown(ctx context.Context, userID string) ([]metrics.GroupStat, error)
	StrategyBreakdown(ctx context.Context, userID string) ([]metrics.GroupStat, error)
}

// NewAnalyticsService creates a new analytics service.
func NewAnalyticsService(cfg *config.Config, tradeRepo repository.TradeRepository, redisClient *redis.Client, log *logger.Logger) AnalyticsService {
	engine := metrics.NewEngine(metrics.Config{
		CapitalUnits:    cfg.Analytics.CapitalUnits,
		RiskFreeRatePct: cfg.Analytics.RiskFreeRatePct,
		CapitalBase:     cfg.Analytics.CapitalBase,
	})
	return &analyticsService{
		cfg:         cfg,
		engine:      engine,
		tradeRepo:   tradeRepo,
		redisClient: redisClient,
		logger:      log,
	}
}

type analyticsService struct {
	cfg         *config.Config
	engine      *metrics.Engine
	tradeRepo   repository.TradeRepository
	redisClient *redis.Client
	logger      *logger.Logger
}

func (s *analyticsService) EquityCurve(ctx context.Context, userID string) ([]metrics.EquityPoint, error) {
	trades, err := s.loadTrades(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.engine.EquityCurve(trades), nil
}

func (s *analyticsService) Drawdown(ctx context.Context, userID string) (*metrics.DrawdownReport, error) {
	trades, err := s.loadTrades(ctx, userID)
	if err != nil {
		return nil, err
	}
	report := s.engine.Drawdown(trades)
	return &report, nil
}

func (s *analyticsService) RiskOfRuin(ctx context.Context, userID string) (*metrics.RuinReport, error) {
	trades, err := s.loadTrades(ctx, userID)
	if err != nil {
		return nil, err
	}
	report := s.engine.RiskOfRuin(trades)
	return &report, nil
}

func (s *analyticsService) SystemQuality(ctx context.Context, userID string) (*metrics.QualityReport, error) {
	trades, err := s.loadTrades(ctx, userID)
	if err != nil {
		return nil, err
	}
	report := s.engine.SystemQuality(trades)
	return &report, nil
}

func (s *analyticsService) Excursion(ctx context.Context, userID string) (*metrics.ExcursionReport, error) {
	trades, err := s.loadTrades(ctx, userID)
	if err != nil {
		return nil, err
	}
	report := s.engine.Excursion(trades)
	return &report, nil
}

func (s *analyticsService) Behavior(ctx context.Context, userID string) (*metrics.BehaviorReport, error) {
	trades, err := s.loadTrades(ctx, userID)
	if err != nil {
		return nil, err
	}
	report := s.engine.Behavior(trades)
	return &report, nil
}

// Summary serves the dashboard headline from Redis when fresh; trade writes
// invalidate the key.
func (s *analyticsService) Summary(ctx context.Context, userID string) (*metrics.SummaryReport, error) {
	key := fmt.Sprintf(common.RedisKeyAnalyticsSummary, userID)

	cached, err := s.redisClient.Get(ctx, key).Result()
	if err == nil {
		var report metrics.SummaryReport
		if err := json.Unmarshal([]byte(cached), &report); err == nil {
			return &report, nil
		}
		s.logger.Warn("Discarding malformed summary cache entry", logger.StringField("key", key))
	} else if err != goredis.Nil {
		s.logger.Warn("Failed to read summary cache", logger.ErrorField(err))
	}

	trades, err := s.loadTrades(ctx, userID)
	if err != nil {
		return nil, err
	}
	report := s.engine.Summary(trades, time.Now())

	if payload, err := json.Marshal(report); err == nil {
		if err := s.redisClient.Set(ctx, key, payload, s.cfg.Analytics.SummaryCacheTTL).Err(); err != nil {
			s.logger.Warn("Failed to write summary cache", logger.ErrorField(err))
		}
	}

	return &report, nil
}

func (s *analyticsService) EmotionBreakdown(ctx context.Context, userID string) ([]metrics.GroupStat, error) {
	trades, err := s.loadTrades(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.engine.EmotionBreakdown(trades), nil
}

func (s *analyticsService) StrategyBreakdown(ctx context.Context, userID string) ([]metrics.GroupStat, error) {
	trades, err := s.loadTrades(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.engine.StrategyBreakdown(trades), nil
}

func (s *analyticsService) loadTrades(ctx context.Context, userID string) ([]metrics.Trade, error) {
	trades, err := s.tradeRepo.FindAll(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to load trades for analytics", logger.ErrorField(err), logger.StringField("user_id", userID))
		return nil, err
	}
	return ToMetricsTrades(trades), nil
}

// ToMetricsTrades converts stored trades into the engine's input records.
func ToMetricsTrades(trades []entity.Trade) []metrics.Trade {
	out := make([]metrics.Trade, 0, len(trades))
	for _, t := range trades {
		out = append(out, metrics.Trade{
			Symbol:        t.Symbol,
			Direction:     string(t.TradeType),
			EntryDate:     t.EntryDate,
			ExitDate:      t.ExitDate,
			ProfitLoss:    t.ProfitLoss,
			ProfitLossPct: t.ProfitLossPct,
			Strategy:      t.Strategy,
			Emotion:       string(t.Emotion),
			SetupQuality:  string(t.SetupQuality),
			IsMistake:     t.IsMistake,
			MAE:           t.MAE,
			MFE:           t.MFE,
			InitialRisk:   t.InitialRisk,
		})
	}
	return out
}
