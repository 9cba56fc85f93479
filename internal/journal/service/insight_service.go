package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang-trade-journal/internal/entity"
	"golang-trade-journal/internal/journal/dto"
	"golang-trade-journal/internal/journal/repository"
	"golang-trade-journal/pkg/logger"
	"golang-trade-journal/pkg/metrics"
)

// InsightService orchestrates AI insight generation: it assembles the
// performance context, invokes one agent persona and persists the result.
type InsightService interface {
	Generate(ctx context.Context, userID string, req *dto.GenerateInsightRequest) (*dto.InsightResponse, error)
	GetHistory(ctx context.Context, userID string, limit int) ([]dto.InsightResponse, error)
	ListModels(ctx context.Context) (*dto.ModelsResponse, error)
}

// NewInsightService creates a new insight service.
func NewInsightService(
	engine *metrics.Engine,
	tradeRepo repository.TradeRepository,
	planRepo repository.WatchlistPlanRepository,
	summaryRepo repository.SymbolNewsSummaryRepository,
	insightRepo repository.InsightRepository,
	aiRepo repository.AIRepository,
	log *logger.Logger,
) InsightService {
	return &insightService{
		engine:      engine,
		tradeRepo:   tradeRepo,
		planRepo:    planRepo,
		summaryRepo: summaryRepo,
		insightRepo: insightRepo,
		aiRepo:      aiRepo,
		logger:      log,
	}
}

type insightService struct {
	engine      *metrics.Engine
	tradeRepo   repository.TradeRepository
	planRepo    repository.WatchlistPlanRepository
	summaryRepo repository.SymbolNewsSummaryRepository
	insightRepo repository.InsightRepository
	aiRepo      repository.AIRepository
	logger      *logger.Logger
}

func (s *insightService) Generate(ctx context.Context, userID string, req *dto.GenerateInsightRequest) (*dto.InsightResponse, error) {
	agent := entity.InsightAgent(req.Agent)
	if !validAgent(agent) {
		return nil, fmt.Errorf("unknown agent: %s", req.Agent)
	}

	trades, err := s.tradeRepo.FindAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(trades) == 0 {
		return nil, fmt.Errorf("no trades to analyze")
	}

	insightCtx, err := s.buildContext(ctx, userID, trades)
	if err != nil {
		return nil, err
	}

	content, err := s.aiRepo.GenerateInsight(ctx, agent, req.Model, insightCtx, trades)
	if err != nil {
		s.logger.Error("Failed to generate insight", logger.ErrorField(err), logger.StringField("agent", string(agent)))
		return nil, err
	}

	ctxJSON, err := json.Marshal(insightCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal insight context: %w", err)
	}

	insight := &entity.TradeInsight{
		UserID:  userID,
		Agent:   agent,
		Model:   req.Model,
		Content: content,
		Context: ctxJSON,
	}
	if insight.Model == "" {
		insight.Model = "default"
	}
	if err := s.insightRepo.Create(ctx, insight); err != nil {
		s.logger.Error("Failed to store insight", logger.ErrorField(err))
		return nil, err
	}

	return toInsightResponse(insight), nil
}

func (s *insightService) GetHistory(ctx context.Context, userID string, limit int) ([]dto.InsightResponse, error) {
	insights, err := s.insightRepo.FindAll(ctx, userID, limit)
	if err != nil {
		return nil, err
	}
	responses := make([]dto.InsightResponse, 0, len(insights))
	for i := range insights {
		responses = append(responses, *toInsightResponse(&insights[i]))
	}
	return responses, nil
}

func (s *insightService) ListModels(ctx context.Context) (*dto.ModelsResponse, error) {
	models, err := s.aiRepo.ListModels(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ModelsResponse{Models: models}, nil
}

// buildContext condenses the journal into the numbers the model reasons
// over, plus active watchlist symbols and their latest news digests.
func (s *insightService) buildContext(ctx context.Context, userID string, trades []entity.Trade) (*dto.InsightContext, error) {
	metricTrades := ToMetricsTrades(trades)
	summary := s.engine.Summary(metricTrades, time.Now())
	quality := s.engine.SystemQuality(metricTrades)
	behavior := s.engine.Behavior(metricTrades)

	insightCtx := &dto.InsightContext{
		TradeCount:      summary.TradeCount,
		TotalPnL:        summary.TotalPnL,
		WinRatePct:      summary.WinRatePct,
		ProfitFactor:    summary.ProfitFactor,
		DisciplineScore: behavior.DisciplineScore,
		SQN:             quality.SQN,
		Expectancy:      quality.Expectancy,
	}

	plans, err := s.planRepo.FindAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool)
	for _, p := range plans {
		if !p.IsActive || seen[p.Symbol] {
			continue
		}
		seen[p.Symbol] = true
		insightCtx.WatchlistSymbols = append(insightCtx.WatchlistSymbols, p.Symbol)
	}

	if len(insightCtx.WatchlistSymbols) > 0 {
		summaries, err := s.summaryRepo.FindLatestBySymbols(ctx, insightCtx.WatchlistSymbols)
		if err != nil {
			s.logger.Warn("Failed to load news summaries for insight", logger.ErrorField(err))
		}
		for _, sum := range summaries {
			insightCtx.NewsSummaries = append(insightCtx.NewsSummaries, dto.InsightNewsContext{
				Symbol:       sum.Symbol,
				Sentiment:    sum.Sentiment,
				Confidence:   sum.ConfidenceScore,
				ShortSummary: sum.ShortSummary,
			})
		}
	}

	return insightCtx, nil
}

func validAgent(agent entity.InsightAgent) bool {
	switch agent {
	case entity.InsightAgentSupervisor,
		entity.InsightAgentAnalyst,
		entity.InsightAgentTechnician,
		entity.InsightAgentQuant,
		entity.InsightAgentPsychologist:
		return true
	}
	return false
}

func toInsightResponse(insight *entity.TradeInsight) *dto.InsightResponse {
	return &dto.InsightResponse{
		ID:        insight.ID,
		Agent:     string(insight.Agent),
		Model:     insight.Model,
		Content:   insight.Content,
		Context:   json.RawMessage(insight.Context),
		CreatedAt: insight.CreatedAt,
	}
}
