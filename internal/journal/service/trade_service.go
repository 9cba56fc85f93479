package service

import (
	"context"
	"fmt"

	"golang-trade-journal/internal/entity"
	"golang-trade-journal/internal/journal/dto"
	"golang-trade-journal/internal/journal/repository"
	"golang-trade-journal/pkg/common"
	"golang-trade-journal/pkg/logger"
	"golang-trade-journal/pkg/redis"
)

// TradeService manages the journaled trade lifecycle. P&L is computed here,
// once, whenever a trade is written with an exit price.
type TradeService interface {
	Create(ctx context.Context, userID string, req *dto.CreateTradeRequest) (*dto.TradeResponse, error)
	GetByID(ctx context.Context, userID string, id uint) (*dto.TradeResponse, error)
	GetAll(ctx context.Context, userID string) ([]dto.TradeResponse, error)
	Update(ctx context.Context, userID string, id uint, req *dto.UpdateTradeRequest) (*dto.TradeResponse, error)
	Delete(ctx context.Context, userID string, id uint) error
}

// NewTradeService creates a new trade service.
func NewTradeService(tradeRepo repository.TradeRepository, redisClient *redis.Client, log *logger.Logger) TradeService {
	return &tradeService{
		tradeRepo:   tradeRepo,
		redisClient: redisClient,
		logger:      log,
	}
}

type tradeService struct {
	tradeRepo   repository.TradeRepository
	redisClient *redis.Client
	logger      *logger.Logger
}

func (s *tradeService) Create(ctx context.Context, userID string, req *dto.CreateTradeRequest) (*dto.TradeResponse, error) {
	if err := validateTradeRequest(req); err != nil {
		return nil, err
	}

	trade := tradeFromRequest(userID, req)
	applyProfitLoss(trade)

	if err := s.tradeRepo.Create(ctx, trade); err != nil {
		s.logger.Error("Failed to create trade", logger.ErrorField(err), logger.StringField("symbol", req.Symbol))
		return nil, err
	}

	s.invalidateSummaryCache(ctx, userID)
	return toTradeResponse(trade), nil
}

func (s *tradeService) GetByID(ctx context.Context, userID string, id uint) (*dto.TradeResponse, error) {
	trade, err := s.tradeRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return toTradeResponse(trade), nil
}

func (s *tradeService) GetAll(ctx context.Context, userID string) ([]dto.TradeResponse, error) {
	trades, err := s.tradeRepo.FindAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	responses := make([]dto.TradeResponse, 0, len(trades))
	for i := range trades {
		responses = append(responses, *toTradeResponse(&trades[i]))
	}
	return responses, nil
}

func (s *tradeService) Update(ctx context.Context, userID string, id uint, req *dto.UpdateTradeRequest) (*dto.TradeResponse, error) {
	if err := validateTradeRequest(req); err != nil {
		return nil, err
	}

	existing, err := s.tradeRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	trade := tradeFromRequest(userID, req)
	trade.ID = existing.ID
	trade.CreatedAt = existing.CreatedAt
	applyProfitLoss(trade)

	if err := s.tradeRepo.Update(ctx, trade); err != nil {
		s.logger.Error("Failed to update trade", logger.ErrorField(err), logger.IntField("id", int(id)))
		return nil, err
	}

	s.invalidateSummaryCache(ctx, userID)
	return toTradeResponse(trade), nil
}

func (s *tradeService) Delete(ctx context.Context, userID string, id uint) error {
	if err := s.tradeRepo.Delete(ctx, userID, id); err != nil {
		return err
	}
	s.invalidateSummaryCache(ctx, userID)
	return nil
}

// invalidateSummaryCache drops the cached analytics summary after any write.
// Cache misses just recompute, so failures only get logged.
func (s *tradeService) invalidateSummaryCache(ctx context.Context, userID string) {
	key := fmt.Sprintf(common.RedisKeyAnalyticsSummary, userID)
	if err := s.redisClient.Del(ctx, key).Err(); err != nil {
		s.logger.Warn("Failed to invalidate summary cache", logger.ErrorField(err), logger.StringField("key", key))
	}
}

func validateTradeRequest(req *dto.CreateTradeRequest) error {
	if req.Symbol == "" {
		return fmt.Errorf("symbol is required")
	}
	if req.TradeType != string(entity.TradeDirectionLong) && req.TradeType != string(entity.TradeDirectionShort) {
		return fmt.Errorf("trade_type must be long or short")
	}
	if req.EntryDate.IsZero() {
		return fmt.Errorf("entry_date is required")
	}
	if req.EntryPrice <= 0 {
		return fmt.Errorf("entry_price must be positive")
	}
	if req.Quantity <= 0 {
		return fmt.Errorf("quantity must be positive")
	}
	if req.ExitPrice != nil && *req.ExitPrice < 0 {
		return fmt.Errorf("exit_price cannot be negative")
	}
	return nil
}

func tradeFromRequest(userID string, req *dto.CreateTradeRequest) *entity.Trade {
	return &entity.Trade{
		UserID:       userID,
		Symbol:       req.Symbol,
		TradeType:    entity.TradeDirection(req.TradeType),
		EntryDate:    req.EntryDate,
		ExitDate:     req.ExitDate,
		EntryPrice:   req.EntryPrice,
		ExitPrice:    req.ExitPrice,
		Quantity:     req.Quantity,
		Fees:         req.Fees,
		Strategy:     req.Strategy,
		Emotion:      entity.TradeEmotion(req.Emotion),
		SetupQuality: entity.SetupQuality(req.SetupQuality),
		IsMistake:    req.IsMistake,
		MAE:          req.MAE,
		MFE:          req.MFE,
		InitialRisk:  req.InitialRisk,
		Notes:        req.Notes,
	}
}

// applyProfitLoss derives realized P&L from the submitted prices. Open
// positions keep zero P&L until an exit price arrives.
func applyProfitLoss(trade *entity.Trade) {
	if trade.ExitPrice == nil {
		trade.ProfitLoss = 0
		trade.ProfitLossPct = 0
		return
	}

	multiplier := 1.0
	if trade.TradeType == entity.TradeDirectionShort {
		multiplier = -1.0
	}

	diff := *trade.ExitPrice - trade.EntryPrice
	trade.ProfitLoss = multiplier*diff*trade.Quantity - trade.Fees
	trade.ProfitLossPct = diff / trade.EntryPrice * 100 * multiplier
}

func toTradeResponse(trade *entity.Trade) *dto.TradeResponse {
	return &dto.TradeResponse{
		ID:            trade.ID,
		Symbol:        trade.Symbol,
		TradeType:     string(trade.TradeType),
		EntryDate:     trade.EntryDate,
		ExitDate:      trade.ExitDate,
		EntryPrice:    trade.EntryPrice,
		ExitPrice:     trade.ExitPrice,
		Quantity:      trade.Quantity,
		Fees:          trade.Fees,
		ProfitLoss:    trade.ProfitLoss,
		ProfitLossPct: trade.ProfitLossPct,
		Strategy:      trade.Strategy,
		Emotion:       string(trade.Emotion),
		SetupQuality:  string(trade.SetupQuality),
		IsMistake:     trade.IsMistake,
		MAE:           trade.MAE,
		MFE:           trade.MFE,
		InitialRisk:   trade.InitialRisk,
		Notes:         trade.Notes,
		CreatedAt:     trade.CreatedAt,
		UpdatedAt:     trade.UpdatedAt,
	}
}
