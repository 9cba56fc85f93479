package service

import (
	"context"
	"fmt"

	"golang-trade-journal/internal/entity"
	"golang-trade-journal/internal/journal/dto"
	"golang-trade-journal/internal/journal/repository"
	"golang-trade-journal/pkg/logger"
	"golang-trade-journal/pkg/metrics"
)

// WatchlistService manages staged trade plans. Responses carry a projected
// risk/reward whenever all three price levels are present.
type WatchlistService interface {
	Create(ctx context.Context, userID string, req *dto.CreatePlanRequest) (*dto.PlanResponse, error)
	GetByID(ctx context.Context, userID string, id uint) (*dto.PlanResponse, error)
	GetAll(ctx context.Context, userID string) ([]dto.PlanResponse, error)
	Update(ctx context.Context, userID string, id uint, req *dto.UpdatePlanRequest) (*dto.PlanResponse, error)
	Delete(ctx context.Context, userID string, id uint) error
}

// NewWatchlistService creates a new watchlist service.
func NewWatchlistService(planRepo repository.WatchlistPlanRepository, log *logger.Logger) WatchlistService {
	return &watchlistService{
		planRepo: planRepo,
		logger:   log,
	}
}

type watchlistService struct {
	planRepo repository.WatchlistPlanRepository
	logger   *logger.Logger
}

func (s *watchlistService) Create(ctx context.Context, userID string, req *dto.CreatePlanRequest) (*dto.PlanResponse, error) {
	if err := validatePlanRequest(req); err != nil {
		return nil, err
	}

	plan := planFromRequest(userID, req)
	if err := s.planRepo.Create(ctx, plan); err != nil {
		s.logger.Error("Failed to create watchlist plan", logger.ErrorField(err), logger.StringField("symbol", req.Symbol))
		return nil, err
	}
	return toPlanResponse(plan), nil
}

func (s *watchlistService) GetByID(ctx context.Context, userID string, id uint) (*dto.PlanResponse, error) {
	plan, err := s.planRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	return toPlanResponse(plan), nil
}

func (s *watchlistService) GetAll(ctx context.Context, userID string) ([]dto.PlanResponse, error) {
	plans, err := s.planRepo.FindAll(ctx, userID)
	if err != nil {
		return nil, err
	}
	responses := make([]dto.PlanResponse, 0, len(plans))
	for i := range plans {
		responses = append(responses, *toPlanResponse(&plans[i]))
	}
	return responses, nil
}

func (s *watchlistService) Update(ctx context.Context, userID string, id uint, req *dto.UpdatePlanRequest) (*dto.PlanResponse, error) {
	if err := validatePlanRequest(req); err != nil {
		return nil, err
	}

	existing, err := s.planRepo.FindByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	plan := planFromRequest(userID, req)
	plan.ID = existing.ID
	plan.CreatedAt = existing.CreatedAt
	plan.LastAlertedAt = existing.LastAlertedAt

	if err := s.planRepo.Update(ctx, plan); err != nil {
		s.logger.Error("Failed to update watchlist plan", logger.ErrorField(err), logger.IntField("id", int(id)))
		return nil, err
	}
	return toPlanResponse(plan), nil
}

func (s *watchlistService) Delete(ctx context.Context, userID string, id uint) error {
	return s.planRepo.Delete(ctx, userID, id)
}

func validatePlanRequest(req *dto.CreatePlanRequest) error {
	if req.Symbol == "" {
		return fmt.Errorf("symbol is required")
	}
	if req.Direction != string(entity.TradeDirectionLong) && req.Direction != string(entity.TradeDirectionShort) {
		return fmt.Errorf("direction must be long or short")
	}
	if req.Conviction < 1 || req.Conviction > 5 {
		return fmt.Errorf("conviction must be between 1 and 5")
	}
	if req.AlertActive && req.TriggerPrice == nil {
		return fmt.Errorf("trigger_price is required when alerts are active")
	}
	return nil
}

func planFromRequest(userID string, req *dto.CreatePlanRequest) *entity.WatchlistPlan {
	return &entity.WatchlistPlan{
		UserID:       userID,
		Symbol:       req.Symbol,
		Direction:    entity.TradeDirection(req.Direction),
		SetupType:    req.SetupType,
		Conviction:   req.Conviction,
		TriggerPrice: req.TriggerPrice,
		StopLoss:     req.StopLoss,
		TakeProfit:   req.TakeProfit,
		Thesis:       req.Thesis,
		AlertActive:  req.AlertActive,
		IsActive:     req.IsActive,
	}
}

func toPlanResponse(plan *entity.WatchlistPlan) *dto.PlanResponse {
	resp := &dto.PlanResponse{
		ID:            plan.ID,
		Symbol:        plan.Symbol,
		Direction:     string(plan.Direction),
		SetupType:     plan.SetupType,
		Conviction:    plan.Conviction,
		TriggerPrice:  plan.TriggerPrice,
		StopLoss:      plan.StopLoss,
		TakeProfit:    plan.TakeProfit,
		Thesis:        plan.Thesis,
		AlertActive:   plan.AlertActive,
		IsActive:      plan.IsActive,
		LastAlertedAt: plan.LastAlertedAt,
		CreatedAt:     plan.CreatedAt,
		UpdatedAt:     plan.UpdatedAt,
	}
	if plan.TriggerPrice != nil && plan.StopLoss != nil && plan.TakeProfit != nil {
		rr := metrics.PlanRiskReward(*plan.TriggerPrice, *plan.StopLoss, *plan.TakeProfit)
		resp.RiskReward = &dto.RiskRewardDTO{
			Risk:   rr.Risk,
			Reward: rr.Reward,
			Ratio:  rr.Ratio,
		}
	}
	return resp
}
