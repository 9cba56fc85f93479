package service

import (
	"context"
	"fmt"
	"time"

	"golang-trade-journal/internal/alerter/config"
	"golang-trade-journal/internal/alerter/dto"
	"golang-trade-journal/internal/alerter/repository"
	"golang-trade-journal/internal/entity"
	"golang-trade-journal/pkg/common"
	"golang-trade-journal/pkg/logger"
	"golang-trade-journal/pkg/redis"
	"golang-trade-journal/pkg/telegram"
)

// AlertService evaluates watchlist plans against live quotes and notifies
// when a trigger or stop level is crossed. A Redis cooldown key per plan and
// level keeps repeated cron runs from re-firing the same alert.
type AlertService interface {
	CheckPriceAlerts(ctx context.Context) error
}

// NewAlertService creates a new alert service.
func NewAlertService(
	cfg *config.Config,
	planRepo repository.PlanRepository,
	quoteRepo repository.QuoteRepository,
	redisClient *redis.Client,
	notifier telegram.Notifier,
	log *logger.Logger,
) AlertService {
	return &alertService{
		cfg:         cfg,
		planRepo:    planRepo,
		quoteRepo:   quoteRepo,
		redisClient: redisClient,
		notifier:    notifier,
		logger:      log,
	}
}

type alertService struct {
	cfg         *config.Config
	planRepo    repository.PlanRepository
	quoteRepo   repository.QuoteRepository
	redisClient *redis.Client
	notifier    telegram.Notifier
	logger      *logger.Logger
}

// CheckPriceAlerts runs one evaluation pass over every alertable plan.
// Quotes are fetched once per symbol and shared across plans.
func (s *alertService) CheckPriceAlerts(ctx context.Context) error {
	plans, err := s.planRepo.FindAlertable(ctx)
	if err != nil {
		s.logger.Error("Failed to load alertable plans", logger.ErrorField(err))
		return err
	}
	if len(plans) == 0 {
		return nil
	}

	quotes := make(map[string]*dto.Quote)
	for i := range plans {
		plan := &plans[i]

		quote, ok := quotes[plan.Symbol]
		if !ok {
			quote, err = s.quoteRepo.GetQuote(ctx, plan.Symbol)
			if err != nil {
				s.logger.Warn("Skipping plan, quote unavailable",
					logger.ErrorField(err),
					logger.StringField("symbol", plan.Symbol),
				)
				continue
			}
			quotes[plan.Symbol] = quote
		}

		if err := s.evaluatePlan(ctx, plan, quote); err != nil {
			s.logger.Error("Failed to evaluate plan",
				logger.ErrorField(err),
				logger.IntField("plan_id", int(plan.ID)),
			)
		}
	}
	return nil
}

func (s *alertService) evaluatePlan(ctx context.Context, plan *entity.WatchlistPlan, quote *dto.Quote) error {
	if kind, level, hit := crossedLevel(plan, quote.Price); hit {
		return s.fire(ctx, plan, quote, kind, level)
	}
	return nil
}

// crossedLevel decides whether the current price has crossed the plan's
// entry trigger or stop level. Stops take precedence: a breached stop is
// more urgent than a hit trigger.
func crossedLevel(plan *entity.WatchlistPlan, price float64) (telegram.AlertKind, float64, bool) {
	long := plan.Direction == entity.TradeDirectionLong

	if plan.StopLoss != nil {
		stop := *plan.StopLoss
		if (long && price <= stop) || (!long && price >= stop) {
			return telegram.StopBreached, stop, true
		}
	}

	if plan.TriggerPrice != nil {
		trigger := *plan.TriggerPrice
		if (long && price >= trigger) || (!long && price <= trigger) {
			return telegram.TriggerHit, trigger, true
		}
	}

	return "", 0, false
}

func (s *alertService) fire(ctx context.Context, plan *entity.WatchlistPlan, quote *dto.Quote, kind telegram.AlertKind, level float64) error {
	key := fmt.Sprintf(common.RedisKeyPlanAlert, plan.ID, kind)
	acquired, err := s.redisClient.SetNX(ctx, key, time.Now().Unix(), s.cfg.Alerter.AlertCooldown).Result()
	if err != nil {
		return fmt.Errorf("failed to acquire alert cooldown: %w", err)
	}
	if !acquired {
		return nil
	}

	now := time.Now()
	msg := telegram.FormatPlanAlert(telegram.PlanAlert{
		Symbol:     plan.Symbol,
		Direction:  string(plan.Direction),
		Kind:       kind,
		Price:      quote.Price,
		Level:      level,
		Conviction: plan.Conviction,
		SetupType:  plan.SetupType,
		Thesis:     plan.Thesis,
		At:         now,
	})
	if err := s.notifier.SendMessage(msg); err != nil {
		// Release the cooldown so the next pass can retry the send.
		if delErr := s.redisClient.Del(ctx, key).Err(); delErr != nil {
			s.logger.Warn("Failed to release alert cooldown", logger.ErrorField(delErr), logger.StringField("key", key))
		}
		return fmt.Errorf("failed to send alert: %w", err)
	}

	s.logger.Info("Plan alert fired",
		logger.StringField("symbol", plan.Symbol),
		logger.StringField("kind", string(kind)),
		logger.Float64Field("price", quote.Price),
		logger.Float64Field("level", level),
	)

	if err := s.planRepo.MarkAlerted(ctx, plan.ID, now); err != nil {
		s.logger.Warn("Failed to mark plan alerted", logger.ErrorField(err), logger.IntField("plan_id", int(plan.ID)))
	}
	return nil
}
