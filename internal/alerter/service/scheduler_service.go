package service

import (
	"context"

	"golang-trade-journal/internal/alerter/config"
	"golang-trade-journal/pkg/logger"

	"github.com/robfig/cron/v3"
)

// SchedulerService runs the alerter's periodic jobs on cron schedules.
type SchedulerService interface {
	Start(ctx context.Context) error
	Stop()
}

// NewSchedulerService creates a scheduler over the alert and news services.
func NewSchedulerService(cfg *config.Config, alertSvc AlertService, newsSvc NewsService, log *logger.Logger) SchedulerService {
	return &schedulerService{
		cfg:      cfg,
		alertSvc: alertSvc,
		newsSvc:  newsSvc,
		cron:     cron.New(),
		logger:   log,
	}
}

type schedulerService struct {
	cfg      *config.Config
	alertSvc AlertService
	newsSvc  NewsService
	cron     *cron.Cron
	logger   *logger.Logger
}

// Start registers the jobs and starts the cron loop. Job runs are bound to
// ctx so an in-flight pass stops with the service.
func (s *schedulerService) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.cfg.Alerter.PriceCheckSchedule, func() {
		if err := s.alertSvc.CheckPriceAlerts(ctx); err != nil {
			s.logger.Error("Price alert pass failed", logger.ErrorField(err))
		}
	})
	if err != nil {
		return err
	}

	_, err = s.cron.AddFunc(s.cfg.Alerter.NewsSchedule, func() {
		if err := s.newsSvc.RefreshNews(ctx); err != nil {
			s.logger.Error("News refresh pass failed", logger.ErrorField(err))
		}
	})
	if err != nil {
		return err
	}

	s.logger.Info("Scheduler starting",
		logger.StringField("price_check_schedule", s.cfg.Alerter.PriceCheckSchedule),
		logger.StringField("news_schedule", s.cfg.Alerter.NewsSchedule),
	)
	s.cron.Start()
	return nil
}

// Stop halts the cron loop and waits for running jobs to finish.
func (s *schedulerService) Stop() {
	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	s.logger.Info("Scheduler stopped")
}
