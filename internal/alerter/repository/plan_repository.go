package repository

import (
	"context"
	"time"

	"golang-trade-journal/internal/entity"

	"gorm.io/gorm"
)

// PlanRepository gives the alerter its view of watchlist plans: every
// active plan with alerting enabled, across all users.
type PlanRepository interface {
	FindAlertable(ctx context.Context) ([]entity.WatchlistPlan, error)
	MarkAlerted(ctx context.Context, planID uint, at time.Time) error
}

// NewPlanRepository creates a new GORM-based plan repository.
func NewPlanRepository(db *gorm.DB) PlanRepository {
	return &planRepository{db: db}
}

type planRepository struct {
	db *gorm.DB
}

// FindAlertable returns active plans with alerting enabled and a trigger set.
func (r *planRepository) FindAlertable(ctx context.Context) ([]entity.WatchlistPlan, error) {
	var plans []entity.WatchlistPlan
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND alert_active = ?", true, true).
		Where("trigger_price IS NOT NULL").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

// MarkAlerted records when a plan last fired.
func (r *planRepository) MarkAlerted(ctx context.Context, planID uint, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&entity.WatchlistPlan{}).
		Where("id = ?", planID).
		Update("last_alerted_at", at).Error
}
