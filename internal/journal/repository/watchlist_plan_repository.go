package repository

import (
	"context"

	"golang-trade-journal/internal/entity"

	"gorm.io/gorm"
)

// WatchlistPlanRepository defines the interface for watchlist plan data operations.
type WatchlistPlanRepository interface {
	Create(ctx context.Context, plan *entity.WatchlistPlan) error
	FindByID(ctx context.Context, userID string, id uint) (*entity.WatchlistPlan, error)
	FindAll(ctx context.Context, userID string) ([]entity.WatchlistPlan, error)
	Update(ctx context.Context, plan *entity.WatchlistPlan) error
	Delete(ctx context.Context, userID string, id uint) error
}

// NewWatchlistPlanRepository creates a new GORM-based watchlist plan repository.
func NewWatchlistPlanRepository(db *gorm.DB) WatchlistPlanRepository {
	return &watchlistPlanRepository{db: db}
}

type watchlistPlanRepository struct {
	db *gorm.DB
}

func (r *watchlistPlanRepository) Create(ctx context.Context, plan *entity.WatchlistPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *watchlistPlanRepository) FindByID(ctx context.Context, userID string, id uint) (*entity.WatchlistPlan, error) {
	var plan entity.WatchlistPlan
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&plan, id).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}

func (r *watchlistPlanRepository) FindAll(ctx context.Context, userID string) ([]entity.WatchlistPlan, error) {
	var plans []entity.WatchlistPlan
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&plans).Error
	if err != nil {
		return nil, err
	}
	return plans, nil
}

func (r *watchlistPlanRepository) Update(ctx context.Context, plan *entity.WatchlistPlan) error {
	return r.db.WithContext(ctx).Save(plan).Error
}

func (r *watchlistPlanRepository) Delete(ctx context.Context, userID string, id uint) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&entity.WatchlistPlan{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
