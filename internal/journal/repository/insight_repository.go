package repository

import (
	"context"

	"golang-trade-journal/internal/entity"

	"gorm.io/gorm"
)

// InsightRepository defines the interface for stored AI insight operations.
type InsightRepository interface {
	Create(ctx context.Context, insight *entity.TradeInsight) error
	FindAll(ctx context.Context, userID string, limit int) ([]entity.TradeInsight, error)
}

// NewInsightRepository creates a new GORM-based insight repository.
func NewInsightRepository(db *gorm.DB) InsightRepository {
	return &insightRepository{db: db}
}

type insightRepository struct {
	db *gorm.DB
}

func (r *insightRepository) Create(ctx context.Context, insight *entity.TradeInsight) error {
	return r.db.WithContext(ctx).Create(insight).Error
}

func (r *insightRepository) FindAll(ctx context.Context, userID string, limit int) ([]entity.TradeInsight, error) {
	var insights []entity.TradeInsight
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	if err := query.Find(&insights).Error; err != nil {
		return nil, err
	}
	return insights, nil
}
