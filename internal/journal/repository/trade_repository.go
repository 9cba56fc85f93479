package repository

import (
	"context"

	"golang-trade-journal/internal/entity"

	"gorm.io/gorm"
)

// TradeRepository defines the interface for trade data operations. All
// lookups are scoped to the owning user; the store enforces ownership, not
// the analytics core.
type TradeRepository interface {
	Create(ctx context.Context, trade *entity.Trade) error
	FindByID(ctx context.Context, userID string, id uint) (*entity.Trade, error)
	FindAll(ctx context.Context, userID string) ([]entity.Trade, error)
	Update(ctx context.Context, trade *entity.Trade) error
	Delete(ctx context.Context, userID string, id uint) error
}

// NewTradeRepository creates a new GORM-based trade repository.
func NewTradeRepository(db *gorm.DB) TradeRepository {
	return &tradeRepository{db: db}
}

type tradeRepository struct {
	db *gorm.DB
}

// Create persists a new trade.
func (r *tradeRepository) Create(ctx context.Context, trade *entity.Trade) error {
	return r.db.WithContext(ctx).Create(trade).Error
}

// FindByID retrieves one of the user's trades by ID.
func (r *tradeRepository) FindByID(ctx context.Context, userID string, id uint) (*entity.Trade, error) {
	var trade entity.Trade
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&trade, id).Error; err != nil {
		return nil, err
	}
	return &trade, nil
}

// FindAll retrieves the user's full trade history, oldest entry first.
func (r *tradeRepository) FindAll(ctx context.Context, userID string) ([]entity.Trade, error) {
	var trades []entity.Trade
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("entry_date ASC").
		Find(&trades).Error
	if err != nil {
		return nil, err
	}
	return trades, nil
}

// Update saves an edited trade.
func (r *tradeRepository) Update(ctx context.Context, trade *entity.Trade) error {
	return r.db.WithContext(ctx).Save(trade).Error
}

// Delete removes one of the user's trades.
func (r *tradeRepository) Delete(ctx context.Context, userID string, id uint) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&entity.Trade{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
