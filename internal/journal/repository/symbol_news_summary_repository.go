package repository

import (
	"context"

	"golang-trade-journal/internal/entity"

	"gorm.io/gorm"
)

// SymbolNewsSummaryRepository reads the per-symbol news digests produced by
// the alert service. The journal API never writes them.
type SymbolNewsSummaryRepository interface {
	FindLatestBySymbols(ctx context.Context, symbols []string) ([]entity.SymbolNewsSummary, error)
}

// NewSymbolNewsSummaryRepository creates a new GORM-based news summary repository.
func NewSymbolNewsSummaryRepository(db *gorm.DB) SymbolNewsSummaryRepository {
	return &symbolNewsSummaryRepository{db: db}
}

type symbolNewsSummaryRepository struct {
	db *gorm.DB
}

// FindLatestBySymbols returns the most recent summary per requested symbol.
func (r *symbolNewsSummaryRepository) FindLatestBySymbols(ctx context.Context, symbols []string) ([]entity.SymbolNewsSummary, error) {
	if len(symbols) == 0 {
		return nil, nil
	}
	var summaries []entity.SymbolNewsSummary
	err := r.db.WithContext(ctx).
		Where("symbol IN ?", symbols).
		Where(`id IN (
			SELECT DISTINCT ON (symbol) id
			FROM symbol_news_summaries
			ORDER BY symbol, created_at DESC
		)`).
		Find(&summaries).Error
	if err != nil {
		return nil, err
	}
	return summaries, nil
}
