package repository

import (
	"context"
	"time"

	"golang-trade-journal/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NewsRepository stores scraped articles and their per-symbol summaries.
type NewsRepository interface {
	CreateIgnoreConflict(ctx context.Context, news *entity.SymbolNews) error
	FindExistingHashes(ctx context.Context, hashes []string) (map[string]bool, error)
	FindRecentBySymbol(ctx context.Context, symbol string, maxAgeDays, limit int) ([]entity.SymbolNews, error)
	CreateSummary(ctx context.Context, summary *entity.SymbolNewsSummary) error
}

// NewNewsRepository creates a new GORM-based news repository.
func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

type newsRepository struct {
	db *gorm.DB
}

// CreateIgnoreConflict inserts an article, silently skipping duplicates on
// the hash identifier.
func (r *newsRepository) CreateIgnoreConflict(ctx context.Context, news *entity.SymbolNews) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "hash_identifier"}},
			DoNothing: true,
		}).
		Create(news).Error
}

// FindExistingHashes reports which of the given hash identifiers are already
// stored, so feeds can be filtered before fetching article bodies.
func (r *newsRepository) FindExistingHashes(ctx context.Context, hashes []string) (map[string]bool, error) {
	if len(hashes) == 0 {
		return map[string]bool{}, nil
	}
	var existing []entity.SymbolNews
	err := r.db.WithContext(ctx).
		Select("id", "hash_identifier").
		Where("hash_identifier IN ?", hashes).
		Find(&existing).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]bool, len(existing))
	for _, news := range existing {
		out[news.HashIdentifier] = true
	}
	return out, nil
}

// FindRecentBySymbol returns the newest stored articles for a symbol within
// the age window.
func (r *newsRepository) FindRecentBySymbol(ctx context.Context, symbol string, maxAgeDays, limit int) ([]entity.SymbolNews, error) {
	cutoff := time.Now().AddDate(0, 0, -maxAgeDays)
	var news []entity.SymbolNews
	err := r.db.WithContext(ctx).
		Where("symbol = ?", symbol).
		Where("published_at >= ?", cutoff).
		Order("published_at DESC").
		Limit(limit).
		Find(&news).Error
	if err != nil {
		return nil, err
	}
	return news, nil
}

// CreateSummary stores a freshly generated per-symbol digest.
func (r *newsRepository) CreateSummary(ctx context.Context, summary *entity.SymbolNewsSummary) error {
	return r.db.WithContext(ctx).Create(summary).Error
}
