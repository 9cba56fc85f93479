package entity

import "time"

// SymbolNews is one ingested news article tied to a watched symbol.
type SymbolNews struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	Symbol         string     `gorm:"type:varchar(20);not null;index" json:"symbol"`
	Title          string     `gorm:"not null" json:"title"`
	Link           string     `gorm:"not null" json:"link"`
	Source         string     `json:"source"`
	PublishedAt    *time.Time `json:"published_at,omitempty"`
	RawContent     string     `gorm:"type:text" json:"raw_content"`
	HashIdentifier string     `gorm:"unique;not null" json:"hash_identifier"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
}

// TableName specifies the table name for the SymbolNews model.
func (SymbolNews) TableName() string {
	return "symbol_news"
}
