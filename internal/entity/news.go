package entity

import (
	"time"

	"github.com/lib/pq"
)

// News represents a single ingested news item. URL is the idempotency key:
// re-ingesting an already-seen URL is a no-op.
type News struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title string `gorm:"not null" json:"title"`
	URL   string `gorm:"unique;not null" json:"url"`

	// PublishedAt is the UTC-normalized publication time. It is nil when the
	// source timestamp could not be parsed; PublishedAtRaw always keeps the
	// original string from the source.
	PublishedAt    *time.Time `json:"published_at,omitempty"`
	PublishedAtRaw string     `json:"published_at_raw"`

	// Currency is the set of coin symbols the item was tagged with.
	Currency pq.StringArray `gorm:"column:currency;type:text[]" json:"currency"`

	Summary string `json:"summary"`
	Content string `json:"content"`
	Source  string `json:"source"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// TableName specifies the table name for the News model.
func (News) TableName() string {
	return "news"
}
