package repository

import (
	"context"
	"time"

	"golang-crypto-sentiment/internal/entity"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// NewsRepository defines the interface for interacting with stored news.
type NewsRepository interface {
	CreateIgnoreConflict(ctx context.Context, news *entity.News) (bool, error)
	FindRecentByCoin(ctx context.Context, since time.Time, coin string) ([]entity.News, error)
	Count(ctx context.Context) (int64, error)
}

// NewNewsRepository creates a new instance of NewsRepository.
func NewNewsRepository(db *gorm.DB) NewsRepository {
	return &newsRepository{db: db}
}

type newsRepository struct {
	db *gorm.DB
}

// CreateIgnoreConflict inserts the news item unless its URL is already stored.
// It reports whether a row was actually inserted; a duplicate URL is not an error.
func (r *newsRepository) CreateIgnoreConflict(ctx context.Context, news *entity.News) (bool, error) {
	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "url"}},
		DoNothing: true,
	}).Create(news)

	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

// FindRecentByCoin returns items published within [since, now] that are tagged
// with the given coin, newest first. Items without a parseable publication
// time never match the window.
func (r *newsRepository) FindRecentByCoin(ctx context.Context, since time.Time, coin string) ([]entity.News, error) {
	var news []entity.News
	err := r.db.WithContext(ctx).
		Where("published_at >= ?", since).
		Where("? = ANY(currency)", coin).
		Order("published_at DESC").
		Find(&news).Error
	if err != nil {
		return nil, err
	}
	return news, nil
}

// Count returns the total number of stored news items.
func (r *newsRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entity.News{}).Count(&count).Error
	return count, err
}
