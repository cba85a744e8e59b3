package repository

import (
	"context"

	"golang-crypto-sentiment/internal/entity"
	"golang-crypto-sentiment/internal/sentiment/dto"
)

// NewsFeedRepository fetches raw news items from an external news source.
type NewsFeedRepository interface {
	Name() string
	FetchNews(ctx context.Context) ([]dto.RawNewsItem, error)
}

// SentimentClassifierRepository produces a 3-class sentiment probability
// vector for a piece of text.
type SentimentClassifierRepository interface {
	Classify(ctx context.Context, text string) (entity.SentimentVector, error)
}

// ArticleContentRepository extracts the readable body of an article page.
type ArticleContentRepository interface {
	FetchContent(ctx context.Context, url string) (string, error)
}
