package repository

import (
	"context"
	"time"

	"golang-crypto-sentiment/internal/entity"

	"github.com/patrickmn/go-cache"
)

// cachedClassifierRepository memoizes classifier results by text, so titles
// that reappear across aggregation cycles are not re-classified.
type cachedClassifierRepository struct {
	inner         SentimentClassifierRepository
	inmemoryCache *cache.Cache
}

// NewCachedClassifierRepository wraps a classifier with an in-memory TTL cache.
func NewCachedClassifierRepository(inner SentimentClassifierRepository, ttl time.Duration) SentimentClassifierRepository {
	return &cachedClassifierRepository{
		inner:         inner,
		inmemoryCache: cache.New(ttl, 2*ttl),
	}
}

// Classify returns the cached vector for text when present, otherwise
// delegates to the wrapped classifier. Failures are never cached.
func (r *cachedClassifierRepository) Classify(ctx context.Context, text string) (entity.SentimentVector, error) {
	if cached, found := r.inmemoryCache.Get(text); found {
		return cached.(entity.SentimentVector), nil
	}

	vector, err := r.inner.Classify(ctx, text)
	if err != nil {
		return entity.SentimentVector{}, err
	}

	r.inmemoryCache.Set(text, vector, cache.DefaultExpiration)
	return vector, nil
}
