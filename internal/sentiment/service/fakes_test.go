package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"golang-crypto-sentiment/internal/entity"
	"golang-crypto-sentiment/internal/sentiment/dto"
)

// fakeNewsRepo is an in-memory NewsRepository that enforces the unique-url
// invariant the same way the database does.
type fakeNewsRepo struct {
	mu      sync.Mutex
	byURL   map[string]entity.News
	order   []string
	byCoin  map[string][]entity.News
	errCoin string
}

func newFakeNewsRepo() *fakeNewsRepo {
	return &fakeNewsRepo{
		byURL:  make(map[string]entity.News),
		byCoin: make(map[string][]entity.News),
	}
}

func (f *fakeNewsRepo) CreateIgnoreConflict(_ context.Context, news *entity.News) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, exists := f.byURL[news.URL]; exists {
		return false, nil
	}
	f.byURL[news.URL] = *news
	f.order = append(f.order, news.URL)
	return true, nil
}

func (f *fakeNewsRepo) FindRecentByCoin(_ context.Context, _ time.Time, coin string) ([]entity.News, error) {
	if coin == f.errCoin && f.errCoin != "" {
		return nil, errors.New("query failed")
	}
	return f.byCoin[coin], nil
}

func (f *fakeNewsRepo) Count(_ context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return int64(len(f.byURL)), nil
}

// fakeClassifier returns canned vectors per title and fails for titles listed
// in errTitles.
type fakeClassifier struct {
	vectors   map[string]entity.SentimentVector
	errTitles map[string]bool
}

func (f *fakeClassifier) Classify(_ context.Context, text string) (entity.SentimentVector, error) {
	if f.errTitles[text] {
		return entity.SentimentVector{}, errors.New("classification failed")
	}
	vector, ok := f.vectors[text]
	if !ok {
		return entity.SentimentVector{}, errors.New("unknown text")
	}
	return vector, nil
}

// fakeFeed returns a fixed batch of raw items or a fixed error.
type fakeFeed struct {
	name  string
	items []dto.RawNewsItem
	err   error
}

func (f *fakeFeed) Name() string { return f.name }

func (f *fakeFeed) FetchNews(_ context.Context) ([]dto.RawNewsItem, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.items, nil
}
