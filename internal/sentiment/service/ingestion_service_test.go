package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang-crypto-sentiment/internal/sentiment/dto"
	"golang-crypto-sentiment/internal/sentiment/repository"
	"golang-crypto-sentiment/internal/sentiment/tagger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIngestionIsIdempotent(t *testing.T) {
	repo := newFakeNewsRepo()
	feed := &fakeFeed{name: "test", items: []dto.RawNewsItem{
		{Title: "BTC soars past $70k", URL: "https://news.example/1", PublishedAt: "2025-06-01T10:00:00Z"},
		{Title: "eth upgrade ships", URL: "https://news.example/2", PublishedAt: "2025-06-01T11:00:00Z"},
	}}

	svc := NewIngestionService([]repository.NewsFeedRepository{feed}, repo, nil, tagger.New(), testLogger(t))

	svc.Run(context.Background())
	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	// Re-running with an identical batch leaves the stored count unchanged.
	svc.Run(context.Background())
	count, err = repo.Count(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestIngestionNormalizesTimesToUTC(t *testing.T) {
	repo := newFakeNewsRepo()
	feed := &fakeFeed{name: "test", items: []dto.RawNewsItem{
		{Title: "btc rally continues", URL: "https://news.example/1", PublishedAt: "2025-06-01T15:00:00+05:00"},
	}}

	svc := NewIngestionService([]repository.NewsFeedRepository{feed}, repo, nil, tagger.New(), testLogger(t))
	svc.Run(context.Background())

	stored := repo.byURL["https://news.example/1"]
	require.NotNil(t, stored.PublishedAt)
	assert.Equal(t, time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC), stored.PublishedAt.UTC())
	assert.Equal(t, "2025-06-01T15:00:00+05:00", stored.PublishedAtRaw)
}

func TestIngestionKeepsRawTimestampOnParseFailure(t *testing.T) {
	repo := newFakeNewsRepo()
	feed := &fakeFeed{name: "test", items: []dto.RawNewsItem{
		{Title: "btc rally continues", URL: "https://news.example/1", PublishedAt: "next tuesday"},
	}}

	svc := NewIngestionService([]repository.NewsFeedRepository{feed}, repo, nil, tagger.New(), testLogger(t))
	svc.Run(context.Background())

	stored, ok := repo.byURL["https://news.example/1"]
	require.True(t, ok, "a parse failure must not drop the item")
	assert.Nil(t, stored.PublishedAt)
	assert.Equal(t, "next tuesday", stored.PublishedAtRaw)
}

func TestIngestionStoresOldestFirst(t *testing.T) {
	repo := newFakeNewsRepo()
	feed := &fakeFeed{name: "test", items: []dto.RawNewsItem{
		{Title: "newest", URL: "https://news.example/new", PublishedAt: "2025-06-01T12:00:00Z"},
		{Title: "oldest", URL: "https://news.example/old", PublishedAt: "2025-06-01T08:00:00Z"},
		{Title: "unparseable", URL: "https://news.example/raw", PublishedAt: "???"},
	}}

	svc := NewIngestionService([]repository.NewsFeedRepository{feed}, repo, nil, tagger.New(), testLogger(t))
	svc.Run(context.Background())

	assert.Equal(t, []string{
		"https://news.example/old",
		"https://news.example/new",
		"https://news.example/raw",
	}, repo.order)
}

func TestIngestionTagsItems(t *testing.T) {
	repo := newFakeNewsRepo()
	feed := &fakeFeed{name: "test", items: []dto.RawNewsItem{
		{Title: "BTC soars past $70k", URL: "https://news.example/1", PublishedAt: "2025-06-01T10:00:00Z", HintTags: []string{"Cardano"}},
		{Title: "weather is nice", URL: "https://news.example/2", PublishedAt: "2025-06-01T10:05:00Z"},
	}}

	svc := NewIngestionService([]repository.NewsFeedRepository{feed}, repo, nil, tagger.New(), testLogger(t))
	svc.Run(context.Background())

	assert.Equal(t, []string{"Bitcoin", "Cardano"}, []string(repo.byURL["https://news.example/1"].Currency))
	assert.Equal(t, []string{"Unknown"}, []string(repo.byURL["https://news.example/2"].Currency))
}

func TestIngestionFeedFailureYieldsEmptyBatch(t *testing.T) {
	repo := newFakeNewsRepo()
	failing := &fakeFeed{name: "failing", err: errors.New("connection refused")}
	working := &fakeFeed{name: "working", items: []dto.RawNewsItem{
		{Title: "eth upgrade ships", URL: "https://news.example/1", PublishedAt: "2025-06-01T10:00:00Z"},
	}}

	svc := NewIngestionService([]repository.NewsFeedRepository{failing, working}, repo, nil, tagger.New(), testLogger(t))
	svc.Run(context.Background())

	count, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, count, "the working feed must still contribute")
}
