package repository

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rssFixture = `<?xml version="1.0"?>
<rss version="2.0"><channel><title>Crypto Feed</title>
<item>
	<title>eth upgrade ships</title>
	<link>https://news.example/eth</link>
	<description>Ethereum upgrade is live</description>
	<pubDate>Fri, 13 Jun 2025 10:00:00 +0000</pubDate>
	<category>Ethereum</category>
</item>
</channel></rss>`

func TestRSSFetchNews(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(rssFixture))
	}))
	defer server.Close()

	repo := NewRSSRepository([]string{server.URL}, testLogger(t))

	items, err := repo.FetchNews(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, "eth upgrade ships", items[0].Title)
	assert.Equal(t, "https://news.example/eth", items[0].URL)
	assert.Equal(t, "Fri, 13 Jun 2025 10:00:00 +0000", items[0].PublishedAt)
	assert.Equal(t, []string{"Ethereum"}, items[0].HintTags)
	assert.Equal(t, "rss", items[0].Source)
}

func TestRSSFetchNewsBrokenFeedIsSkipped(t *testing.T) {
	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer broken.Close()

	working := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(rssFixture))
	}))
	defer working.Close()

	repo := NewRSSRepository([]string{broken.URL, working.URL}, testLogger(t))

	items, err := repo.FetchNews(context.Background())
	require.NoError(t, err)
	assert.Len(t, items, 1)
}
