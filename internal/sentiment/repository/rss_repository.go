package repository

import (
	"context"

	"golang-crypto-sentiment/internal/sentiment/dto"
	"golang-crypto-sentiment/pkg/logger"

	"github.com/mmcdole/gofeed"
)

// rssRepository fetches news from configured RSS feeds.
type rssRepository struct {
	feedURLs []string
	parser   *gofeed.Parser
	logger   *logger.Logger
}

// NewRSSRepository creates a NewsFeedRepository backed by one or more RSS feeds.
func NewRSSRepository(feedURLs []string, log *logger.Logger) NewsFeedRepository {
	return &rssRepository{
		feedURLs: feedURLs,
		parser:   gofeed.NewParser(),
		logger:   log,
	}
}

// Name returns the feed identifier used in logs and stored items.
func (r *rssRepository) Name() string {
	return "rss"
}

// FetchNews parses every configured feed. A feed that fails to parse is
// logged and skipped so the remaining feeds still contribute to the batch.
func (r *rssRepository) FetchNews(ctx context.Context) ([]dto.RawNewsItem, error) {
	var items []dto.RawNewsItem

	for _, feedURL := range r.feedURLs {
		feed, err := r.parser.ParseURLWithContext(feedURL, ctx)
		if err != nil {
			r.logger.Error("Failed to parse RSS feed",
				logger.ErrorField(err),
				logger.StringField("feed_url", feedURL),
			)
			continue
		}

		for _, item := range feed.Items {
			if item.Link == "" {
				continue
			}
			items = append(items, dto.RawNewsItem{
				Title:       item.Title,
				URL:         item.Link,
				PublishedAt: item.Published,
				Summary:     item.Description,
				Source:      r.Name(),
				HintTags:    item.Categories,
			})
		}
	}

	r.logger.Info("Fetched news from RSS feeds",
		logger.IntField("feeds", len(r.feedURLs)),
		logger.IntField("count", len(items)),
	)
	return items, nil
}
