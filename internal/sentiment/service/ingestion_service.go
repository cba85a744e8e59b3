package service

import (
	"context"
	"sort"
	"time"

	"golang-crypto-sentiment/internal/entity"
	"golang-crypto-sentiment/internal/sentiment/dto"
	"golang-crypto-sentiment/internal/sentiment/repository"
	"golang-crypto-sentiment/internal/sentiment/tagger"
	"golang-crypto-sentiment/pkg/logger"
	"golang-crypto-sentiment/pkg/utils"
)

// IngestionService fetches raw news from the configured feeds, tags each item
// with the coins it concerns and stores it idempotently.
type IngestionService struct {
	feeds       []repository.NewsFeedRepository
	newsRepo    repository.NewsRepository
	contentRepo repository.ArticleContentRepository
	tagger      *tagger.CoinTagger
	logger      *logger.Logger
}

// NewIngestionService creates a new IngestionService. contentRepo may be nil
// when article body enrichment is disabled.
func NewIngestionService(
	feeds []repository.NewsFeedRepository,
	newsRepo repository.NewsRepository,
	contentRepo repository.ArticleContentRepository,
	coinTagger *tagger.CoinTagger,
	log *logger.Logger,
) *IngestionService {
	return &IngestionService{
		feeds:       feeds,
		newsRepo:    newsRepo,
		contentRepo: contentRepo,
		tagger:      coinTagger,
		logger:      log,
	}
}

// Name returns the job name used by the scheduler.
func (s *IngestionService) Name() string {
	return "news-ingestion"
}

type ingestItem struct {
	raw         dto.RawNewsItem
	publishedAt *time.Time
}

// Run executes one ingestion cycle. A feed that fails contributes an empty
// batch; a duplicate URL is silently skipped.
func (s *IngestionService) Run(ctx context.Context) {
	var items []ingestItem

	for _, feed := range s.feeds {
		raw, err := feed.FetchNews(ctx)
		if err != nil {
			s.logger.Error("Failed to fetch news, skipping feed for this cycle",
				logger.ErrorField(err),
				logger.StringField("feed", feed.Name()),
			)
			continue
		}
		for _, item := range raw {
			items = append(items, s.normalize(item))
		}
	}

	// Oldest first, so stored order and logs read chronologically. Items
	// without a parseable time keep their relative feed order at the end.
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].publishedAt == nil || items[j].publishedAt == nil {
			return items[j].publishedAt == nil && items[i].publishedAt != nil
		}
		return items[i].publishedAt.Before(*items[j].publishedAt)
	})

	var saved int
	for _, item := range items {
		if !utils.ShouldContinue(ctx) {
			s.logger.Info("Ingestion interrupted by shutdown")
			return
		}
		if s.save(ctx, item) {
			saved++
		}
	}

	s.logger.Info("Ingestion cycle finished",
		logger.IntField("fetched", len(items)),
		logger.IntField("saved", saved),
	)
}

// normalize parses the source timestamp into UTC. A parse failure is logged
// and the item keeps only its original timestamp string.
func (s *IngestionService) normalize(raw dto.RawNewsItem) ingestItem {
	item := ingestItem{raw: raw}
	if raw.PublishedAt == "" {
		return item
	}

	publishedAt, err := utils.ParseTimeUTC(raw.PublishedAt)
	if err != nil {
		s.logger.Warn("Failed to parse published time, keeping raw value",
			logger.ErrorField(err),
			logger.StringField("published_at", raw.PublishedAt),
			logger.StringField("url", raw.URL),
		)
		return item
	}

	item.publishedAt = &publishedAt
	return item
}

func (s *IngestionService) save(ctx context.Context, item ingestItem) bool {
	coins := s.tagger.Tag(item.raw.Title+" "+item.raw.Summary, item.raw.HintTags)

	var content string
	if s.contentRepo != nil {
		var err error
		content, err = s.contentRepo.FetchContent(ctx, item.raw.URL)
		if err != nil {
			s.logger.Warn("Failed to fetch article content",
				logger.ErrorField(err),
				logger.StringField("url", item.raw.URL),
			)
		}
	}

	news := &entity.News{
		Title:          item.raw.Title,
		URL:            item.raw.URL,
		PublishedAt:    item.publishedAt,
		PublishedAtRaw: item.raw.PublishedAt,
		Currency:       coins,
		Summary:        item.raw.Summary,
		Content:        content,
		Source:         item.raw.Source,
	}

	inserted, err := s.newsRepo.CreateIgnoreConflict(ctx, news)
	if err != nil {
		s.logger.Error("Failed to save news",
			logger.ErrorField(err),
			logger.StringField("url", item.raw.URL),
		)
		return false
	}

	if inserted {
		s.logger.Info("Saved news",
			logger.Field("currency", coins),
			logger.StringField("title", item.raw.Title),
		)
	}
	return inserted
}
