package service

import (
	"context"
	"encoding/json"
	"math"
	"time"

	"golang-crypto-sentiment/internal/entity"
	"golang-crypto-sentiment/internal/sentiment/repository"
	"golang-crypto-sentiment/pkg/common"
	"golang-crypto-sentiment/pkg/logger"
	"golang-crypto-sentiment/pkg/redis"
	"golang-crypto-sentiment/pkg/utils"
)

// confidenceThreshold separates confident classifications from undefined ones:
// a vector counts as confident when its maximum component exceeds this value.
const confidenceThreshold = 0.7

// AggregationService reads the recent news window per coin, classifies each
// item and publishes a fresh snapshot of per-coin aggregates.
type AggregationService struct {
	newsRepo    repository.NewsRepository
	classifier  repository.SentimentClassifierRepository
	store       *ResultsStore
	redisClient *redis.Client
	coins       []string
	window      time.Duration
	logger      *logger.Logger
}

// NewAggregationService creates a new AggregationService. redisClient may be
// nil when snapshot mirroring is disabled.
func NewAggregationService(
	newsRepo repository.NewsRepository,
	classifier repository.SentimentClassifierRepository,
	store *ResultsStore,
	redisClient *redis.Client,
	coins []string,
	window time.Duration,
	log *logger.Logger,
) *AggregationService {
	return &AggregationService{
		newsRepo:    newsRepo,
		classifier:  classifier,
		store:       store,
		redisClient: redisClient,
		coins:       coins,
		window:      window,
		logger:      log,
	}
}

// Name returns the job name used by the scheduler.
func (s *AggregationService) Name() string {
	return "sentiment-aggregation"
}

// Run executes one aggregation cycle. All per-coin aggregates are computed
// into a private buffer before the store is touched; the publish itself is a
// single atomic swap. A classifier failure excludes only that item.
func (s *AggregationService) Run(ctx context.Context) {
	since := time.Now().UTC().Add(-s.window)
	snapshot := make(entity.Snapshot)

	for _, coin := range s.coins {
		if !utils.ShouldContinue(ctx) {
			s.logger.Info("Aggregation interrupted by shutdown, discarding partial cycle")
			return
		}

		items, err := s.newsRepo.FindRecentByCoin(ctx, since, coin)
		if err != nil {
			s.logger.Error("Failed to query news for coin",
				logger.ErrorField(err),
				logger.StringField("coin", coin),
			)
			continue
		}
		if len(items) == 0 {
			s.logger.Debug("No news in window for coin", logger.StringField("coin", coin))
			continue
		}

		agg, ok := s.aggregateCoin(ctx, coin, items)
		if ok {
			snapshot[coin] = agg
		}
	}

	s.store.Publish(snapshot)
	s.mirrorSnapshot(ctx, snapshot)

	s.logger.Info("Aggregation cycle finished",
		logger.IntField("coins", len(snapshot)),
		logger.Field("version", s.store.Version()),
	)
}

func (s *AggregationService) aggregateCoin(ctx context.Context, coin string, items []entity.News) (entity.CoinAggregate, bool) {
	var all, strong []entity.SentimentVector
	var counts entity.SentimentCounts

	for _, item := range items {
		vector, err := s.classifier.Classify(ctx, item.Title)
		if err != nil {
			s.logger.Error("Failed to classify news item, excluding from cycle",
				logger.ErrorField(err),
				logger.StringField("coin", coin),
				logger.StringField("title", item.Title),
			)
			continue
		}

		all = append(all, vector)
		if vector.Max() > confidenceThreshold {
			strong = append(strong, vector)
			switch vector.Label() {
			case common.SentimentNegative:
				counts.Negative++
			case common.SentimentNeutral:
				counts.Neutral++
			case common.SentimentPositive:
				counts.Positive++
			}
		} else {
			counts.Undefined++
		}

		s.logger.Debug("Classified news item",
			logger.StringField("coin", coin),
			logger.StringField("title", item.Title),
			logger.Field("sentiment", vector),
		)
	}

	if len(all) == 0 {
		return entity.CoinAggregate{}, false
	}

	agg := entity.CoinAggregate{
		AverageAll: meanVector(all),
		CountStats: counts,
	}
	if len(strong) > 0 {
		strongMean := meanVector(strong)
		agg.AverageStrong = &strongMean
	}
	return agg, true
}

// mirrorSnapshot writes the published snapshot to Redis for external
// consumers. A mirror failure is logged but never fails the cycle.
func (s *AggregationService) mirrorSnapshot(ctx context.Context, snapshot entity.Snapshot) {
	if s.redisClient == nil {
		return
	}

	payload, err := json.Marshal(snapshot)
	if err != nil {
		s.logger.Error("Failed to marshal snapshot for mirroring", logger.ErrorField(err))
		return
	}

	if err := s.redisClient.Set(ctx, common.RedisKeySentimentSnapshot, payload, 0).Err(); err != nil {
		s.logger.Error("Failed to mirror snapshot to redis", logger.ErrorField(err))
	}
}

// meanVector returns the component-wise mean, rounded to 3 decimal places for
// presentation stability.
func meanVector(vectors []entity.SentimentVector) entity.SentimentVector {
	var sum entity.SentimentVector
	for _, v := range vectors {
		sum.Negative += v.Negative
		sum.Neutral += v.Neutral
		sum.Positive += v.Positive
	}

	n := float64(len(vectors))
	return entity.SentimentVector{
		Negative: round3(sum.Negative / n),
		Neutral:  round3(sum.Neutral / n),
		Positive: round3(sum.Positive / n),
	}
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
