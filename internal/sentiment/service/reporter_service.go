package service

import (
	"context"
	"sort"

	"golang-crypto-sentiment/pkg/logger"
	"golang-crypto-sentiment/pkg/telegram"
)

// ReporterService periodically reads the results store and sends a sentiment
// digest to the configured Telegram chat. It is a plain consumer of the
// store: it never blocks or coordinates with the aggregation job.
type ReporterService struct {
	store    *ResultsStore
	notifier telegram.Notifier
	coins    []string
	logger   *logger.Logger
}

// NewReporterService creates a new ReporterService. notifier may be nil, in
// which case the digest is only logged.
func NewReporterService(store *ResultsStore, notifier telegram.Notifier, coins []string, log *logger.Logger) *ReporterService {
	return &ReporterService{
		store:    store,
		notifier: notifier,
		coins:    coins,
		logger:   log,
	}
}

// Name returns the job name used by the scheduler.
func (s *ReporterService) Name() string {
	return "sentiment-reporter"
}

// Run reads the latest snapshot and reports it.
func (s *ReporterService) Run(ctx context.Context) {
	snapshot := s.store.Read()
	if len(snapshot) == 0 {
		s.logger.Debug("No sentiment results published yet")
		return
	}

	coins := s.coins
	if len(coins) == 0 {
		for coin := range snapshot {
			coins = append(coins, coin)
		}
		sort.Strings(coins)
	}

	for _, coin := range coins {
		agg, ok := snapshot[coin]
		if !ok {
			continue
		}
		s.logger.Info("Sentiment report",
			logger.StringField("coin", coin),
			logger.Field("average_all", agg.AverageAll),
			logger.Field("count_stats", agg.CountStats),
		)
	}

	if s.notifier == nil {
		return
	}

	digest := telegram.FormatSentimentDigest(snapshot, coins)
	if err := s.notifier.SendMessage(digest); err != nil {
		s.logger.Error("Failed to send sentiment digest", logger.ErrorField(err))
	}
}
