package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang-crypto-sentiment/internal/sentiment/config"
	"golang-crypto-sentiment/internal/sentiment/dto"
	"golang-crypto-sentiment/pkg/logger"
)

// cryptoPanicRepository fetches news from the CryptoPanic posts API.
type cryptoPanicRepository struct {
	cfg    config.CryptoPanic
	client *http.Client
	logger *logger.Logger
}

// NewCryptoPanicRepository creates a NewsFeedRepository backed by CryptoPanic.
func NewCryptoPanicRepository(cfg config.CryptoPanic, log *logger.Logger) NewsFeedRepository {
	return &cryptoPanicRepository{
		cfg: cfg,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger: log,
	}
}

// Name returns the feed identifier used in logs and stored items.
func (r *cryptoPanicRepository) Name() string {
	return "cryptopanic"
}

// FetchNews pulls the latest batch of posts from CryptoPanic. The coin tags
// supplied by the API are passed through as hint tags.
func (r *cryptoPanicRepository) FetchNews(ctx context.Context) ([]dto.RawNewsItem, error) {
	params := url.Values{}
	params.Set("auth_token", r.cfg.APIKey)
	params.Set("public", strconv.FormatBool(r.cfg.Public))
	params.Set("limit", strconv.Itoa(r.cfg.Limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.cfg.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch news from CryptoPanic: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("received non-OK response from CryptoPanic: %d", resp.StatusCode)
	}

	var cpResp dto.CryptoPanicResponse
	if err := json.NewDecoder(resp.Body).Decode(&cpResp); err != nil {
		return nil, fmt.Errorf("failed to decode CryptoPanic response: %w", err)
	}

	items := make([]dto.RawNewsItem, 0, len(cpResp.Results))
	for _, post := range cpResp.Results {
		if post.URL == "" {
			continue
		}
		var hints []string
		for _, currency := range post.Currencies {
			if currency.Title != "" {
				hints = append(hints, currency.Title)
			}
		}
		items = append(items, dto.RawNewsItem{
			Title:       post.Title,
			URL:         post.URL,
			PublishedAt: post.PublishedAt,
			Summary:     post.Summary,
			Source:      r.Name(),
			HintTags:    hints,
		})
	}

	r.logger.Info("Fetched news from CryptoPanic", logger.IntField("count", len(items)))
	return items, nil
}
