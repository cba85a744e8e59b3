package config

import (
	"time"

	"golang-crypto-sentiment/pkg/config"
)

// CryptoPanic holds the configuration for the CryptoPanic news feed.
type CryptoPanic struct {
	BaseURL string `mapstructure:"base_url"`
	APIKey  string `mapstructure:"api_key"`
	Public  bool   `mapstructure:"public"`
	Limit   int    `mapstructure:"limit"`
}

// RSS holds the configuration for supplemental RSS news feeds.
type RSS struct {
	FeedURLs []string `mapstructure:"feed_urls"`
}

// Scraper holds the configuration for article content enrichment.
type Scraper struct {
	Enabled bool          `mapstructure:"enabled"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// Ingestion holds ingestion job configuration.
type Ingestion struct {
	Interval    time.Duration `mapstructure:"interval"`
	CryptoPanic CryptoPanic   `mapstructure:"cryptopanic"`
	RSS         RSS           `mapstructure:"rss"`
	Scraper     Scraper       `mapstructure:"scraper"`
}

// Aggregation holds aggregation job configuration.
type Aggregation struct {
	Interval time.Duration `mapstructure:"interval"`
	Window   time.Duration `mapstructure:"window"`
	// Coins overrides the tagger's coin list when non-empty.
	Coins    []string      `mapstructure:"coins"`
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// AI holds configuration for classifier providers.
type AI struct {
	Provider string `mapstructure:"provider"`
}

// Gemini holds the configuration for the Gemini classifier.
type Gemini struct {
	APIKey              string `mapstructure:"api_key"`
	Model               string `mapstructure:"model"`
	MaxRequestPerMinute int    `mapstructure:"max_request_per_minute"`
}

// ONNX holds the configuration for the local ONNX classifier.
type ONNX struct {
	ModelPath         string `mapstructure:"model_path"`
	VocabPath         string `mapstructure:"vocab_path"`
	MaxSequenceLength int    `mapstructure:"max_sequence_length"`
}

// Reporter holds the configuration for the periodic sentiment digest.
type Reporter struct {
	Enabled  bool          `mapstructure:"enabled"`
	Interval time.Duration `mapstructure:"interval"`
	Coins    []string      `mapstructure:"coins"`
}

// Telegram holds configuration for the Telegram notifier.
type Telegram struct {
	BotToken string `mapstructure:"bot_token"`
	ChatID   int64  `mapstructure:"chat_id"`
}

// Config holds the full configuration for the sentiment service.
type Config struct {
	App         config.App      `mapstructure:"app"`
	Logger      config.Logger   `mapstructure:"logger"`
	Database    config.Database `mapstructure:"database"`
	Redis       config.Redis    `mapstructure:"redis"`
	API         config.API      `mapstructure:"api"`
	Ingestion   Ingestion       `mapstructure:"ingestion"`
	Aggregation Aggregation     `mapstructure:"aggregation"`
	AI          AI              `mapstructure:"ai"`
	Gemini      Gemini          `mapstructure:"gemini"`
	ONNX        ONNX            `mapstructure:"onnx"`
	Reporter    Reporter        `mapstructure:"reporter"`
	Telegram    Telegram        `mapstructure:"telegram"`
}

// Load loads the sentiment service configuration from the given path.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := config.Load(path, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Ingestion.Interval == 0 {
		c.Ingestion.Interval = 30 * time.Minute
	}
	if c.Ingestion.CryptoPanic.BaseURL == "" {
		c.Ingestion.CryptoPanic.BaseURL = "https://cryptopanic.com/api/v1/posts/"
	}
	if c.Ingestion.CryptoPanic.Limit == 0 {
		c.Ingestion.CryptoPanic.Limit = 50
	}
	if c.Ingestion.Scraper.Timeout == 0 {
		c.Ingestion.Scraper.Timeout = 20 * time.Second
	}
	if c.Aggregation.Interval == 0 {
		c.Aggregation.Interval = 12 * time.Hour
	}
	if c.Aggregation.Window == 0 {
		c.Aggregation.Window = 12 * time.Hour
	}
	if c.Aggregation.CacheTTL == 0 {
		c.Aggregation.CacheTTL = 24 * time.Hour
	}
	if c.Reporter.Interval == 0 {
		c.Reporter.Interval = 4 * time.Minute
	}
	if c.Gemini.MaxRequestPerMinute == 0 {
		c.Gemini.MaxRequestPerMinute = 10
	}
	if c.ONNX.MaxSequenceLength == 0 {
		c.ONNX.MaxSequenceLength = 128
	}
}
