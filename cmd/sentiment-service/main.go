package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang-crypto-sentiment/internal/sentiment/config"
	delivery "golang-crypto-sentiment/internal/sentiment/delivery/http"
	"golang-crypto-sentiment/internal/sentiment/repository"
	"golang-crypto-sentiment/internal/sentiment/service"
	"golang-crypto-sentiment/internal/sentiment/tagger"
	"golang-crypto-sentiment/pkg/logger"
	"golang-crypto-sentiment/pkg/postgres"
	"golang-crypto-sentiment/pkg/redis"
	"golang-crypto-sentiment/pkg/telegram"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"google.golang.org/genai"
)

var configPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Starts the sentiment service",
	Run:   runServe,
}

func runServe(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	appLogger, err := logger.New(cfg.Logger.Level, cfg.Logger.Encoding)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = appLogger.Sync() }()

	appLogger.Info("Starting Sentiment Service", logger.StringField("name", cfg.App.Name))

	// Initialize database
	postgresCfg := postgres.Config{
		Host:            cfg.Database.Host,
		Port:            cfg.Database.Port,
		User:            cfg.Database.User,
		Password:        cfg.Database.Password,
		DBName:          cfg.Database.DBName,
		SSLMode:         cfg.Database.SSLMode,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
	}
	db, err := postgres.NewDB(postgresCfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize database", logger.ErrorField(err))
	}
	if sqlDB, err := db.DB.DB(); err == nil {
		defer sqlDB.Close()
	}

	// Initialize Redis (optional snapshot mirror)
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisCfg := redis.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
			PoolSize: cfg.Redis.PoolSize,
		}
		redisClient, err = redis.NewClient(redisCfg)
		if err != nil {
			appLogger.Fatal("Failed to initialize Redis", logger.ErrorField(err))
		}
		defer redisClient.Close()
	} else {
		appLogger.Info("Redis not configured, snapshot mirroring disabled")
	}

	// Initialize repositories
	newsRepo := repository.NewNewsRepository(db.DB)

	feeds := []repository.NewsFeedRepository{
		repository.NewCryptoPanicRepository(cfg.Ingestion.CryptoPanic, appLogger),
	}
	if len(cfg.Ingestion.RSS.FeedURLs) > 0 {
		feeds = append(feeds, repository.NewRSSRepository(cfg.Ingestion.RSS.FeedURLs, appLogger))
	}

	var contentRepo repository.ArticleContentRepository
	if cfg.Ingestion.Scraper.Enabled {
		contentRepo = repository.NewArticleContentRepository(cfg.Ingestion.Scraper.Timeout, appLogger)
	}

	// Initialize classifier provider
	var classifier repository.SentimentClassifierRepository
	switch cfg.AI.Provider {
	case "gemini":
		genAiClient, err := genai.NewClient(context.Background(), &genai.ClientConfig{
			APIKey: cfg.Gemini.APIKey,
		})
		if err != nil {
			appLogger.Fatal("Failed to initialize Gemini client", logger.ErrorField(err))
		}
		classifier = repository.NewGeminiClassifierRepository(cfg.Gemini, appLogger, genAiClient)
	case "onnx":
		classifier, err = repository.NewONNXClassifierRepository(cfg.ONNX, appLogger)
		if err != nil {
			appLogger.Fatal("Failed to initialize ONNX classifier", logger.ErrorField(err))
		}
	default:
		appLogger.Fatal("Invalid AI provider specified in config", logger.StringField("provider", cfg.AI.Provider))
	}
	classifier = repository.NewCachedClassifierRepository(classifier, cfg.Aggregation.CacheTTL)

	// Initialize services
	coinTagger := tagger.New()
	coins := cfg.Aggregation.Coins
	if len(coins) == 0 {
		coins = coinTagger.Coins()
	}

	store := service.NewResultsStore()
	ingestionSvc := service.NewIngestionService(feeds, newsRepo, contentRepo, coinTagger, appLogger)
	aggregationSvc := service.NewAggregationService(newsRepo, classifier, store, redisClient, coins, cfg.Aggregation.Window, appLogger)

	var notifier telegram.Notifier
	if cfg.Telegram.BotToken != "" {
		notifier, err = telegram.NewClient(cfg.Telegram.BotToken, cfg.Telegram.ChatID)
		if err != nil {
			appLogger.Fatal("Failed to initialize Telegram notifier", logger.ErrorField(err))
		}
	}

	// Start scheduler
	schedulerSvc := service.NewSchedulerService(appLogger)
	schedulerSvc.Register(ingestionSvc, cfg.Ingestion.Interval)
	schedulerSvc.Register(aggregationSvc, cfg.Aggregation.Interval)
	if cfg.Reporter.Enabled {
		reporterSvc := service.NewReporterService(store, notifier, cfg.Reporter.Coins, appLogger)
		schedulerSvc.Register(reporterSvc, cfg.Reporter.Interval)
	}
	if err := schedulerSvc.Start(ctx); err != nil {
		appLogger.Fatal("Failed to start scheduler", logger.ErrorField(err))
	}

	// Initialize Echo server
	e := echo.New()
	e.HideBanner = true

	sentimentHandler := delivery.NewSentimentHandler(store, appLogger)
	apiV1 := e.Group("/api/v1")
	sentimentGroup := apiV1.Group("/sentiment")
	sentimentHandler.RegisterRoutes(sentimentGroup)

	// Start server
	go func() {
		addr := fmt.Sprintf(":%d", cfg.API.Port)
		appLogger.Info("HTTP server starting", logger.Field("address", addr))
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			appLogger.Error("HTTP server failed to start", logger.ErrorField(err))
			stop() // trigger shutdown
		}
	}()

	// Wait for shutdown signal
	<-ctx.Done()

	appLogger.Info("Shutting down sentiment service...")

	// Let in-flight cycles finish before the process exits
	schedulerSvc.Stop()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		appLogger.Fatal("Server forced to shutdown", logger.ErrorField(err))
	}

	appLogger.Info("Sentiment service stopped")
}

func main() {
	rootCmd := &cobra.Command{Use: "sentiment-service"}

	serveCmd.Flags().StringVarP(&configPath, "config", "c", "configs/config.yaml", "Path to the configuration file")

	rootCmd.AddCommand(serveCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error executing sentiment-service CLI: %s\n", err)
		os.Exit(1)
	}
}
