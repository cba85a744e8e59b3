package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"strings"
	"time"

	"golang-crypto-sentiment/internal/entity"
	"golang-crypto-sentiment/internal/sentiment/config"
	"golang-crypto-sentiment/pkg/logger"

	"golang.org/x/time/rate"
	"google.golang.org/genai"
)

const classifyPromptTemplate = `You are a sentiment classifier for cryptocurrency news headlines.
Classify the sentiment of the following headline and respond with ONLY a JSON object
of the form {"negative": <float>, "neutral": <float>, "positive": <float>} where the
three probabilities sum to 1.

Headline: %s`

// geminiClassifierRepository classifies text via the Google Gemini API.
type geminiClassifierRepository struct {
	cfg            config.Gemini
	logger         *logger.Logger
	genAiClient    *genai.Client
	requestLimiter *rate.Limiter
}

// NewGeminiClassifierRepository creates a SentimentClassifierRepository backed
// by the Gemini API, rate limited to the configured requests per minute.
func NewGeminiClassifierRepository(cfg config.Gemini, log *logger.Logger, genAiClient *genai.Client) SentimentClassifierRepository {
	secondsPerRequest := time.Minute / time.Duration(cfg.MaxRequestPerMinute)
	return &geminiClassifierRepository{
		cfg:            cfg,
		logger:         log,
		genAiClient:    genAiClient,
		requestLimiter: rate.NewLimiter(rate.Every(secondsPerRequest), 1),
	}
}

// Classify asks Gemini for a 3-class probability vector for the given text.
func (r *geminiClassifierRepository) Classify(ctx context.Context, text string) (entity.SentimentVector, error) {
	if err := r.requestLimiter.Wait(ctx); err != nil {
		return entity.SentimentVector{}, fmt.Errorf("failed to wait for request limit: %w", err)
	}

	prompt := fmt.Sprintf(classifyPromptTemplate, text)
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, "user"),
	}

	resp, err := r.genAiClient.Models.GenerateContent(ctx, r.cfg.Model, contents, nil)
	if err != nil {
		return entity.SentimentVector{}, fmt.Errorf("gemini request failed: %w", err)
	}

	jsonString := strings.Trim(resp.Text(), "`json\n`")

	var vector entity.SentimentVector
	if err := json.Unmarshal([]byte(jsonString), &vector); err != nil {
		return entity.SentimentVector{}, fmt.Errorf("failed to unmarshal sentiment vector from Gemini response: %w", err)
	}

	return normalizeVector(vector)
}

// normalizeVector validates the model output and rescales it so the components
// sum to exactly 1.
func normalizeVector(v entity.SentimentVector) (entity.SentimentVector, error) {
	if v.Negative < 0 || v.Neutral < 0 || v.Positive < 0 {
		return entity.SentimentVector{}, fmt.Errorf("invalid sentiment vector: negative probability")
	}
	sum := v.Negative + v.Neutral + v.Positive
	if sum <= 0 || math.Abs(sum-1) > 0.1 {
		return entity.SentimentVector{}, fmt.Errorf("invalid sentiment vector: components sum to %.3f", sum)
	}
	v.Negative /= sum
	v.Neutral /= sum
	v.Positive /= sum
	return v, nil
}
