package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang-crypto-sentiment/internal/entity"
	"golang-crypto-sentiment/internal/sentiment/service"
	"golang-crypto-sentiment/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupHandler(t *testing.T) (*echo.Echo, *service.ResultsStore) {
	t.Helper()

	log, err := logger.New("error", "console")
	require.NoError(t, err)

	store := service.NewResultsStore()
	handler := NewSentimentHandler(store, log)

	e := echo.New()
	group := e.Group("/api/v1/sentiment")
	handler.RegisterRoutes(group)
	return e, store
}

func TestGetCoin(t *testing.T) {
	e, store := setupHandler(t)
	store.Publish(entity.Snapshot{
		"Bitcoin": {
			AverageAll: entity.SentimentVector{Negative: 0.075, Neutral: 0.225, Positive: 0.700},
			CountStats: entity.SentimentCounts{Positive: 1, Undefined: 1},
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sentiment/Bitcoin", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var agg entity.CoinAggregate
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &agg))
	assert.Equal(t, 0.700, agg.AverageAll.Positive)
	assert.Nil(t, agg.AverageStrong)
	assert.Equal(t, 2, agg.CountStats.Total())
}

func TestGetCoinNotFound(t *testing.T) {
	e, _ := setupHandler(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sentiment/Dogecoin", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetSnapshot(t *testing.T) {
	e, store := setupHandler(t)
	store.Publish(entity.Snapshot{
		"Bitcoin":  {AverageAll: entity.SentimentVector{Positive: 1}},
		"Ethereum": {AverageAll: entity.SentimentVector{Neutral: 1}},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sentiment", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Version uint64                  `json:"version"`
		Results map[string]entity.CoinAggregate `json:"results"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.EqualValues(t, 1, body.Version)
	assert.Len(t, body.Results, 2)
}
