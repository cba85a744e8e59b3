package http

import (
	"net/http"

	"golang-crypto-sentiment/internal/sentiment/service"
	"golang-crypto-sentiment/pkg/logger"

	"github.com/labstack/echo/v4"
)

// SentimentHandler exposes the latest published aggregates over HTTP.
type SentimentHandler struct {
	store  *service.ResultsStore
	logger *logger.Logger
}

// NewSentimentHandler creates a new SentimentHandler.
func NewSentimentHandler(store *service.ResultsStore, logger *logger.Logger) *SentimentHandler {
	return &SentimentHandler{store: store, logger: logger}
}

// RegisterRoutes registers the sentiment routes to the Echo group.
func (h *SentimentHandler) RegisterRoutes(g *echo.Group) {
	g.GET("", h.GetSnapshot)
	g.GET("/:coin", h.GetCoin)
}

// GetSnapshot returns the full snapshot of the last aggregation cycle.
func (h *SentimentHandler) GetSnapshot(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"version": h.store.Version(),
		"results": h.store.Read(),
	})
}

// GetCoin returns the aggregate for a single coin. A coin absent from the
// last cycle yields 404: no items were aggregated for it.
func (h *SentimentHandler) GetCoin(c echo.Context) error {
	coin := c.Param("coin")

	agg, ok := h.store.Get(coin)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "no aggregates for coin"})
	}

	return c.JSON(http.StatusOK, agg)
}
