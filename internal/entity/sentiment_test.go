package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSentimentVectorMaxAndLabel(t *testing.T) {
	v := SentimentVector{Negative: 0.05, Neutral: 0.15, Positive: 0.80}
	assert.Equal(t, 0.80, v.Max())
	assert.Equal(t, "positive", v.Label())

	v = SentimentVector{Negative: 0.6, Neutral: 0.3, Positive: 0.1}
	assert.Equal(t, "negative", v.Label())

	// Ties resolve to the first class in negative, neutral, positive order.
	v = SentimentVector{Negative: 0.4, Neutral: 0.4, Positive: 0.2}
	assert.Equal(t, "negative", v.Label())
}

func TestSentimentCountsTotal(t *testing.T) {
	c := SentimentCounts{Negative: 1, Neutral: 2, Positive: 3, Undefined: 4}
	assert.Equal(t, 10, c.Total())
}

func TestSnapshotCloneIsDeep(t *testing.T) {
	strong := SentimentVector{Negative: 0.05, Neutral: 0.15, Positive: 0.80}
	snapshot := Snapshot{
		"Bitcoin": CoinAggregate{
			AverageAll:    SentimentVector{Negative: 0.075, Neutral: 0.225, Positive: 0.700},
			AverageStrong: &strong,
			CountStats:    SentimentCounts{Positive: 1, Undefined: 1},
		},
	}

	clone := snapshot.Clone()
	clone["Bitcoin"].AverageStrong.Positive = 0

	assert.Equal(t, 0.80, snapshot["Bitcoin"].AverageStrong.Positive)
}
