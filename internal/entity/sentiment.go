package entity

import "golang-crypto-sentiment/pkg/common"

// SentimentVector is a 3-class probability distribution over
// {negative, neutral, positive}. Components sum to 1 up to floating-point error.
type SentimentVector struct {
	Negative float64 `json:"negative"`
	Neutral  float64 `json:"neutral"`
	Positive float64 `json:"positive"`
}

// Max returns the largest component of the vector.
func (v SentimentVector) Max() float64 {
	max := v.Negative
	if v.Neutral > max {
		max = v.Neutral
	}
	if v.Positive > max {
		max = v.Positive
	}
	return max
}

// Label returns the class name of the largest component. Ties resolve in
// negative, neutral, positive order.
func (v SentimentVector) Label() string {
	label := common.SentimentNegative
	max := v.Negative
	if v.Neutral > max {
		max = v.Neutral
		label = common.SentimentNeutral
	}
	if v.Positive > max {
		label = common.SentimentPositive
	}
	return label
}

// SentimentCounts tallies how many items fell into each class among confident
// classifications, plus the number of items below the confidence threshold.
type SentimentCounts struct {
	Negative  int `json:"negative"`
	Neutral   int `json:"neutral"`
	Positive  int `json:"positive"`
	Undefined int `json:"undefined"`
}

// Total returns the number of items the counts cover.
func (c SentimentCounts) Total() int {
	return c.Negative + c.Neutral + c.Positive + c.Undefined
}

// CoinAggregate is the per-coin result of one aggregation cycle.
// AverageStrong is nil when no item cleared the confidence threshold.
type CoinAggregate struct {
	AverageAll    SentimentVector  `json:"average_all"`
	AverageStrong *SentimentVector `json:"average_strong,omitempty"`
	CountStats    SentimentCounts  `json:"count_stats"`
}

// Snapshot maps coin symbols to their aggregates for one aggregation cycle.
// A missing coin key means no items were aggregated for it.
type Snapshot map[string]CoinAggregate

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	out := make(Snapshot, len(s))
	for coin, agg := range s {
		if agg.AverageStrong != nil {
			strong := *agg.AverageStrong
			agg.AverageStrong = &strong
		}
		out[coin] = agg
	}
	return out
}
