package common

const (
	// RedisKeySentimentSnapshot is where the latest published snapshot is mirrored
	// for external consumers.
	RedisKeySentimentSnapshot = "sentiment.results.snapshot"

	// CoinUnknown is the sentinel tag for news that matched no known coin.
	CoinUnknown = "Unknown"
)

const (
	SentimentNegative  = "negative"
	SentimentNeutral   = "neutral"
	SentimentPositive  = "positive"
	SentimentUndefined = "undefined"
)
