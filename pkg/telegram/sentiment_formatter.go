package telegram

import (
	"fmt"
	"strings"

	"golang-crypto-sentiment/internal/entity"
)

// FormatSentimentDigest formats a results snapshot into a Markdown message for
// Telegram. Only the given coins are included, in the given order.
func FormatSentimentDigest(snapshot entity.Snapshot, coins []string) string {
	var b strings.Builder
	b.WriteString("📊 *Crypto Sentiment Digest*\n\n")

	for _, coin := range coins {
		agg, ok := snapshot[coin]
		if !ok {
			continue
		}

		b.WriteString(fmt.Sprintf("*- - - - - %s - - - - -*\n", coin))
		b.WriteString(fmt.Sprintf("%s *All news:* neg %.3f / neu %.3f / pos %.3f\n",
			sentimentIcon(agg.AverageAll), agg.AverageAll.Negative, agg.AverageAll.Neutral, agg.AverageAll.Positive))

		if agg.AverageStrong != nil {
			b.WriteString(fmt.Sprintf("%s *Confident only:* neg %.3f / neu %.3f / pos %.3f\n",
				sentimentIcon(*agg.AverageStrong), agg.AverageStrong.Negative, agg.AverageStrong.Neutral, agg.AverageStrong.Positive))
		}

		c := agg.CountStats
		b.WriteString(fmt.Sprintf("🧮 *Counts:* %d positive, %d neutral, %d negative, %d undefined\n\n",
			c.Positive, c.Neutral, c.Negative, c.Undefined))
	}

	return b.String()
}

func sentimentIcon(v entity.SentimentVector) string {
	switch v.Label() {
	case "positive":
		return "😊"
	case "negative":
		return "😟"
	default:
		return "😐"
	}
}
