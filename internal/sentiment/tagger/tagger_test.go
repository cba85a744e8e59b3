package tagger

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagMatchesKeywords(t *testing.T) {
	coinTagger := New()

	coins := coinTagger.Tag("BTC soars past $70k", nil)
	assert.Equal(t, []string{"Bitcoin"}, coins)

	coins = coinTagger.Tag("btc rally continues", nil)
	assert.Equal(t, []string{"Bitcoin"}, coins)
}

func TestTagMultipleCoinsSorted(t *testing.T) {
	coinTagger := New()

	coins := coinTagger.Tag("Ethereum outpaces Bitcoin as ETH/USD climbs", nil)
	assert.Equal(t, []string{"Bitcoin", "Ethereum"}, coins)
}

func TestTagHintTagsAreKeptVerbatim(t *testing.T) {
	coinTagger := New()

	coins := coinTagger.Tag("markets are quiet today", []string{"Cardano", " "})
	assert.Equal(t, []string{"Cardano"}, coins)

	// Hints merge with keyword matches.
	coins = coinTagger.Tag("solana validators vote", []string{"Cardano"})
	assert.Equal(t, []string{"Cardano", "Solana"}, coins)
}

func TestTagIsTotal(t *testing.T) {
	coinTagger := New()

	coins := coinTagger.Tag("central bank raises rates", nil)
	assert.Equal(t, []string{"Unknown"}, coins)

	coins = coinTagger.Tag("", nil)
	assert.Equal(t, []string{"Unknown"}, coins)
}

func TestCoinsSorted(t *testing.T) {
	coinTagger := New()

	coins := coinTagger.Coins()
	assert.Equal(t, []string{"Bitcoin", "Dogecoin", "Ethereum", "Ripple", "Solana", "Tether"}, coins)
}
