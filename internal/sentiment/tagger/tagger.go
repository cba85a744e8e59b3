package tagger

import (
	"sort"
	"strings"

	"golang-crypto-sentiment/pkg/common"
)

// coinKeywords maps each canonical coin symbol to the aliases that identify it
// in free text. Matching is case-insensitive substring search.
var coinKeywords = map[string][]string{
	"Bitcoin":  {"bitcoin", "btc", "btc/usd", "btcusdt"},
	"Ethereum": {"ethereum", "eth", "eth/usd", "ethusdt"},
	"Solana":   {"solana", "sol", "sol/usdt"},
	"Ripple":   {"ripple", "xrp", "xrp/usd", "xrpusdt"},
	"Dogecoin": {"dogecoin", "doge", "doge/usd", "dogeusdt"},
	"Tether":   {"tether", "usdt", "usdt/usd", "usd/usdt"},
}

// CoinTagger maps free text plus optional source-supplied tag hints to the set
// of coins the text concerns.
type CoinTagger struct {
	keywords map[string][]string
}

// New creates a CoinTagger backed by the static keyword table.
func New() *CoinTagger {
	return &CoinTagger{keywords: coinKeywords}
}

// Coins returns the canonical coin symbols the tagger knows about, sorted.
func (t *CoinTagger) Coins() []string {
	coins := make([]string, 0, len(t.keywords))
	for coin := range t.keywords {
		coins = append(coins, coin)
	}
	sort.Strings(coins)
	return coins
}

// Tag returns the sorted set of coin symbols referenced by text or named in
// hintTags. It never returns an empty set: when nothing matches, the result is
// exactly {Unknown}.
func (t *CoinTagger) Tag(text string, hintTags []string) []string {
	found := make(map[string]struct{})

	for _, hint := range hintTags {
		hint = strings.TrimSpace(hint)
		if hint != "" {
			found[hint] = struct{}{}
		}
	}

	lowered := strings.ToLower(text)
	for coin, keywords := range t.keywords {
		for _, keyword := range keywords {
			if strings.Contains(lowered, keyword) {
				found[coin] = struct{}{}
				break
			}
		}
	}

	if len(found) == 0 {
		return []string{common.CoinUnknown}
	}

	coins := make([]string, 0, len(found))
	for coin := range found {
		coins = append(coins, coin)
	}
	sort.Strings(coins)
	return coins
}
