package dto

// RawNewsItem is a news record as delivered by a feed, before tagging and
// time normalization.
type RawNewsItem struct {
	Title       string   `json:"title"`
	URL         string   `json:"url"`
	PublishedAt string   `json:"published_at"`
	Summary     string   `json:"summary"`
	Source      string   `json:"source"`
	HintTags    []string `json:"hint_tags,omitempty"`
}

// CryptoPanicCurrency is a coin tag attached to a CryptoPanic post.
type CryptoPanicCurrency struct {
	Code  string `json:"code"`
	Title string `json:"title"`
}

// CryptoPanicSource identifies the originating outlet of a CryptoPanic post.
type CryptoPanicSource struct {
	Title  string `json:"title"`
	Domain string `json:"domain"`
}

// CryptoPanicPost is a single post from the CryptoPanic API.
type CryptoPanicPost struct {
	Title       string                `json:"title"`
	URL         string                `json:"url"`
	PublishedAt string                `json:"published_at"`
	Summary     string                `json:"summary"`
	Currencies  []CryptoPanicCurrency `json:"currencies"`
	Source      CryptoPanicSource     `json:"source"`
}

// CryptoPanicResponse is the paginated response envelope of the CryptoPanic API.
type CryptoPanicResponse struct {
	Count   int               `json:"count"`
	Next    string            `json:"next"`
	Results []CryptoPanicPost `json:"results"`
}
