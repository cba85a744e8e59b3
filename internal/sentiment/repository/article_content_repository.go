package repository

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang-crypto-sentiment/pkg/logger"

	"github.com/PuerkitoBio/goquery"
	"github.com/mauidude/go-readability"
)

// articleContentRepository downloads an article page and extracts its
// readable text for the content column.
type articleContentRepository struct {
	client *http.Client
	logger *logger.Logger
}

// NewArticleContentRepository creates an ArticleContentRepository.
func NewArticleContentRepository(timeout time.Duration, log *logger.Logger) ArticleContentRepository {
	return &articleContentRepository{
		client: &http.Client{Timeout: timeout},
		logger: log,
	}
}

// FetchContent retrieves the article at url and returns its main text with
// markup stripped.
func (r *articleContentRepository) FetchContent(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch article: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("received non-OK response fetching article: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read article body: %w", err)
	}

	doc, err := readability.NewDocument(string(body))
	if err != nil {
		return "", fmt.Errorf("failed to parse article content: %w", err)
	}

	docHTML, err := goquery.NewDocumentFromReader(bytes.NewReader([]byte(doc.Content())))
	if err != nil {
		return "", fmt.Errorf("failed to parse extracted content: %w", err)
	}

	content := strings.Join(strings.Fields(docHTML.Text()), " ")
	return content, nil
}
