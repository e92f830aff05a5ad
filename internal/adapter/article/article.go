// Package article turns a single page into one item using readability extraction.
package article

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	readability "github.com/go-shiori/go-readability"

	"content_scraper/internal/adapter"
	"content_scraper/internal/domain"
	"content_scraper/internal/fetch"
)

const ID = "article"

type Adapter struct {
	fetcher       fetch.Fetcher
	minTextLength int
	logger        *slog.Logger
}

var _ adapter.Adapter = (*Adapter)(nil)

func New(fetcher fetch.Fetcher, minTextLength int, logger *slog.Logger) *Adapter {
	return &Adapter{
		fetcher:       fetcher,
		minTextLength: minTextLength,
		logger:        logger.With("adapter", ID),
	}
}

func (a *Adapter) ID() string   { return ID }
func (a *Adapter) Name() string { return "Single article" }

func (a *Adapter) ValidateURL(url string) bool {
	return adapter.IsHTTPURL(url)
}

// ExtractItems returns at most one item, numbered by the page path.
func (a *Adapter) ExtractItems(ctx context.Context, pageURL string, target *domain.Target) ([]domain.RawItem, error) {
	parsed, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}

	html, err := a.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, fmt.Errorf("fetch page: %w", err)
	}

	article, err := readability.FromReader(strings.NewReader(html), parsed)
	if err != nil {
		return nil, fmt.Errorf("extract article: %w", err)
	}

	text := strings.TrimSpace(article.TextContent)
	if !adapter.Substantial(text, a.minTextLength) {
		a.logger.Info("page has no substantial content", "url", pageURL, "length", len(text))
		return nil, nil
	}

	title := adapter.NormalizeSpace(article.Title)
	if title == "" && target != nil {
		title = target.Name
	}

	number := parsed.EscapedPath()
	if number == "" {
		number = "/"
	}

	return []domain.RawItem{{
		Number: number,
		Title:  title,
		Text:   text,
		URL:    pageURL,
	}}, nil
}
