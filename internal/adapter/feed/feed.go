// Package feed reads RSS and Atom feeds. Each entry becomes one item; with the full_text target
// metadata flag set, the linked article is fetched and its main content replaces the entry summary.
package feed

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	readability "github.com/go-shiori/go-readability"
	"github.com/mmcdole/gofeed"
	"golang.org/x/time/rate"

	"content_scraper/internal/adapter"
	"content_scraper/internal/domain"
	"content_scraper/internal/fetch"
)

const ID = "feed"

type Adapter struct {
	fetcher       fetch.Fetcher
	parser        *gofeed.Parser
	limiter       *rate.Limiter
	minTextLength int
	logger        *slog.Logger
}

var _ adapter.Adapter = (*Adapter)(nil)

// New creates a feed adapter. pacing is the minimum delay between successive article fetches;
// zero disables pacing.
func New(fetcher fetch.Fetcher, pacing time.Duration, minTextLength int, logger *slog.Logger) *Adapter {
	limit := rate.Inf
	if pacing > 0 {
		limit = rate.Every(pacing)
	}
	return &Adapter{
		fetcher:       fetcher,
		parser:        gofeed.NewParser(),
		limiter:       rate.NewLimiter(limit, 1),
		minTextLength: minTextLength,
		logger:        logger.With("adapter", ID),
	}
}

func (a *Adapter) ID() string   { return ID }
func (a *Adapter) Name() string { return "RSS/Atom feed" }

func (a *Adapter) ValidateURL(url string) bool {
	return adapter.IsHTTPURL(url)
}

func (a *Adapter) ExtractItems(ctx context.Context, feedURL string, target *domain.Target) ([]domain.RawItem, error) {
	body, err := a.fetcher.Fetch(ctx, feedURL)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}

	feed, err := a.parser.ParseString(body)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	fullText := target != nil && target.MetadataBool("full_text")
	a.logger.Info("parsed feed", "url", feedURL, "entries", len(feed.Items), "full_text", fullText)

	items := make([]domain.RawItem, 0, len(feed.Items))
	for i, entry := range feed.Items {
		item, ok := a.entryItem(feedURL, entry)
		if !ok {
			a.logger.Warn("skipping entry without identity", "index", i)
			continue
		}

		if fullText && item.URL != feedURL {
			text, err := a.articleText(ctx, item.URL)
			if err != nil {
				if ctx.Err() != nil {
					return nil, ctx.Err()
				}
				a.logger.Warn("full text unavailable, using entry summary",
					"number", item.Number,
					"url", item.URL,
					"error", err,
				)
			} else if adapter.Substantial(text, a.minTextLength) {
				item.Text = text
			}
		}

		if !adapter.Substantial(item.Text, a.minTextLength) {
			a.logger.Debug("skipping entry with short text", "number", item.Number)
			continue
		}
		items = append(items, item)
	}

	return items, nil
}

func (a *Adapter) entryItem(feedURL string, entry *gofeed.Item) (domain.RawItem, bool) {
	number := strings.TrimSpace(entry.GUID)
	if number == "" {
		number = strings.TrimSpace(entry.Link)
	}
	if number == "" {
		return domain.RawItem{}, false
	}

	link := feedURL
	if entry.Link != "" {
		link = adapter.ResolveURL(feedURL, entry.Link)
	}

	title := adapter.NormalizeSpace(entry.Title)
	if title == "" {
		title = link
	}

	content := entry.Content
	if content == "" {
		content = entry.Description
	}

	return domain.RawItem{
		Number: number,
		Title:  title,
		Text:   adapter.StripMarkup(content),
		URL:    link,
	}, true
}

func (a *Adapter) articleText(ctx context.Context, articleURL string) (string, error) {
	if err := a.limiter.Wait(ctx); err != nil {
		return "", err
	}

	html, err := a.fetcher.Fetch(ctx, articleURL)
	if err != nil {
		return "", err
	}

	parsed, _ := url.Parse(articleURL)
	article, err := readability.FromReader(strings.NewReader(html), parsed)
	if err != nil {
		return "", fmt.Errorf("extract article: %w", err)
	}

	return strings.TrimSpace(article.TextContent), nil
}
