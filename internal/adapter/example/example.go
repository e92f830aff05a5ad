// Package example is the template adapter for listing pages: one page, many item elements.
package example

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"content_scraper/internal/adapter"
	"content_scraper/internal/domain"
	"content_scraper/internal/fetch"
)

const (
	ID     = "example"
	Domain = "example.com"

	defaultItemSelector = ".item, article, .post"
	titleSelector       = "h1, h2, h3, .title"
	textSelector        = ".content, .body, p"
)

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
func (a *Adapter) Name() string { return "Example.com" }

func (a *Adapter) ValidateURL(url string) bool {
	return adapter.HostMatches(url, Domain)
}

// ExtractItems selects item elements on the page. The selector can be overridden per target
// with the item_selector metadata key.
func (a *Adapter) ExtractItems(ctx context.Context, url string, target *domain.Target) ([]domain.RawItem, error) {
	a.logger.Info("starting extraction", "url", url)

	html, err := a.fetcher.Fetch(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("fetch page: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	selector := defaultItemSelector
	if target != nil {
		if s := target.MetadataString("item_selector"); s != "" {
			selector = s
		}
	}

	elements := doc.Find(selector)
	a.logger.Debug("found candidate elements", "count", elements.Length(), "selector", selector)

	var items []domain.RawItem
	elements.Each(func(i int, el *goquery.Selection) {
		if ctx.Err() != nil {
			return
		}

		item, ok := a.extractItem(i, el, url)
		if !ok {
			return
		}
		items = append(items, item)
		a.logger.Debug("extracted item", "number", item.Number, "title", item.Title)
	})

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	a.logger.Info("extraction completed", "items", len(items))
	return items, nil
}

func (a *Adapter) extractItem(i int, el *goquery.Selection, pageURL string) (domain.RawItem, bool) {
	title := adapter.NormalizeSpace(el.Find(titleSelector).First().Text())
	if title == "" {
		title = fmt.Sprintf("Item %d", i+1)
	}

	text := strings.TrimSpace(el.Find(textSelector).First().Text())
	if !adapter.Substantial(text, a.minTextLength) {
		a.logger.Debug("skipping element with short text", "index", i, "length", len(text))
		return domain.RawItem{}, false
	}

	link := pageURL
	if href, ok := el.Find("a").First().Attr("href"); ok {
		link = adapter.ResolveURL(pageURL, href)
	}

	return domain.RawItem{
		Number: fmt.Sprintf("ITEM-%d", i+1),
		Title:  title,
		Text:   text,
		URL:    link,
	}, true
}
