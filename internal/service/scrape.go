package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"content_scraper/internal/adapter"
	"content_scraper/internal/classify"
	"content_scraper/internal/codec"
	"content_scraper/internal/domain"
)

const summaryLength = 200

var (
	errDuplicateNumber = errors.New("duplicate item number")
	errInvalidItem     = errors.New("invalid item")
)

// ScrapeService runs the scrape-categorize-persist pipeline for one target at a time.
type ScrapeService struct {
	targets    TargetResolver
	adapters   AdapterResolver
	sources    SourceStore
	items      ItemStore
	classifier *classify.Classifier
	publisher  Publisher
	logger     *slog.Logger
}

// NewScrapeService creates the pipeline. publisher may be nil.
func NewScrapeService(
	targets TargetResolver,
	adapters AdapterResolver,
	sources SourceStore,
	items ItemStore,
	classifier *classify.Classifier,
	publisher Publisher,
	logger *slog.Logger,
) *ScrapeService {
	return &ScrapeService{
		targets:    targets,
		adapters:   adapters,
		sources:    sources,
		items:      items,
		classifier: classifier,
		publisher:  publisher,
		logger:     logger,
	}
}

// Scrape runs the pipeline for targetID. Adapter and extraction problems are reported through
// the result with StatusError; a returned error means the target could not be resolved or the
// store failed outside the per-item loop.
func (s *ScrapeService) Scrape(ctx context.Context, targetID string, force bool) (*domain.RunResult, error) {
	startTime := time.Now()

	target, err := s.targets.Target(targetID)
	if err != nil {
		return nil, fmt.Errorf("resolve target: %w", err)
	}

	logger := s.logger.With("target", target.ID)
	logger.Info("starting scrape",
		"name", target.Name,
		"url", target.URL,
		"adapter", target.AdapterID(),
		"force", force,
	)

	result := &domain.RunResult{
		Target:  target.Name,
		Adapter: target.AdapterID(),
	}
	finish := func(status domain.RunStatus) *domain.RunResult {
		result.Status = status
		result.Duration = time.Since(startTime)
		return result
	}

	if !force {
		sourceID, found, err := s.sources.GetID(ctx, target.Name)
		if err != nil {
			return nil, fmt.Errorf("check existing source: %w", err)
		}
		if found {
			count, err := s.items.CountBySource(ctx, sourceID)
			if err != nil {
				return nil, fmt.Errorf("count items: %w", err)
			}
			result.Items = count
			logger.Info("target already scraped, use force to re-scrape", "items", count)
			return finish(domain.StatusSkipped), nil
		}
	}

	a, err := s.adapters.Resolve(target.AdapterID())
	if err != nil {
		logger.Error("adapter error", "error", err)
		result.Error = err.Error()
		return finish(domain.StatusError), nil
	}

	if !a.ValidateURL(target.URL) {
		logger.Error("url not compatible with adapter", "adapter_name", a.Name())
		result.Error = adapter.ErrURLMismatch.Error()
		return finish(domain.StatusError), nil
	}

	raw, err := a.ExtractItems(ctx, target.URL, target)
	if err != nil {
		extractErr := &adapter.ExtractionError{Adapter: a.ID(), URL: target.URL, Err: err}
		logger.Error("extraction failed", "error", extractErr)
		result.Error = extractErr.Error()
		return finish(domain.StatusError), nil
	}

	if len(raw) == 0 {
		logger.Warn("no items found")
		return finish(domain.StatusEmpty), nil
	}

	logger.Info("extracted items", "count", len(raw))

	source := &domain.Source{
		Name:      target.Name,
		Slug:      target.Slug,
		Category:  target.Category,
		Metadata:  target.Metadata,
		SourceURL: target.URL,
		Adapter:   a.ID(),
	}
	source.ID, err = s.sources.Upsert(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("upsert source: %w", err)
	}

	logger.Debug("source stored", "source_id", source.ID)

	seen := make(map[string]struct{}, len(raw))
	for i := range raw {
		if err := ctx.Err(); err != nil {
			finish(domain.StatusError)
			result.Error = err.Error()
			return result, fmt.Errorf("scrape interrupted: %w", err)
		}

		item, err := s.storeItem(ctx, source, a.ID(), &raw[i], seen)
		if err != nil {
			result.Errors++
			logger.Error("item failed", "number", raw[i].Number, "error", err)
			continue
		}
		result.Items++
		logger.Info("item stored", "number", item.Number, "title", truncate(item.Title, 40), "category", item.Category)

		if s.publisher != nil {
			if err := s.publisher.Publish(ctx, source, item); err != nil {
				logger.Warn("failed to publish item", "number", item.Number, "error", err)
			} else {
				result.Published++
			}
		}
	}

	finish(domain.StatusSuccess)

	logger.Info("scrape completed",
		"items", result.Items,
		"errors", result.Errors,
		"published", result.Published,
		"duration", result.Duration,
	)

	return result, nil
}

func (s *ScrapeService) storeItem(
	ctx context.Context,
	source *domain.Source,
	adapterID string,
	raw *domain.RawItem,
	seen map[string]struct{},
) (*domain.Item, error) {
	if raw.Number == "" {
		return nil, fmt.Errorf("%w: missing number", errInvalidItem)
	}
	if raw.Title == "" {
		return nil, fmt.Errorf("%w: missing title", errInvalidItem)
	}
	if _, dup := seen[raw.Number]; dup {
		return nil, fmt.Errorf("%w %q", errDuplicateNumber, raw.Number)
	}
	seen[raw.Number] = struct{}{}

	category, tags := s.classifier.Classify(raw.Title, raw.Text)

	fullText, err := codec.Encode(raw.Text)
	if err != nil {
		return nil, fmt.Errorf("encode text: %w", err)
	}

	item := &domain.Item{
		SourceID:  source.ID,
		Number:    raw.Number,
		Title:     raw.Title,
		Category:  category,
		Summary:   Summarize(raw.Text),
		Tags:      tags,
		FullText:  fullText,
		SourceURL: raw.URL,
		Metadata:  map[string]any{"adapter": adapterID},
	}

	if err := s.items.Upsert(ctx, item); err != nil {
		return nil, fmt.Errorf("upsert item: %w", err)
	}

	return item, nil
}

// Summarize returns the first 200 characters of text, with "..." appended when text is longer.
func Summarize(text string) string {
	if utf8.RuneCountInString(text) <= summaryLength {
		return text
	}
	return truncate(text, summaryLength) + "..."
}

func truncate(s string, n int) string {
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
