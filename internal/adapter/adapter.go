// Package adapter defines the capability every extraction adapter provides and the registry
// that maps source identifiers to adapters.
package adapter

//go:generate mockgen -source=adapter.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"content_scraper/internal/domain"
)

// Adapter extracts raw items from one kind of external source.
type Adapter interface {
	// ID is the identifier targets use to select this adapter.
	ID() string
	// Name is a human-readable name for logs.
	Name() string
	// ValidateURL reports whether url belongs to this adapter's source. It must be cheap and
	// free of side effects.
	ValidateURL(url string) bool
	// ExtractItems returns the items found at url. Items that fail individually are skipped by
	// the adapter; a returned error aborts the whole target.
	ExtractItems(ctx context.Context, url string, target *domain.Target) ([]domain.RawItem, error)
}

var (
	ErrUnknownAdapter = errors.New("unknown adapter")
	ErrURLMismatch    = errors.New("URL validation failed")
)

// UnknownAdapterError lists the identifiers the registry does know.
type UnknownAdapterError struct {
	ID    string
	Known []string
}

func (e *UnknownAdapterError) Error() string {
	return fmt.Sprintf("unknown adapter %q (available: %s)", e.ID, strings.Join(e.Known, ", "))
}

func (e *UnknownAdapterError) Is(target error) bool {
	return target == ErrUnknownAdapter
}

// ExtractionError is a fatal extraction failure for a target.
type ExtractionError struct {
	Adapter string
	URL     string
	Err     error
}

func (e *ExtractionError) Error() string {
	return fmt.Sprintf("%s: extract %s: %v", e.Adapter, e.URL, e.Err)
}

func (e *ExtractionError) Unwrap() error {
	return e.Err
}
