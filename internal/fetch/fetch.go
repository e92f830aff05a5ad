// Package fetch retrieves page bodies for adapters. Implementations apply their own timeouts so
// a fetch never blocks indefinitely.
package fetch

import (
	"context"
	"fmt"
)

type Fetcher interface {
	// Fetch returns the body (or rendered HTML) at url.
	Fetch(ctx context.Context, url string) (string, error)
	Close() error
}

// StatusError is returned for non-2xx HTTP responses.
type StatusError struct {
	URL  string
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d for %s", e.Code, e.URL)
}

// Retryable reports whether a later attempt might succeed.
func (e *StatusError) Retryable() bool {
	return e.Code == 429 || e.Code >= 500
}
