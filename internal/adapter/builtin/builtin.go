// Package builtin holds the explicit mapping from source identifier to adapter constructor.
// New adapters are added here; there is no discovery.
package builtin

import (
	"log/slog"
	"time"

	"content_scraper/internal/adapter"
	"content_scraper/internal/adapter/article"
	"content_scraper/internal/adapter/example"
	"content_scraper/internal/adapter/feed"
	"content_scraper/internal/fetch"
)

type Options struct {
	Fetcher       fetch.Fetcher
	Logger        *slog.Logger
	MinTextLength int
	Pacing        time.Duration
}

func Registry(opts Options) *adapter.Registry {
	return adapter.NewRegistry(map[string]adapter.Constructor{
		example.ID: func() adapter.Adapter {
			return example.New(opts.Fetcher, opts.MinTextLength, opts.Logger)
		},
		feed.ID: func() adapter.Adapter {
			return feed.New(opts.Fetcher, opts.Pacing, opts.MinTextLength, opts.Logger)
		},
		article.ID: func() adapter.Adapter {
			return article.New(opts.Fetcher, opts.MinTextLength, opts.Logger)
		},
	})
}
