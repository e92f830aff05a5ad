package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"content_scraper/internal/adapter"
	"content_scraper/internal/domain"
)

type SourceStore interface {
	GetID(ctx context.Context, name string) (string, bool, error)
	Upsert(ctx context.Context, source *domain.Source) (string, error)
}

type ItemStore interface {
	Upsert(ctx context.Context, item *domain.Item) error
	CountBySource(ctx context.Context, sourceID string) (int, error)
}

type TargetResolver interface {
	Target(id string) (*domain.Target, error)
}

type TargetLister interface {
	Enabled() []domain.Target
}

type AdapterResolver interface {
	Resolve(id string) (adapter.Adapter, error)
}

type Scraper interface {
	Scrape(ctx context.Context, targetID string, force bool) (*domain.RunResult, error)
}

type Publisher interface {
	Publish(ctx context.Context, source *domain.Source, item *domain.Item) error
	Close() error
}
