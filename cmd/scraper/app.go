package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/spf13/cobra"

	"content_scraper/internal/adapter"
	"content_scraper/internal/adapter/builtin"
	"content_scraper/internal/classify"
	"content_scraper/internal/config"
	"content_scraper/internal/domain"
	"content_scraper/internal/fetch"
	"content_scraper/internal/publisher"
	"content_scraper/internal/service"
	"content_scraper/internal/storage/postgres"
	"content_scraper/internal/storage/sqlite"
)

type sourceStore interface {
	service.SourceStore
	Exists(ctx context.Context, name string) (bool, error)
	List(ctx context.Context) ([]domain.Source, error)
}

type itemStore interface {
	service.ItemStore
	Get(ctx context.Context, sourceID, number string) (*domain.Item, error)
}

// app holds everything a command needs. cfg and logger are set before the command runs; the
// remaining fields are filled by the open* helpers as commands require them. close releases
// whatever was opened.
type app struct {
	cfg      *config.Config
	logger   *slog.Logger
	closeLog func()

	db       *sqlx.DB
	sources  sourceStore
	items    itemStore
	targets  *config.Targets
	fetcher  fetch.Fetcher
	registry *adapter.Registry
	pub      *publisher.RabbitMQ
}

func (a *app) close() {
	if a.pub != nil {
		_ = a.pub.Close()
	}
	if a.fetcher != nil {
		_ = a.fetcher.Close()
	}
	if a.db != nil {
		_ = a.db.Close()
	}
	if a.closeLog != nil {
		a.closeLog()
	}
}

type appKey struct{}

// appFrom returns the app prepared by the root command's PersistentPreRunE.
func appFrom(cmd *cobra.Command) *app {
	return cmd.Context().Value(appKey{}).(*app)
}

func (a *app) openTargets() error {
	targets, err := config.LoadTargets(a.cfg.Scraper.TargetsPath)
	if err != nil {
		return err
	}
	a.targets = targets
	return nil
}

func (a *app) openStore(ctx context.Context) error {
	switch a.cfg.Storage.Driver {
	case config.DriverSQLite:
		db, err := sqlite.Open(a.cfg.Storage.SQLitePath)
		if err != nil {
			return err
		}
		a.db = db
		if err := sqlite.Migrate(ctx, db, a.logger); err != nil {
			return fmt.Errorf("migrate sqlite: %w", err)
		}
		a.sources = sqlite.NewSourceStore(db)
		a.items = sqlite.NewItemStore(db)
		a.logger.Debug("opened sqlite store", "path", a.cfg.Storage.SQLitePath)

	default:
		db, err := sqlx.ConnectContext(ctx, "postgres", a.cfg.Database.DSN())
		if err != nil {
			return fmt.Errorf("connect to database: %w", err)
		}
		a.db = db
		a.sources = postgres.NewSourceStore(db)
		a.items = postgres.NewItemStore(db)
		a.logger.Debug("connected to database")
	}
	return nil
}

func (a *app) openAdapters() error {
	switch a.cfg.Scraper.Renderer {
	case config.RendererBrowser:
		browser, err := fetch.NewBrowser(a.cfg.Scraper.Timeout, a.cfg.Scraper.UserAgent, a.logger)
		if err != nil {
			return err
		}
		a.fetcher = browser
	default:
		a.fetcher = fetch.NewHTTP(fetch.HTTPConfig{
			Timeout:        a.cfg.Scraper.Timeout,
			UserAgent:      a.cfg.Scraper.UserAgent,
			MaxAttempts:    a.cfg.Scraper.Retry.MaxAttempts,
			InitialBackoff: a.cfg.Scraper.Retry.InitialBackoff,
			MaxBackoff:     a.cfg.Scraper.Retry.MaxBackoff,
			MaxBodySize:    a.cfg.Scraper.MaxBodyBytes,
		}, a.logger)
	}

	a.registry = builtin.Registry(builtin.Options{
		Fetcher:       a.fetcher,
		Logger:        a.logger,
		MinTextLength: a.cfg.Scraper.MinTextLength,
		Pacing:        a.cfg.Scraper.Pacing,
	})
	return nil
}

func (a *app) openPublisher() error {
	if !a.cfg.RabbitMQ.Enabled {
		return nil
	}

	pub, err := publisher.NewRabbitMQ(publisher.Config{
		URL:        a.cfg.RabbitMQ.URL,
		Exchange:   a.cfg.RabbitMQ.Exchange,
		RoutingKey: a.cfg.RabbitMQ.RoutingKey,
		QueueName:  a.cfg.RabbitMQ.QueueName,
	}, a.logger)
	if err != nil {
		return err
	}
	a.pub = pub
	return nil
}

// openPipeline opens every dependency of the scrape pipeline and returns the service.
func (a *app) openPipeline(ctx context.Context) (*service.ScrapeService, error) {
	if err := a.openTargets(); err != nil {
		return nil, err
	}
	if err := a.openStore(ctx); err != nil {
		return nil, err
	}
	if err := a.openAdapters(); err != nil {
		return nil, err
	}
	if err := a.openPublisher(); err != nil {
		return nil, err
	}

	var pub service.Publisher
	if a.pub != nil {
		pub = a.pub
	}

	return service.NewScrapeService(
		a.targets,
		a.registry,
		a.sources,
		a.items,
		classify.New(a.cfg.Categories, a.cfg.DefaultCategory),
		pub,
		a.logger,
	), nil
}
