package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"content_scraper/internal/codec"
	"content_scraper/internal/config"
	"content_scraper/internal/domain"
	"content_scraper/internal/scheduler"
	"content_scraper/internal/service"
	"content_scraper/internal/storage"
	"content_scraper/internal/storage/postgres"
)

var force bool

func init() {
	scrapeCmd.Flags().BoolVar(&force, "force", false, "Re-scrape even if the target was scraped before")
	runCmd.Flags().BoolVar(&force, "force", false, "Re-scrape targets that were scraped before")
}

// signalContext is canceled on SIGINT or SIGTERM.
func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

var scrapeCmd = &cobra.Command{
	Use:   "scrape <target-id>",
	Short: "Scrape one target",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()

		a := appFrom(cmd)
		defer a.close()

		svc, err := a.openPipeline(ctx)
		if err != nil {
			return err
		}

		result, err := svc.Scrape(ctx, args[0], force)
		if err != nil {
			return err
		}

		if err := printJSON(result); err != nil {
			return err
		}
		if !result.OK() {
			return errRunFailed
		}
		return nil
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Scrape every enabled target once",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()

		a := appFrom(cmd)
		defer a.close()

		runner, err := newBatchRunner(ctx, a)
		if err != nil {
			return err
		}
		defer runner.Release()

		results := runner.RunAll(ctx, force)
		if err := printJSON(results); err != nil {
			return err
		}
		for _, r := range results {
			if r.Status == domain.StatusError {
				return errRunFailed
			}
		}
		return nil
	},
}

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Scrape every enabled target on scraper.interval until interrupted",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := signalContext()
		defer cancel()

		a := appFrom(cmd)
		defer a.close()

		runner, err := newBatchRunner(ctx, a)
		if err != nil {
			return err
		}
		defer runner.Release()

		sched := scheduler.NewScheduler(runner, a.cfg.Scraper.Interval, a.cfg.Scraper.RunTimeout, a.logger)
		if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		a.logger.Info("shutdown complete")
		return nil
	},
}

func newBatchRunner(ctx context.Context, a *app) (*service.BatchRunner, error) {
	svc, err := a.openPipeline(ctx)
	if err != nil {
		return nil, err
	}
	return service.NewBatchRunner(svc, a.targets, a.cfg.Scraper.Concurrency, a.logger)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List configured targets and available adapters",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a := appFrom(cmd)
		defer a.close()

		if err := a.openTargets(); err != nil {
			return err
		}
		if err := a.openStore(ctx); err != nil {
			return err
		}
		if err := a.openAdapters(); err != nil {
			return err
		}

		title := a.targets.RegionName
		if title == "" {
			title = "Configured"
		}
		fmt.Printf("\n%s Targets (%d total):\n\n", title, len(a.targets.Targets))

		for _, t := range a.targets.Targets {
			enabled := "-"
			if t.IsEnabled() {
				enabled = "+"
			}
			scraped, err := a.sources.Exists(ctx, t.Name)
			if err != nil {
				return fmt.Errorf("check source %q: %w", t.Name, err)
			}
			mark := ""
			if scraped {
				mark = " (scraped)"
			}
			fmt.Printf("  %s %-25s [%s] %s%s\n", enabled, t.ID, t.AdapterID(), t.Name, mark)
		}

		fmt.Printf("\nAvailable adapters: %s\n", strings.Join(a.registry.Known(), ", "))
		return nil
	},
}

var showCmd = &cobra.Command{
	Use:   "show <target-id> <number>",
	Short: "Print a stored item with its full text",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a := appFrom(cmd)
		defer a.close()

		if err := a.openTargets(); err != nil {
			return err
		}
		target, err := a.targets.Target(args[0])
		if err != nil {
			return err
		}
		if err := a.openStore(ctx); err != nil {
			return err
		}

		sourceID, found, err := a.sources.GetID(ctx, target.Name)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("target %q has not been scraped", target.ID)
		}

		item, err := a.items.Get(ctx, sourceID, args[1])
		if errors.Is(err, storage.ErrNotFound) {
			return fmt.Errorf("item %q of target %q: %w", args[1], target.ID, err)
		}
		if err != nil {
			return err
		}

		text, err := codec.Decode(item.FullText)
		if err != nil {
			return fmt.Errorf("decode item text: %w", err)
		}

		fmt.Printf("%s  %s\n", item.Number, item.Title)
		fmt.Printf("Category: %s\n", item.Category)
		fmt.Printf("Tags:     %s\n", strings.Join(item.Tags, ", "))
		fmt.Printf("URL:      %s\n", item.SourceURL)
		fmt.Printf("Scraped:  %s\n\n", item.ScrapedAt.Format("2006-01-02 15:04:05"))
		fmt.Println(text)
		return nil
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply the database schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a := appFrom(cmd)
		defer a.close()

		// SQLite databases are migrated whenever they are opened.
		if err := a.openStore(ctx); err != nil {
			return err
		}
		if a.cfg.Storage.Driver == config.DriverPostgres {
			if err := postgres.Migrate(ctx, a.db, a.logger); err != nil {
				return err
			}
		}
		a.logger.Info("schema is up to date", "driver", a.cfg.Storage.Driver)
		return nil
	},
}
