package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"content_scraper/internal/config"
)

var (
	verbose     bool
	configPath  string
	targetsPath string
)

// errRunFailed makes the process exit non-zero after the result has already been printed.
var errRunFailed = errors.New("run did not succeed")

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errRunFailed) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:           "scraper",
	Short:         "Scrape, categorize and store content from configured targets",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if targetsPath != "" {
			cfg.Scraper.TargetsPath = targetsPath
		}

		level := cfg.LogLevel
		if verbose {
			level = "debug"
		}
		logger, closeLog, err := newLogger(level, cfg.LogDir, logName(cmd, args), time.Now())
		if err != nil {
			return err
		}

		a := &app{cfg: cfg, logger: logger, closeLog: closeLog}
		cmd.SetContext(context.WithValue(cmd.Context(), appKey{}, a))
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to config file")
	rootCmd.PersistentFlags().StringVarP(&targetsPath, "targets", "t", "", "Path to targets file (overrides scraper.targets_path)")

	rootCmd.AddCommand(scrapeCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(scheduleCmd)
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(migrateCmd)
}
