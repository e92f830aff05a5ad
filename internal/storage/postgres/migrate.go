package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"content_scraper/internal/storage"
	"content_scraper/migrations"
)

// Migrate applies every embedded migration newer than the recorded schema version. Each
// migration runs in its own transaction together with its version record.
func Migrate(ctx context.Context, db *sqlx.DB, logger *slog.Logger) error {
	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version    INTEGER PRIMARY KEY,
			name       TEXT NOT NULL,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`); err != nil {
		return fmt.Errorf("create schema_migrations: %w", err)
	}

	var current int
	if err := db.GetContext(ctx, &current, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations"); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	all, err := storage.LoadMigrations(migrations.Postgres, "postgres")
	if err != nil {
		return fmt.Errorf("load migrations: %w", err)
	}

	tm := NewTransactionManager(db)
	for _, m := range all {
		if m.Version <= current {
			continue
		}

		logger.Info("applying migration", "version", m.Version, "name", m.Name)

		err := tm.WithTransaction(ctx, func(txCtx context.Context) error {
			exec := GetExecutor(txCtx, db)
			if _, err := exec.ExecContext(txCtx, m.SQL); err != nil {
				return err
			}
			_, err := exec.ExecContext(txCtx,
				"INSERT INTO schema_migrations (version, name) VALUES ($1, $2)", m.Version, m.Name)
			return err
		})
		if err != nil {
			return fmt.Errorf("migration %d (%s): %w", m.Version, m.Name, err)
		}
	}

	return nil
}
