package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"content_scraper/internal/domain"
	"content_scraper/internal/storage"
)

type ItemStore struct {
	db *sqlx.DB
}

func NewItemStore(db *sqlx.DB) *ItemStore {
	return &ItemStore{db: db}
}

type itemRow struct {
	ID        string         `db:"id"`
	SourceID  string         `db:"source_id"`
	Number    string         `db:"number"`
	Title     string         `db:"title"`
	Category  string         `db:"category"`
	Summary   string         `db:"summary"`
	Tags      pq.StringArray `db:"tags"`
	FullText  string         `db:"full_text"`
	SourceURL string         `db:"source_url"`
	Metadata  []byte         `db:"metadata"`
	ScrapedAt time.Time      `db:"scraped_at"`
}

// Upsert inserts the item or overwrites the stored copy with the same (source, number).
// source_url keeps its first value.
func (s *ItemStore) Upsert(ctx context.Context, item *domain.Item) error {
	metadata, err := marshalMetadata(item.Metadata)
	if err != nil {
		return err
	}

	tags := item.Tags
	if tags == nil {
		tags = []string{}
	}

	query := `
		INSERT INTO items (
			source_id, number, title, category, summary, tags, full_text, source_url, metadata, scraped_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, NOW()
		)
		ON CONFLICT (source_id, number) DO UPDATE SET
			title = EXCLUDED.title,
			category = EXCLUDED.category,
			summary = EXCLUDED.summary,
			tags = EXCLUDED.tags,
			full_text = EXCLUDED.full_text,
			metadata = EXCLUDED.metadata,
			scraped_at = NOW()`

	_, err = GetExecutor(ctx, s.db).ExecContext(ctx, query,
		item.SourceID,
		item.Number,
		item.Title,
		item.Category,
		item.Summary,
		pq.Array(tags),
		item.FullText,
		item.SourceURL,
		metadata,
	)
	return err
}

func (s *ItemStore) CountBySource(ctx context.Context, sourceID string) (int, error) {
	var count int
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &count,
		"SELECT COUNT(*) FROM items WHERE source_id = $1", sourceID)
	return count, err
}

// Get returns storage.ErrNotFound when the source has no item with that number.
func (s *ItemStore) Get(ctx context.Context, sourceID, number string) (*domain.Item, error) {
	var row itemRow
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &row, `
		SELECT id, source_id, number, title, category, summary, tags, full_text, source_url, metadata, scraped_at
		FROM items
		WHERE source_id = $1 AND number = $2`,
		sourceID, number,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	item := &domain.Item{
		ID:        row.ID,
		SourceID:  row.SourceID,
		Number:    row.Number,
		Title:     row.Title,
		Category:  row.Category,
		Summary:   row.Summary,
		Tags:      []string(row.Tags),
		FullText:  row.FullText,
		SourceURL: row.SourceURL,
		ScrapedAt: row.ScrapedAt,
	}
	if err := json.Unmarshal(row.Metadata, &item.Metadata); err != nil {
		return nil, fmt.Errorf("decode metadata of item %q: %w", number, err)
	}
	return item, nil
}
