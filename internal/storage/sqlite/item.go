package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

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
	ID        string    `db:"id"`
	SourceID  string    `db:"source_id"`
	Number    string    `db:"number"`
	Title     string    `db:"title"`
	Category  string    `db:"category"`
	Summary   string    `db:"summary"`
	Tags      string    `db:"tags"`
	FullText  string    `db:"full_text"`
	SourceURL string    `db:"source_url"`
	Metadata  string    `db:"metadata"`
	ScrapedAt time.Time `db:"scraped_at"`
}

func (s *ItemStore) Upsert(ctx context.Context, item *domain.Item) error {
	tags, err := marshalJSON(item.Tags, "[]")
	if err != nil {
		return fmt.Errorf("encode tags: %w", err)
	}
	metadata, err := marshalJSON(item.Metadata, "{}")
	if err != nil {
		return fmt.Errorf("encode metadata: %w", err)
	}

	query := `
		INSERT INTO items (
			id, source_id, number, title, category, summary, tags, full_text, source_url, metadata, scraped_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (source_id, number) DO UPDATE SET
			title = excluded.title,
			category = excluded.category,
			summary = excluded.summary,
			tags = excluded.tags,
			full_text = excluded.full_text,
			metadata = excluded.metadata,
			scraped_at = excluded.scraped_at`

	_, err = s.db.ExecContext(ctx, query,
		uuid.NewString(),
		item.SourceID,
		item.Number,
		item.Title,
		item.Category,
		item.Summary,
		tags,
		item.FullText,
		item.SourceURL,
		metadata,
		time.Now().UTC(),
	)
	return err
}

func (s *ItemStore) CountBySource(ctx context.Context, sourceID string) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM items WHERE source_id = ?", sourceID)
	return count, err
}

func (s *ItemStore) Get(ctx context.Context, sourceID, number string) (*domain.Item, error) {
	var row itemRow
	err := s.db.GetContext(ctx, &row, `
		SELECT id, source_id, number, title, category, summary, tags, full_text, source_url, metadata, scraped_at
		FROM items
		WHERE source_id = ? AND number = ?`,
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
		FullText:  row.FullText,
		SourceURL: row.SourceURL,
		ScrapedAt: row.ScrapedAt,
	}
	if err := json.Unmarshal([]byte(row.Tags), &item.Tags); err != nil {
		return nil, fmt.Errorf("decode tags of item %q: %w", number, err)
	}
	if err := json.Unmarshal([]byte(row.Metadata), &item.Metadata); err != nil {
		return nil, fmt.Errorf("decode metadata of item %q: %w", number, err)
	}
	return item, nil
}
