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
)

type SourceStore struct {
	db *sqlx.DB
}

func NewSourceStore(db *sqlx.DB) *SourceStore {
	return &SourceStore{db: db}
}

type sourceRow struct {
	ID          string       `db:"id"`
	CreatedAt   time.Time    `db:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at"`
	Name        string       `db:"name"`
	Slug        string       `db:"slug"`
	Category    string       `db:"category"`
	Metadata    string       `db:"metadata"`
	SourceURL   string       `db:"source_url"`
	Adapter     string       `db:"adapter"`
	LastScraped sql.NullTime `db:"last_scraped"`
}

func (s *SourceStore) Exists(ctx context.Context, name string) (bool, error) {
	_, found, err := s.GetID(ctx, name)
	return found, err
}

func (s *SourceStore) GetID(ctx context.Context, name string) (string, bool, error) {
	var id string
	err := s.db.GetContext(ctx, &id, "SELECT id FROM sources WHERE name = ?", name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return id, true, nil
}

// Upsert inserts the source or refreshes the scrape timestamps of the existing row with the
// same name, returning the row id.
func (s *SourceStore) Upsert(ctx context.Context, source *domain.Source) (string, error) {
	metadata, err := marshalJSON(source.Metadata, "{}")
	if err != nil {
		return "", fmt.Errorf("encode metadata: %w", err)
	}

	now := time.Now().UTC()
	query := `
		INSERT INTO sources (
			id, created_at, updated_at, name, slug, category, metadata, source_url, adapter, last_scraped
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (name) DO UPDATE SET
			last_scraped = excluded.last_scraped,
			updated_at = excluded.updated_at
		RETURNING id`

	var id string
	err = s.db.QueryRowxContext(ctx, query,
		uuid.NewString(),
		now,
		now,
		source.Name,
		source.Slug,
		source.Category,
		metadata,
		source.SourceURL,
		source.Adapter,
		now,
	).Scan(&id)
	if err != nil {
		return "", err
	}

	return id, nil
}

func (s *SourceStore) List(ctx context.Context) ([]domain.Source, error) {
	var rows []sourceRow
	err := s.db.SelectContext(ctx, &rows, `
		SELECT id, created_at, updated_at, name, slug, category, metadata, source_url, adapter, last_scraped
		FROM sources
		ORDER BY name`)
	if err != nil {
		return nil, err
	}

	sources := make([]domain.Source, 0, len(rows))
	for _, r := range rows {
		src := domain.Source{
			ID:          r.ID,
			Name:        r.Name,
			Slug:        r.Slug,
			Category:    r.Category,
			SourceURL:   r.SourceURL,
			Adapter:     r.Adapter,
			LastScraped: r.LastScraped.Time,
			CreatedAt:   r.CreatedAt,
			UpdatedAt:   r.UpdatedAt,
		}
		if err := json.Unmarshal([]byte(r.Metadata), &src.Metadata); err != nil {
			return nil, fmt.Errorf("decode metadata of source %q: %w", r.Name, err)
		}
		sources = append(sources, src)
	}
	return sources, nil
}

func marshalJSON(v any, empty string) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	if string(data) == "null" {
		return empty, nil
	}
	return string(data), nil
}
