package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

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
	Metadata    []byte       `db:"metadata"`
	SourceURL   string       `db:"source_url"`
	Adapter     string       `db:"adapter"`
	LastScraped sql.NullTime `db:"last_scraped"`
}

func (r *sourceRow) toDomain() (domain.Source, error) {
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
	if err := json.Unmarshal(r.Metadata, &src.Metadata); err != nil {
		return domain.Source{}, fmt.Errorf("decode metadata of source %q: %w", r.Name, err)
	}
	return src, nil
}

func (s *SourceStore) Exists(ctx context.Context, name string) (bool, error) {
	var exists bool
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &exists,
		"SELECT EXISTS (SELECT 1 FROM sources WHERE name = $1)", name)
	return exists, err
}

func (s *SourceStore) GetID(ctx context.Context, name string) (string, bool, error) {
	var id string
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &id,
		"SELECT id FROM sources WHERE name = $1", name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return id, true, nil
}

// Upsert inserts the source or, when the name already exists, refreshes only its scrape
// timestamps. It returns the row id either way.
func (s *SourceStore) Upsert(ctx context.Context, source *domain.Source) (string, error) {
	metadata, err := marshalMetadata(source.Metadata)
	if err != nil {
		return "", err
	}

	query := `
		INSERT INTO sources (
			name, slug, category, metadata, source_url, adapter, last_scraped
		) VALUES (
			$1, $2, $3, $4, $5, $6, NOW()
		)
		ON CONFLICT (name) DO UPDATE SET
			last_scraped = NOW(),
			updated_at = NOW()
		RETURNING id`

	var id string
	err = GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		source.Name,
		source.Slug,
		source.Category,
		metadata,
		source.SourceURL,
		source.Adapter,
	).Scan(&id)
	if err != nil {
		return "", err
	}

	return id, nil
}

func (s *SourceStore) List(ctx context.Context) ([]domain.Source, error) {
	var rows []sourceRow
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &rows, `
		SELECT id, created_at, updated_at, name, slug, category, metadata, source_url, adapter, last_scraped
		FROM sources
		ORDER BY name`)
	if err != nil {
		return nil, err
	}

	sources := make([]domain.Source, 0, len(rows))
	for i := range rows {
		src, err := rows[i].toDomain()
		if err != nil {
			return nil, err
		}
		sources = append(sources, src)
	}
	return sources, nil
}

// marshalMetadata returns JSON text; lib/pq would send a []byte as bytea.
func marshalMetadata(m map[string]any) (string, error) {
	if m == nil {
		m = map[string]any{}
	}
	data, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("encode metadata: %w", err)
	}
	return string(data), nil
}
