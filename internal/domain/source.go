package domain

import "time"

type Source struct {
	ID          string
	Name        string // natural key
	Slug        string
	Category    string
	Metadata    map[string]any
	SourceURL   string
	Adapter     string
	LastScraped time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Item struct {
	ID        string
	SourceID  string
	Number    string // unique within SourceID
	Title     string
	Category  string
	Summary   string
	Tags      []string
	FullText  string // encoded by codec.Encode
	SourceURL string
	Metadata  map[string]any
	ScrapedAt time.Time
}

// RawItem is what an adapter hands to the pipeline before classification and encoding.
type RawItem struct {
	Number string
	Title  string
	Text   string
	URL    string
}
