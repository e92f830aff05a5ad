package publisher

import (
	"time"

	"content_scraper/internal/domain"
)

const ActionUpsert = "upsert"

// ItemMessage is the event published for every stored item. The encoded full text is left out;
// consumers read it from the store.
type ItemMessage struct {
	Action    string      `json:"action"`
	Source    SourceRef   `json:"source"`
	Item      ItemPayload `json:"item"`
	Timestamp time.Time   `json:"timestamp"`
}

type SourceRef struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Category string `json:"category"`
	Adapter  string `json:"adapter"`
}

type ItemPayload struct {
	Number    string         `json:"number"`
	Title     string         `json:"title"`
	Category  string         `json:"category"`
	Summary   string         `json:"summary"`
	Tags      []string       `json:"tags"`
	SourceURL string         `json:"source_url"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

func NewItemMessage(source *domain.Source, item *domain.Item) ItemMessage {
	tags := item.Tags
	if tags == nil {
		tags = []string{}
	}
	return ItemMessage{
		Action: ActionUpsert,
		Source: SourceRef{
			ID:       source.ID,
			Name:     source.Name,
			Slug:     source.Slug,
			Category: source.Category,
			Adapter:  source.Adapter,
		},
		Item: ItemPayload{
			Number:    item.Number,
			Title:     item.Title,
			Category:  item.Category,
			Summary:   item.Summary,
			Tags:      tags,
			SourceURL: item.SourceURL,
			Metadata:  item.Metadata,
		},
		Timestamp: time.Now().UTC(),
	}
}
