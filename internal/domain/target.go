package domain

// DefaultAdapter is used when a target omits its source.
const DefaultAdapter = "example"

// Target is one configured scrape unit from the targets document.
type Target struct {
	ID       string         `yaml:"id" json:"id"`
	Name     string         `yaml:"name" json:"name"`
	Slug     string         `yaml:"slug" json:"slug"`
	Category string         `yaml:"category" json:"category"`
	Metadata map[string]any `yaml:"metadata" json:"metadata"`
	URL      string         `yaml:"url" json:"url"`
	Source   string         `yaml:"source" json:"source"`
	Enabled  *bool          `yaml:"enabled" json:"enabled"`
}

// AdapterID returns the configured adapter identifier or DefaultAdapter.
func (t *Target) AdapterID() string {
	if t.Source == "" {
		return DefaultAdapter
	}
	return t.Source
}

// IsEnabled reports whether the target takes part in batch runs. Targets are enabled unless
// they say otherwise.
func (t *Target) IsEnabled() bool {
	return t.Enabled == nil || *t.Enabled
}

// MetadataString returns a string metadata value, or "" when absent or not a string.
func (t *Target) MetadataString(key string) string {
	v, _ := t.Metadata[key].(string)
	return v
}

// MetadataBool returns a boolean metadata value, accepting YAML booleans and "true"/"false" strings.
func (t *Target) MetadataBool(key string) bool {
	switch v := t.Metadata[key].(type) {
	case bool:
		return v
	case string:
		return v == "true"
	}
	return false
}
