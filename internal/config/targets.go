package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"content_scraper/internal/domain"
)

var ErrTargetNotFound = errors.New("target not found")

// Targets is the targets document. JSON documents parse as well, since JSON is valid YAML.
type Targets struct {
	RegionName string          `yaml:"region_name"`
	Targets    []domain.Target `yaml:"targets"`
	path       string
}

func LoadTargets(path string) (*Targets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read targets file: %w", err)
	}

	t, err := parseTargets(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	t.path = path

	return t, nil
}

func parseTargets(data []byte) (*Targets, error) {
	var t Targets
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse targets: %w", err)
	}

	seen := make(map[string]struct{}, len(t.Targets))
	for i := range t.Targets {
		target := &t.Targets[i]
		if target.ID == "" {
			return nil, fmt.Errorf("target #%d: missing id", i+1)
		}
		if target.Name == "" {
			return nil, fmt.Errorf("target %q: missing name", target.ID)
		}
		if target.URL == "" {
			return nil, fmt.Errorf("target %q: missing url", target.ID)
		}
		if _, dup := seen[target.ID]; dup {
			return nil, fmt.Errorf("duplicate target id %q", target.ID)
		}
		seen[target.ID] = struct{}{}

		if target.Source == "" {
			target.Source = domain.DefaultAdapter
		}
		if target.Metadata == nil {
			target.Metadata = map[string]any{}
		}
		// Metadata is persisted as JSON.
		if _, err := json.Marshal(target.Metadata); err != nil {
			return nil, fmt.Errorf("target %q: invalid metadata: %w", target.ID, err)
		}
	}

	return &t, nil
}

// Target returns a copy of the target with the given id.
func (t *Targets) Target(id string) (*domain.Target, error) {
	for i := range t.Targets {
		if t.Targets[i].ID == id {
			target := t.Targets[i]
			return &target, nil
		}
	}
	if t.path != "" {
		return nil, fmt.Errorf("%w: %q in %s", ErrTargetNotFound, id, t.path)
	}
	return nil, fmt.Errorf("%w: %q", ErrTargetNotFound, id)
}

// Enabled returns the enabled targets in document order.
func (t *Targets) Enabled() []domain.Target {
	var out []domain.Target
	for _, target := range t.Targets {
		if target.IsEnabled() {
			out = append(out, target)
		}
	}
	return out
}
