// Package classify assigns a category and tags to scraped content using keyword matching.
package classify

import (
	"sort"
	"strings"
)

const (
	DefaultCategory = "general"

	// scanLimit bounds how much of the text body is searched, in runes.
	scanLimit = 2000
	// maxTagsPerCategory bounds how many matched keywords one category contributes.
	maxTagsPerCategory = 3
)

// Category is a named keyword set. Keywords are matched as lower-case substrings.
type Category struct {
	Name     string   `yaml:"name"`
	Keywords []string `yaml:"keywords"`
}

// DefaultCategories is the built-in category list in priority order.
var DefaultCategories = []Category{
	{Name: "documentation", Keywords: []string{"docs", "documentation", "guide", "tutorial", "manual", "reference"}},
	{Name: "news", Keywords: []string{"news", "article", "update", "announcement", "press", "release"}},
	{Name: "product", Keywords: []string{"product", "feature", "pricing", "plan", "subscription", "service"}},
	{Name: "support", Keywords: []string{"help", "support", "faq", "troubleshoot", "issue", "contact"}},
	{Name: "legal", Keywords: []string{"terms", "privacy", "policy", "legal", "agreement", "disclaimer"}},
}

// Classifier is safe for concurrent use; it holds no mutable state after construction.
type Classifier struct {
	categories      []Category
	defaultCategory string
}

// New builds a classifier. Earlier categories win ties. Categories without keywords, or named
// like the default category, never match.
func New(categories []Category, defaultCategory string) *Classifier {
	if defaultCategory == "" {
		defaultCategory = DefaultCategory
	}

	cs := make([]Category, 0, len(categories))
	for _, c := range categories {
		if c.Name == defaultCategory || len(c.Keywords) == 0 {
			continue
		}
		kws := make([]string, 0, len(c.Keywords))
		for _, kw := range c.Keywords {
			if kw = strings.ToLower(strings.TrimSpace(kw)); kw != "" {
				kws = append(kws, kw)
			}
		}
		cs = append(cs, Category{Name: c.Name, Keywords: kws})
	}

	return &Classifier{categories: cs, defaultCategory: defaultCategory}
}

// Classify returns the category with the most keyword hits and the union of up to three hits per
// category as sorted tags. With no hits it returns the default category and no tags.
func (c *Classifier) Classify(title, text string) (string, []string) {
	combined := strings.ToLower(title + " " + prefix(text, scanLimit))

	best := c.defaultCategory
	bestCount := 0
	seen := make(map[string]struct{})

	for _, cat := range c.categories {
		var matches []string
		for _, kw := range cat.Keywords {
			if strings.Contains(combined, kw) {
				matches = append(matches, kw)
			}
		}
		if len(matches) == 0 {
			continue
		}

		if len(matches) > bestCount {
			bestCount = len(matches)
			best = cat.Name
		}

		if len(matches) > maxTagsPerCategory {
			matches = matches[:maxTagsPerCategory]
		}
		for _, m := range matches {
			seen[m] = struct{}{}
		}
	}

	tags := make([]string, 0, len(seen))
	for t := range seen {
		tags = append(tags, t)
	}
	sort.Strings(tags)

	return best, tags
}

func prefix(s string, n int) string {
	i := 0
	for pos := range s {
		if i == n {
			return s[:pos]
		}
		i++
	}
	return s
}
