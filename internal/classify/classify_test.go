package classify

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassify_Default(t *testing.T) {
	c := New(DefaultCategories, "")

	category, tags := c.Classify("Weather today", "Sunny with a light breeze in the afternoon.")

	assert.Equal(t, DefaultCategory, category)
	assert.Empty(t, tags)
}

func TestClassify_PicksMostMatches(t *testing.T) {
	c := New(DefaultCategories, "")

	category, tags := c.Classify(
		"Privacy Policy",
		"These terms form a legal agreement. See our press page for news.",
	)

	assert.Equal(t, "legal", category)
	// legal matched terms, privacy, policy, legal, agreement: only the first three become tags
	assert.ElementsMatch(t, []string{"terms", "privacy", "policy", "news", "press"}, tags)
}

func TestClassify_CaseInsensitive(t *testing.T) {
	c := New(DefaultCategories, "")

	category, _ := c.Classify("USER GUIDE", "A TUTORIAL and REFERENCE MANUAL")

	assert.Equal(t, "documentation", category)
}

func TestClassify_TieGoesToEarlierCategory(t *testing.T) {
	c := New([]Category{
		{Name: "alpha", Keywords: []string{"apple", "apricot"}},
		{Name: "beta", Keywords: []string{"banana", "blueberry"}},
	}, "misc")

	category, tags := c.Classify("apple banana", "apricot blueberry")
	assert.Equal(t, "alpha", category)
	assert.Equal(t, []string{"apple", "apricot", "banana", "blueberry"}, tags)

	reversed := New([]Category{
		{Name: "beta", Keywords: []string{"banana", "blueberry"}},
		{Name: "alpha", Keywords: []string{"apple", "apricot"}},
	}, "misc")

	category, _ = reversed.Classify("apple banana", "apricot blueberry")
	assert.Equal(t, "beta", category)
}

func TestClassify_TagsIndependentOfWinner(t *testing.T) {
	c := New(DefaultCategories, "")

	category, tags := c.Classify("Docs guide tutorial", "contact support")

	assert.Equal(t, "documentation", category)
	assert.Contains(t, tags, "contact")
	assert.Contains(t, tags, "support")
}

func TestClassify_OnlyScansTextPrefix(t *testing.T) {
	c := New(DefaultCategories, "")

	text := strings.Repeat("x", scanLimit) + " privacy policy terms"
	category, tags := c.Classify("Untitled", text)

	assert.Equal(t, DefaultCategory, category)
	assert.Empty(t, tags)
}

func TestClassify_Deterministic(t *testing.T) {
	c := New(DefaultCategories, "")
	title := "Product update: new pricing plan"
	text := "Read the announcement and the FAQ for help with your subscription."

	wantCategory, wantTags := c.Classify(title, text)
	for i := 0; i < 50; i++ {
		category, tags := c.Classify(title, text)
		assert.Equal(t, wantCategory, category)
		assert.Equal(t, wantTags, tags)
	}
}

func TestNew_SkipsDefaultAndEmptyCategories(t *testing.T) {
	c := New([]Category{
		{Name: "general", Keywords: []string{"anything"}},
		{Name: "empty"},
		{Name: "real", Keywords: []string{"  Signal  "}},
	}, "general")

	category, tags := c.Classify("anything", "with a signal")

	assert.Equal(t, "real", category)
	assert.Equal(t, []string{"signal"}, tags)
}
