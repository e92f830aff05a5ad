package adapter

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
)

// NormalizeSpace collapses runs of whitespace into single spaces.
func NormalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// StripMarkup returns the visible text of an HTML fragment with whitespace normalized.
func StripMarkup(fragment string) string {
	if !strings.ContainsAny(fragment, "<&") {
		return NormalizeSpace(fragment)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return NormalizeSpace(fragment)
	}
	return NormalizeSpace(doc.Text())
}

// Substantial reports whether text is longer than minLength characters.
func Substantial(text string, minLength int) bool {
	return utf8.RuneCountInString(text) > minLength
}
