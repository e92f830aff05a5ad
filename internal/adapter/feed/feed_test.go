package feed

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content_scraper/internal/domain"
	"content_scraper/internal/fetch"
)

const rssTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:content="http://purl.org/rss/1.0/modules/content/">
<channel>
  <title>Example feed</title>
  <link>%[1]s</link>
  <description>Test feed</description>
  <item>
    <title>Release notes for version two</title>
    <guid isPermaLink="false">entry-1</guid>
    <link>%[1]s/articles/1</link>
    <description>&lt;p&gt;Version two ships a new pricing model and a faster &lt;b&gt;product&lt;/b&gt; search for every plan.&lt;/p&gt;</description>
  </item>
  <item>
    <title>Second entry</title>
    <link>/articles/2</link>
    <content:encoded><![CDATA[<div>The second entry has no guid, so its link identifies it, and its body is long enough.</div>]]></content:encoded>
  </item>
  <item>
    <title>Too short</title>
    <guid>entry-3</guid>
    <description>Short.</description>
  </item>
  <item>
    <title>No identity</title>
    <description>An entry with neither a guid nor a link cannot be stored, whatever its length is.</description>
  </item>
</channel>
</rss>`

var articleParagraph = strings.Repeat("The full article explains the migration guide in detail for every installation. ", 8)

func newFeedServer(t *testing.T) (*httptest.Server, *atomic.Int32) {
	t.Helper()

	var articleHits atomic.Int32
	var srv *httptest.Server
	srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/feed.xml":
			w.Header().Set("Content-Type", "application/rss+xml")
			_, _ = fmt.Fprintf(w, rssTemplate, srv.URL)
		case strings.HasPrefix(r.URL.Path, "/articles/"):
			articleHits.Add(1)
			if r.URL.Path == "/articles/2" {
				http.Error(w, "gone", http.StatusGone)
				return
			}
			w.Header().Set("Content-Type", "text/html")
			_, _ = fmt.Fprintf(w, `<html><head><title>Article</title></head><body>
<nav><a href="/">Home</a></nav>
<article><h1>Article</h1><p>%s</p><p>%s</p><p>%s</p></article>
</body></html>`, articleParagraph, articleParagraph, articleParagraph)
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(srv.Close)

	return srv, &articleHits
}

func newAdapter(pacing time.Duration) *Adapter {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fetcher := fetch.NewHTTP(fetch.HTTPConfig{Timeout: 5 * time.Second, MaxAttempts: 1}, logger)
	return New(fetcher, pacing, 50, logger)
}

func TestAdapter_ValidateURL(t *testing.T) {
	a := newAdapter(0)

	assert.True(t, a.ValidateURL("https://example.org/feed.xml"))
	assert.True(t, a.ValidateURL("http://localhost:8080/rss"))
	assert.False(t, a.ValidateURL("feed.xml"))
}

func TestAdapter_ExtractItems(t *testing.T) {
	srv, hits := newFeedServer(t)
	a := newAdapter(0)

	items, err := a.ExtractItems(context.Background(), srv.URL+"/feed.xml", &domain.Target{ID: "f"})
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "entry-1", items[0].Number)
	assert.Equal(t, "Release notes for version two", items[0].Title)
	assert.Equal(t, srv.URL+"/articles/1", items[0].URL)
	assert.Equal(t, "Version two ships a new pricing model and a faster product search for every plan.", items[0].Text)

	assert.True(t, strings.HasSuffix(items[1].Number, "/articles/2"), "link identifies entries without a guid")
	assert.Equal(t, srv.URL+"/articles/2", items[1].URL)
	assert.NotContains(t, items[1].Text, "<div>")

	assert.Zero(t, hits.Load(), "articles are only fetched in full text mode")
}

func TestAdapter_FullText(t *testing.T) {
	srv, hits := newFeedServer(t)
	a := newAdapter(0)

	target := &domain.Target{ID: "f", Metadata: map[string]any{"full_text": true}}
	items, err := a.ExtractItems(context.Background(), srv.URL+"/feed.xml", target)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Contains(t, items[0].Text, "migration guide")
	assert.Contains(t, items[1].Text, "second entry", "failed article fetch falls back to the entry body")
	assert.EqualValues(t, 2, hits.Load())
}

func TestAdapter_FullTextIsPaced(t *testing.T) {
	srv, _ := newFeedServer(t)
	a := newAdapter(100 * time.Millisecond)

	target := &domain.Target{ID: "f", Metadata: map[string]any{"full_text": "true"}}
	start := time.Now()
	_, err := a.ExtractItems(context.Background(), srv.URL+"/feed.xml", target)
	require.NoError(t, err)

	assert.GreaterOrEqual(t, time.Since(start), 90*time.Millisecond)
}

func TestAdapter_InvalidFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "this is not a feed")
	}))
	defer srv.Close()

	_, err := newAdapter(0).ExtractItems(context.Background(), srv.URL, &domain.Target{ID: "f"})
	assert.ErrorContains(t, err, "parse feed")
}
