package example

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"content_scraper/internal/domain"
	"content_scraper/internal/fetch"
)

const listingPage = `<html><body>
<div class="item">
  <h2>First   headline</h2>
  <div class="content">This is the first item and its body is comfortably longer than fifty characters.</div>
  <a href="/posts/1">read</a>
</div>
<div class="item">
  <h2>Too short</h2>
  <p>Tiny.</p>
</div>
<article>
  <p>An article without a heading but with more than enough text to pass the minimum length.</p>
  <a href="https://other.example.com/full">full</a>
</article>
<div class="post">
  <span class="title">No link</span>
  <div class="body">A post body without any link that is still long enough to be kept as an item.</div>
</div>
</body></html>`

func newTestAdapter(t *testing.T, body string) (*Adapter, string) {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fetcher := fetch.NewHTTP(fetch.HTTPConfig{Timeout: 5 * time.Second, MaxAttempts: 1}, logger)

	return New(fetcher, 50, logger), srv.URL + "/listing/"
}

func TestAdapter_ValidateURL(t *testing.T) {
	a := New(nil, 50, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.True(t, a.ValidateURL("https://example.com/news"))
	assert.True(t, a.ValidateURL("https://blog.example.com/"))
	assert.False(t, a.ValidateURL("https://example.org/news"))
	assert.False(t, a.ValidateURL("not a url"))
}

func TestAdapter_ExtractItems(t *testing.T) {
	a, pageURL := newTestAdapter(t, listingPage)
	base := strings.TrimSuffix(pageURL, "/listing/")

	items, err := a.ExtractItems(context.Background(), pageURL, &domain.Target{ID: "t"})
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "ITEM-1", items[0].Number)
	assert.Equal(t, "First headline", items[0].Title)
	assert.Equal(t, base+"/posts/1", items[0].URL)

	assert.Equal(t, "ITEM-3", items[1].Number)
	assert.Equal(t, "Item 3", items[1].Title)
	assert.Equal(t, "https://other.example.com/full", items[1].URL)

	assert.Equal(t, "ITEM-4", items[2].Number)
	assert.Equal(t, "No link", items[2].Title)
	assert.Equal(t, pageURL, items[2].URL)
}

func TestAdapter_ItemSelectorOverride(t *testing.T) {
	a, pageURL := newTestAdapter(t, listingPage)

	target := &domain.Target{ID: "t", Metadata: map[string]any{"item_selector": ".post"}}
	items, err := a.ExtractItems(context.Background(), pageURL, target)
	require.NoError(t, err)

	require.Len(t, items, 1)
	assert.Equal(t, "ITEM-1", items[0].Number)
	assert.Equal(t, "No link", items[0].Title)
}

func TestAdapter_NoItems(t *testing.T) {
	a, pageURL := newTestAdapter(t, "<html><body><p>nothing here</p></body></html>")

	items, err := a.ExtractItems(context.Background(), pageURL, &domain.Target{ID: "t"})
	require.NoError(t, err)
	assert.Empty(t, items)
}

type failingFetcher struct{ err error }

func (f failingFetcher) Fetch(context.Context, string) (string, error) { return "", f.err }
func (f failingFetcher) Close() error                                  { return nil }

func TestAdapter_FetchErrorIsFatal(t *testing.T) {
	cause := errors.New("connection refused")
	a := New(failingFetcher{err: cause}, 50, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := a.ExtractItems(context.Background(), "https://example.com", &domain.Target{ID: "t"})
	assert.ErrorIs(t, err, cause)
}
