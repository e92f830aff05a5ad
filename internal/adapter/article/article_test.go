package article

import (
	"context"
	"fmt"
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

var paragraph = strings.Repeat("Terms of service changes take effect for every account next month. ", 10)

func newAdapter(t *testing.T, handler http.HandlerFunc) (*Adapter, string) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	fetcher := fetch.NewHTTP(fetch.HTTPConfig{Timeout: 5 * time.Second, MaxAttempts: 1}, logger)
	return New(fetcher, 50, logger), srv.URL
}

func TestAdapter_ExtractItems(t *testing.T) {
	a, base := newAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = fmt.Fprintf(w, `<html><head><title>Policy update</title></head><body>
<article><h1>Policy update</h1><p>%s</p><p>%s</p></article>
</body></html>`, paragraph, paragraph)
	})

	items, err := a.ExtractItems(context.Background(), base+"/legal/policy-update", &domain.Target{ID: "a", Name: "Policies"})
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, "/legal/policy-update", items[0].Number)
	assert.Equal(t, "Policy update", items[0].Title)
	assert.Equal(t, base+"/legal/policy-update", items[0].URL)
	assert.Contains(t, items[0].Text, "Terms of service changes")
}

func TestAdapter_ShortPageYieldsNothing(t *testing.T) {
	a, base := newAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, `<html><body><p>Hi.</p></body></html>`)
	})

	items, err := a.ExtractItems(context.Background(), base+"/", &domain.Target{ID: "a"})
	if err != nil {
		assert.ErrorContains(t, err, "extract article")
		return
	}
	assert.Empty(t, items)
}

func TestAdapter_HTTPErrorIsFatal(t *testing.T) {
	a, base := newAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	})

	_, err := a.ExtractItems(context.Background(), base+"/missing", &domain.Target{ID: "a"})

	var statusErr *fetch.StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusNotFound, statusErr.Code)
}

func TestAdapter_ValidateURL(t *testing.T) {
	a := New(nil, 50, slog.New(slog.NewTextHandler(io.Discard, nil)))

	assert.True(t, a.ValidateURL("https://example.net/a/b"))
	assert.False(t, a.ValidateURL("file:///etc/passwd"))
}
