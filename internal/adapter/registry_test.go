package adapter

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"content_scraper/internal/adapter/mocks"
)

func TestRegistry_Resolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	a := mocks.NewMockAdapter(ctrl)
	a.EXPECT().ID().Return("alpha").AnyTimes()

	calls := 0
	r := NewRegistry(map[string]Constructor{
		"alpha": func() Adapter { calls++; return a },
	})

	got, err := r.Resolve("alpha")
	require.NoError(t, err)
	assert.Equal(t, "alpha", got.ID())

	_, err = r.Resolve("alpha")
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestRegistry_UnknownListsKnown(t *testing.T) {
	r := NewRegistry(map[string]Constructor{
		"zeta":  func() Adapter { return nil },
		"alpha": func() Adapter { return nil },
	})

	_, err := r.Resolve("missing")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownAdapter))

	var unknown *UnknownAdapterError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "missing", unknown.ID)
	assert.Equal(t, []string{"alpha", "zeta"}, unknown.Known)
	assert.Equal(t, `unknown adapter "missing" (available: alpha, zeta)`, err.Error())
}

func TestRegistry_CopiesMapping(t *testing.T) {
	m := map[string]Constructor{"a": func() Adapter { return nil }}
	r := NewRegistry(m)
	m["b"] = func() Adapter { return nil }

	assert.Equal(t, []string{"a"}, r.Known())
}

func TestExtractionError_Unwraps(t *testing.T) {
	cause := errors.New("timeout")
	err := &ExtractionError{Adapter: "example", URL: "https://example.com", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "example: extract https://example.com: timeout", err.Error())
}

func TestHostMatches(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		{"https://example.com/news", true},
		{"http://www.example.com", true},
		{"https://EXAMPLE.com", true},
		{"https://notexample.com", false},
		{"https://example.com.evil.org", false},
		{"ftp://example.com", false},
		{"example.com/path", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, HostMatches(tt.url, "example.com"))
		})
	}
}

func TestResolveURL(t *testing.T) {
	base := "https://example.com/blog/"

	assert.Equal(t, "https://example.com/blog/post-1", ResolveURL(base, "post-1"))
	assert.Equal(t, "https://example.com/about", ResolveURL(base, "/about"))
	assert.Equal(t, "https://other.org/x", ResolveURL(base, "https://other.org/x"))
	assert.Equal(t, base, ResolveURL(base, "  "))
}

func TestIsHTTPURL(t *testing.T) {
	assert.True(t, IsHTTPURL("https://example.org/feed.xml"))
	assert.False(t, IsHTTPURL("/relative/path"))
	assert.False(t, IsHTTPURL("mailto:someone@example.org"))
}
