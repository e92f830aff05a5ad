package codec

import (
	"encoding/base64"
	"strings"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"ascii", "Release notes for version 2.1"},
		{"multibyte", "Привет, мир! こんにちは 🌍 naïve café"},
		{"newlines and tabs", "line one\n\tline two\r\nline three"},
		{"repetitive", strings.Repeat("the quick brown fox ", 5000)},
		{"single rune", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := Encode(tt.text)
			require.NoError(t, err)

			decoded, err := Decode(encoded)
			require.NoError(t, err)
			assert.Equal(t, tt.text, decoded)
		})
	}
}

func TestEncode_EmptyHasNoOverhead(t *testing.T) {
	encoded, err := Encode("")
	require.NoError(t, err)
	assert.Equal(t, "", encoded)
}

func TestEncode_Printable(t *testing.T) {
	encoded, err := Encode("some text with\x00control\x07bytes and ünïcödé")
	require.NoError(t, err)
	require.NotEmpty(t, encoded)

	for _, r := range encoded {
		assert.True(t, unicode.IsPrint(r), "unexpected rune %q in encoded output", r)
	}
}

func TestEncode_RejectsInvalidUTF8(t *testing.T) {
	for _, text := range []string{"caf\xe9 latin-1 page text", "\xff\xfe", "ok then \xc3"} {
		encoded, err := Encode(text)
		assert.ErrorIs(t, err, ErrInvalidText, "%q", text)
		assert.Empty(t, encoded)
	}
}

func TestEncode_Compresses(t *testing.T) {
	text := strings.Repeat("documentation guide tutorial ", 2000)

	encoded, err := Encode(text)
	require.NoError(t, err)
	assert.Less(t, len(encoded), len(text)/4)
}

func TestDecode_Corrupt(t *testing.T) {
	valid, err := Encode("a perfectly normal paragraph of text")
	require.NoError(t, err)

	tests := []struct {
		name  string
		input string
	}{
		{"not base64", "!!!not-base64!!!"},
		{"not lz4", base64.StdEncoding.EncodeToString([]byte("plain bytes, no frame"))},
		{"truncated frame", valid[:len(valid)/2]},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode(tt.input)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrCorrupt)
		})
	}
}
