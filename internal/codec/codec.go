// Package codec compresses item text for storage in text columns.
//
// Values are LZ4 frames encoded as standard base64. The empty string encodes to the empty
// string, so an empty column always means empty text.
package codec

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/pierrec/lz4/v4"
)

var (
	// ErrCorrupt is matched by every Decode failure.
	ErrCorrupt = errors.New("corrupt encoded text")
	// ErrInvalidText is returned by Encode for input Decode could not give back.
	ErrInvalidText = errors.New("text is not valid UTF-8")
)

// Encode compresses text and returns its printable representation.
func Encode(text string) (string, error) {
	if text == "" {
		return "", nil
	}
	if !utf8.ValidString(text) {
		return "", ErrInvalidText
	}

	var buf bytes.Buffer
	w := lz4.NewWriter(&buf)
	if _, err := w.Write([]byte(text)); err != nil {
		return "", fmt.Errorf("compress text: %w", err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("flush compressed text: %w", err)
	}

	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// Decode reverses Encode.
func Decode(encoded string) (string, error) {
	if encoded == "" {
		return "", nil
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: base64: %v", ErrCorrupt, err)
	}

	out, err := io.ReadAll(lz4.NewReader(bytes.NewReader(raw)))
	if err != nil {
		return "", fmt.Errorf("%w: lz4: %v", ErrCorrupt, err)
	}
	if !utf8.Valid(out) {
		return "", fmt.Errorf("%w: payload is not valid UTF-8", ErrCorrupt)
	}

	return string(out), nil
}
