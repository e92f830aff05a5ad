package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// HTTPConfig holds HTTP fetcher configuration.
type HTTPConfig struct {
	Timeout        time.Duration
	UserAgent      string
	MaxAttempts    int
	InitialBackoff time.Duration
	MaxBackoff     time.Duration
	// MaxBodySize caps the bytes read from one response. Zero means DefaultMaxBodySize.
	MaxBodySize int64
}

const DefaultMaxBodySize = 10 << 20

var ErrBodyTooLarge = errors.New("response body too large")

// HTTP fetches static pages and feeds. It does not execute JavaScript.
type HTTP struct {
	httpClient     *http.Client
	userAgent      string
	maxAttempts    int
	initialBackoff time.Duration
	maxBackoff     time.Duration
	maxBodySize    int64
	logger         *slog.Logger
}

var _ Fetcher = (*HTTP)(nil)

func NewHTTP(cfg HTTPConfig, logger *slog.Logger) *HTTP {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if cfg.MaxBodySize <= 0 {
		cfg.MaxBodySize = DefaultMaxBodySize
	}
	return &HTTP{
		httpClient: &http.Client{
			Timeout: cfg.Timeout,
		},
		userAgent:      cfg.UserAgent,
		maxAttempts:    cfg.MaxAttempts,
		initialBackoff: cfg.InitialBackoff,
		maxBackoff:     cfg.MaxBackoff,
		maxBodySize:    cfg.MaxBodySize,
		logger:         logger.With("fetcher", "http"),
	}
}

func (h *HTTP) Fetch(ctx context.Context, url string) (string, error) {
	var body string
	var err error

	for attempt := 1; attempt <= h.maxAttempts; attempt++ {
		body, err = h.doRequest(ctx, url)
		if err == nil {
			return body, nil
		}

		var statusErr *StatusError
		if errors.As(err, &statusErr) && !statusErr.Retryable() {
			return "", err
		}
		if errors.Is(err, ErrBodyTooLarge) {
			return "", err
		}
		if attempt == h.maxAttempts {
			break
		}

		backoff := h.calculateBackoff(attempt)
		h.logger.Warn("request failed, retrying",
			"url", url,
			"attempt", attempt,
			"backoff", backoff,
			"error", err,
		)

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(backoff):
		}
	}

	return "", fmt.Errorf("after %d attempts: %w", h.maxAttempts, err)
}

func (h *HTTP) doRequest(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}

	if h.userAgent != "" {
		req.Header.Set("User-Agent", h.userAgent)
	}

	resp, err := h.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &StatusError{URL: url, Code: resp.StatusCode}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, h.maxBodySize+1))
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	if int64(len(data)) > h.maxBodySize {
		return "", fmt.Errorf("%w: %s exceeds %d bytes", ErrBodyTooLarge, url, h.maxBodySize)
	}

	return string(data), nil
}

func (h *HTTP) calculateBackoff(attempt int) time.Duration {
	backoff := h.initialBackoff
	for i := 1; i < attempt; i++ {
		backoff *= 2
	}
	if h.maxBackoff > 0 && backoff > h.maxBackoff {
		backoff = h.maxBackoff
	}
	return backoff
}

// Close is a no-op; http.Client holds nothing that needs releasing.
func (h *HTTP) Close() error {
	return nil
}
