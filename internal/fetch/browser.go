package fetch

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Browser renders pages in headless Chrome, for sources that build their content with JavaScript.
// It is safe for concurrent use.
type Browser struct {
	browser   *rod.Browser
	launcher  *launcher.Launcher
	timeout   time.Duration
	userAgent string
	logger    *slog.Logger
}

var _ Fetcher = (*Browser)(nil)

// NewBrowser launches headless Chrome (downloading it if needed). Close must be called.
func NewBrowser(timeout time.Duration, userAgent string, logger *slog.Logger) (*Browser, error) {
	l := launcher.New().Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connect to browser: %w", err)
	}

	return &Browser{
		browser:   browser,
		launcher:  l,
		timeout:   timeout,
		userAgent: userAgent,
		logger:    logger.With("fetcher", "browser"),
	}, nil
}

func (b *Browser) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if b.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, b.timeout)
		defer cancel()
	}

	page, err := b.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", fmt.Errorf("open page: %w", err)
	}
	defer page.Close()

	page = page.Context(ctx)

	if b.userAgent != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: b.userAgent}); err != nil {
			return "", fmt.Errorf("set user agent: %w", err)
		}
	}
	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{Width: 1920, Height: 1080}); err != nil {
		return "", fmt.Errorf("set viewport: %w", err)
	}

	if err := page.Navigate(url); err != nil {
		return "", fmt.Errorf("navigate: %w", err)
	}
	if err := page.WaitLoad(); err != nil {
		return "", fmt.Errorf("wait load: %w", err)
	}
	if err := page.WaitIdle(5 * time.Second); err != nil {
		b.logger.Debug("page did not go idle, using current DOM", "url", url, "error", err)
	}

	html, err := page.HTML()
	if err != nil {
		return "", fmt.Errorf("read html: %w", err)
	}

	return html, nil
}

func (b *Browser) Close() error {
	err := b.browser.Close()
	b.launcher.Kill()
	return err
}
