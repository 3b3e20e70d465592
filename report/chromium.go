package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ChromeConfig configures the in-process Chrome engine.
type ChromeConfig struct {
	// RemoteURL points at a running Chrome's DevTools websocket. Empty launches a
	// local headless browser.
	RemoteURL string
	Timeout   time.Duration
	NoSandbox bool
	Paper     Paper
	Logger    *slog.Logger
}

// ChromeRenderer prints HTML to PDF over the Chrome DevTools Protocol.
type ChromeRenderer struct {
	config      ChromeConfig
	logger      *slog.Logger
	allocCtx    context.Context
	allocCancel context.CancelFunc
}

func NewChromeRenderer(config ChromeConfig) *ChromeRenderer {
	if config.Timeout <= 0 {
		config.Timeout = 30 * time.Second
	}
	if config.Paper == (Paper{}) {
		config.Paper = A4
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r := &ChromeRenderer{config: config, logger: logger}
	if config.RemoteURL != "" {
		r.allocCtx, r.allocCancel = chromedp.NewRemoteAllocator(context.Background(), config.RemoteURL)
		return r
	}
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("disable-extensions", true),
		chromedp.Flag("font-render-hinting", "none"),
	)
	if config.NoSandbox {
		opts = append(opts, chromedp.NoSandbox)
	}
	r.allocCtx, r.allocCancel = chromedp.NewExecAllocator(context.Background(), opts...)
	return r
}

// RenderHTML loads html into a blank tab and prints it.
func (r *ChromeRenderer) RenderHTML(ctx context.Context, html string) ([]byte, error) {
	if strings.TrimSpace(html) == "" {
		return nil, errors.New("chrome: empty document")
	}
	ctx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()

	tab, closeTab := r.newTab(ctx)
	defer closeTab()

	p := r.config.Paper
	var pdf []byte
	err := chromedp.Run(tab,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPrintBackground(p.PrintBackground).
				WithPaperWidth(p.Width).
				WithPaperHeight(p.Height).
				WithMarginTop(p.MarginTop).
				WithMarginBottom(p.MarginBottom).
				WithMarginLeft(p.MarginLeft).
				WithMarginRight(p.MarginRight).
				WithLandscape(p.Landscape).
				Do(ctx)
			if err != nil {
				return err
			}
			pdf = data
			return nil
		}),
	)
	if err != nil {
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return nil, fmt.Errorf("chrome: print timed out after %s: %w", r.config.Timeout, err)
		}
		return nil, fmt.Errorf("chrome: print: %w", err)
	}
	return pdf, nil
}

// Ping opens and closes a tab.
func (r *ChromeRenderer) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.config.Timeout)
	defer cancel()
	tab, closeTab := r.newTab(ctx)
	defer closeTab()
	return chromedp.Run(tab, chromedp.Navigate("about:blank"))
}

// Close shuts down the browser allocator.
func (r *ChromeRenderer) Close() {
	if r.allocCancel != nil {
		r.allocCancel()
	}
}

// newTab opens a browser tab that also closes when ctx is done.
func (r *ChromeRenderer) newTab(ctx context.Context) (context.Context, context.CancelFunc) {
	tab, cancel := chromedp.NewContext(r.allocCtx, chromedp.WithLogf(func(format string, args ...any) {
		r.logger.Debug(fmt.Sprintf(format, args...), slog.String("engine", "chromedp"))
	}))
	stop := context.AfterFunc(ctx, cancel)
	return tab, func() {
		stop()
		cancel()
	}
}
