package prerender

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/chromedp/chromedp"
)

// StaticRenderer renders pages in process by sending requests to the go-app
// handler. The handler prerenders every page on the server, so the snapshot
// holds the same markup the browser receives before the wasm loads.
type StaticRenderer struct {
	Handler http.Handler
}

// Render implements Renderer.
func (s StaticRenderer) Render(ctx context.Context, path string) ([]byte, error) {
	req := httptest.NewRequest(http.MethodGet, path, nil).WithContext(ctx)
	rec := httptest.NewRecorder()
	s.Handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", rec.Code)
	}
	return rec.Body.Bytes(), nil
}

// DefaultWaitSelector is the element the site renders once a page is mounted
const DefaultWaitSelector = "main.main-content"

// BrowserRenderer renders pages in headless Chrome against a running server,
// so the snapshot also holds what the wasm application changed after load.
type BrowserRenderer struct {
	baseURL      string
	waitSelector string
	timeout      time.Duration

	browserCtx context.Context
	cancel     context.CancelFunc
}

// BrowserOption configures a BrowserRenderer.
type BrowserOption func(*browserOptions)

type browserOptions struct {
	execPath     string
	waitSelector string
	timeout      time.Duration
}

// WithExecPath sets the browser binary; by default chromedp looks it up.
func WithExecPath(path string) BrowserOption {
	return func(o *browserOptions) { o.execPath = path }
}

// WithWaitSelector sets the element waited for before the document is captured.
func WithWaitSelector(sel string) BrowserOption {
	return func(o *browserOptions) { o.waitSelector = sel }
}

// WithPageTimeout bounds the time spent on one page.
func WithPageTimeout(d time.Duration) BrowserOption {
	return func(o *browserOptions) { o.timeout = d }
}

// NewBrowserRenderer starts a headless browser. Close must be called to stop it.
func NewBrowserRenderer(ctx context.Context, baseURL string, opts ...BrowserOption) (*BrowserRenderer, error) {
	o := browserOptions{
		waitSelector: DefaultWaitSelector,
		timeout:      30 * time.Second,
	}
	for _, opt := range opts {
		opt(&o)
	}

	allocOpts := append([]chromedp.ExecAllocatorOption{}, chromedp.DefaultExecAllocatorOptions[:]...)
	allocOpts = append(allocOpts,
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.NoSandbox,
	)
	if o.execPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(o.execPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, allocOpts...)
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	cancel := func() {
		cancelBrowser()
		cancelAlloc()
	}

	// An empty Run starts the browser
	if err := chromedp.Run(browserCtx); err != nil {
		cancel()
		return nil, fmt.Errorf("start browser: %w", err)
	}

	return &BrowserRenderer{
		baseURL:      strings.TrimRight(baseURL, "/"),
		waitSelector: o.waitSelector,
		timeout:      o.timeout,
		browserCtx:   browserCtx,
		cancel:       cancel,
	}, nil
}

// Render implements Renderer. Every page is loaded in a new tab.
func (b *BrowserRenderer) Render(ctx context.Context, path string) ([]byte, error) {
	tabCtx, cancelTab := chromedp.NewContext(b.browserCtx)
	defer cancelTab()
	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, b.timeout)
	defer cancelTimeout()
	stop := context.AfterFunc(ctx, cancelTab)
	defer stop()

	var html string
	err := chromedp.Run(tabCtx,
		chromedp.Navigate(b.baseURL+path),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.WaitVisible(b.waitSelector, chromedp.ByQuery),
		chromedp.OuterHTML("html", &html, chromedp.ByQuery),
	)
	if err != nil {
		return nil, err
	}
	return []byte("<!DOCTYPE html>\n" + html), nil
}

// Close stops the browser.
func (b *BrowserRenderer) Close() {
	b.cancel()
}
