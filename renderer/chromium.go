package renderer

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/png"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// BackendChromium is the name of the headless Chromium backend.
const BackendChromium = "chromium"

// htmlShell embeds the SVG markup in a margin-free white page so the
// screenshot contains exactly the diagram.
const htmlShell = `<!doctype html><html><head><meta charset="utf-8">` +
	`<style>html,body{margin:0;padding:0;background:#fff;}svg{display:block;width:100%%;height:100%%;}</style>` +
	`</head><body>%s</body></html>`

// fontTimeout bounds the wait for web fonts before a frame is
// captured.
const fontTimeout = 10 * time.Second

// ChromiumBackend renders SVG frames by screenshotting a headless
// Chromium page. The browser is launched once in Init and reused for
// every frame.
type ChromiumBackend struct {
	ctx     context.Context
	cancels []context.CancelFunc
	width   int
	height  int
}

func init() {
	Register(BackendChromium, func() Backend {
		return &ChromiumBackend{}
	})
}

// NewChromiumBackend creates a new headless Chromium backend.
func NewChromiumBackend() *ChromiumBackend {
	return &ChromiumBackend{}
}

// Name returns the backend identifier.
func (b *ChromiumBackend) Name() string {
	return BackendChromium
}

// Init launches the headless browser with a viewport of the given
// size.
func (b *ChromiumBackend) Init(width, height int) error {
	b.width, b.height = width, height

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(),
		append(chromedp.DefaultExecAllocatorOptions[:],
			chromedp.WindowSize(width, height))...)
	ctx, cancelCtx := chromedp.NewContext(allocCtx)
	b.ctx = ctx
	b.cancels = []context.CancelFunc{cancelCtx, cancelAlloc}

	if err := chromedp.Run(ctx, chromedp.EmulateViewport(int64(width), int64(height))); err != nil {
		b.Close()
		return fmt.Errorf("launching chromium: %w", err)
	}
	return nil
}

// Render loads the SVG into the page, waits for fonts to settle and
// captures a PNG screenshot of the viewport.
func (b *ChromiumBackend) Render(svg []byte) (image.Image, error) {
	if b.ctx == nil {
		return nil, ErrNotInitialized
	}

	html := fmt.Sprintf(htmlShell, svg)
	var ready bool
	var shot []byte
	err := chromedp.Run(b.ctx,
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.Poll("document.fonts.status === 'loaded'", &ready,
			chromedp.WithPollingTimeout(fontTimeout)),
		chromedp.CaptureScreenshot(&shot),
	)
	if err != nil {
		return nil, fmt.Errorf("rendering with chromium: %w", err)
	}

	img, err := png.Decode(bytes.NewReader(shot))
	if err != nil {
		return nil, fmt.Errorf("decoding screenshot: %w", err)
	}
	return img, nil
}

// Close shuts the browser down and releases the allocator.
func (b *ChromiumBackend) Close() {
	for _, cancel := range b.cancels {
		cancel()
	}
	b.cancels = nil
	b.ctx = nil
}
