package pdf

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// A4 paper in inches, as expected by Page.printToPDF.
const (
	A4Width  = 8.27
	A4Height = 11.69
)

// DefaultMargin is applied to every page edge, in inches (about 10mm).
const DefaultMargin = 0.4

// DefaultTimeout bounds a single browser session.
const DefaultTimeout = 60 * time.Second

// BrowserExporter prints the patched page with headless Chrome.
// Requires Chrome/Chromium to be installed on the system.
type BrowserExporter struct {
	ExecPath string // optional Chrome binary; chromedp searches PATH otherwise
	Timeout  time.Duration
	Margin   float64
	Verbose  bool
}

// NewBrowserExporter returns an exporter with A4 defaults.
func NewBrowserExporter() *BrowserExporter {
	return &BrowserExporter{Timeout: DefaultTimeout, Margin: DefaultMargin}
}

// Export reads job.HTMLPath, prints it and writes job.Output.
func (e *BrowserExporter) Export(ctx context.Context, job Job) error {
	content, err := os.ReadFile(job.HTMLPath)
	if err != nil {
		return &ExportError{Locale: job.Locale, Message: "failed to read patched HTML", Cause: err}
	}

	buf, err := e.Print(ctx, string(content))
	if err != nil {
		return &ExportError{Locale: job.Locale, Message: "browser rendering failed", Cause: err}
	}

	if err := os.WriteFile(job.Output, buf, 0644); err != nil {
		return &ExportError{Locale: job.Locale, Message: "failed to write PDF", Cause: err}
	}

	if _, err := Check(job.Output); err != nil {
		_ = os.Remove(job.Output)
		return &ExportError{Locale: job.Locale, Message: "browser produced an unusable PDF", Cause: err}
	}
	return nil
}

// Print loads html as the document content of a blank page and returns the PDF bytes.
// The browser process is released on every return path.
func (e *BrowserExporter) Print(ctx context.Context, html string) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if e.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(e.ExecPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	timeout := e.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	browserCtx, cancel = context.WithTimeout(browserCtx, timeout)
	defer cancel()

	margin := e.Margin
	if margin < 0 {
		margin = 0
	}

	if e.Verbose {
		log.Printf("[BROWSER] Printing %d bytes of HTML", len(html))
	}

	var buf []byte
	err := chromedp.Run(browserCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, html).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			buf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(A4Width).
				WithPaperHeight(A4Height).
				WithMarginTop(margin).
				WithMarginBottom(margin).
				WithMarginLeft(margin).
				WithMarginRight(margin).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("print to PDF failed: %w", err)
	}

	if e.Verbose {
		log.Printf("[BROWSER] Rendered PDF: %d bytes", len(buf))
	}
	return buf, nil
}
