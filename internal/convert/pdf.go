package convert

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	"go.uber.org/zap"
)

const pdfRenderTimeout = 60 * time.Second

// PDFRenderer prints styled HTML to PDF through headless Chrome.
type PDFRenderer struct {
	logger *zap.Logger
}

// NewPDFRenderer returns a renderer logging through the provided logger.
func NewPDFRenderer(logger *zap.Logger) *PDFRenderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PDFRenderer{logger: logger}
}

// RenderPDF converts markdown resume content into PDF bytes.
func (r *PDFRenderer) RenderPDF(ctx context.Context, mdContent string) ([]byte, error) {
	html, err := RenderHTML(mdContent)
	if err != nil {
		return nil, err
	}
	return r.printHTML(ctx, html)
}

func (r *PDFRenderer) printHTML(ctx context.Context, html string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, pdfRenderTimeout)
	defer cancel()

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.NoSandbox,
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	taskCtx, cancelTask := chromedp.NewContext(allocCtx)
	defer cancelTask()

	dataURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(html))

	var pdf []byte
	err := chromedp.Run(taskCtx,
		chromedp.Navigate(dataURL),
		chromedp.WaitReady("body"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("printing pdf via headless chrome: %w", err)
	}

	r.logger.Debug("rendered pdf", zap.Int("bytes", len(pdf)))

	return pdf, nil
}
