package extractor

import (
	"context"
	"fmt"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/31d4r/Raven/internal/logger"
)

type pdfExtractor struct {
	logger logger.Logger
}

// NewPDF creates an Extractor reading the native text layer of every page.
// Scanned pages without a text layer contribute nothing.
func NewPDF(log logger.Logger) Extractor {
	return &pdfExtractor{logger: log}
}

func (e *pdfExtractor) Extract(ctx context.Context, path string) (text string, err error) {
	// The parser panics on some malformed documents.
	defer func() {
		if r := recover(); r != nil {
			text, err = "", fmt.Errorf("%w: %v", ErrDecode, r)
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDecode, err)
	}
	defer f.Close()

	pages := make([]string, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		page := r.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}

		content, err := page.GetPlainText(nil)
		if err != nil {
			e.logger.Debug(ctx, "No text layer on page %d of %s: %v", i, path, err)
		}
		pages = append(pages, content)
	}

	joined := strings.Join(pages, "\n")
	if strings.TrimSpace(joined) == "" {
		return "", nil
	}
	return joined, nil
}
