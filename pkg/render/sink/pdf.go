package sink

import (
	"context"

	"github.com/matzehuels/dominosheet/pkg/layout"
	"github.com/matzehuels/dominosheet/pkg/render"
)

// PDFOption configures PDF rendering.
type PDFOption func(*pdfRenderer)

type pdfRenderer struct {
	svgOpts []SVGOption
}

// WithPDFSVGOptions passes options through to the underlying SVG renderer.
func WithPDFSVGOptions(opts ...SVGOption) PDFOption {
	return func(r *pdfRenderer) { r.svgOpts = opts }
}

// RenderPDF renders every page of the sheet into one PDF via SVG conversion.
// A sheet without pages still produces a single blank page.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(ctx context.Context, s layout.Sheet, opts ...PDFOption) ([]byte, error) {
	r := pdfRenderer{}
	for _, opt := range opts {
		opt(&r)
	}
	pages := RenderSVGPages(s, r.svgOpts...)
	if len(pages) == 0 {
		pages = [][]byte{RenderSVG(s, r.svgOpts...)}
	}
	return render.ToPDF(ctx, pages...)
}
