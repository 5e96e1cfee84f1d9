package sink

import (
	"bytes"
	"fmt"

	"github.com/matzehuels/dominosheet/pkg/layout"
	"github.com/matzehuels/dominosheet/pkg/render/styles"
)

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	style styles.Style
	page  int
}

// WithStyle selects the visual style (default solid).
func WithStyle(s styles.Style) SVGOption { return func(r *svgRenderer) { r.style = s } }

// WithPage selects which page [RenderSVG] draws (default 0).
func WithPage(i int) SVGOption { return func(r *svgRenderer) { r.page = i } }

// RenderSVG draws one page of the sheet. A page index outside the sheet
// yields an empty page of the right size.
func RenderSVG(s layout.Sheet, opts ...SVGOption) []byte {
	r := newSVGRenderer(s, opts...)
	var page layout.Page
	if r.page >= 0 && r.page < len(s.Pages) {
		page = s.Pages[r.page]
	}
	return r.render(s, page)
}

// RenderSVGPages draws every page of the sheet, in order.
func RenderSVGPages(s layout.Sheet, opts ...SVGOption) [][]byte {
	r := newSVGRenderer(s, opts...)
	out := make([][]byte, len(s.Pages))
	for i, p := range s.Pages {
		out[i] = r.render(s, p)
	}
	return out
}

func newSVGRenderer(s layout.Sheet, opts ...SVGOption) svgRenderer {
	r := svgRenderer{style: styles.NewSolid(s.Tile.Unit.Scale())}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

func (r svgRenderer) render(s layout.Sheet, p layout.Page) []byte {
	w, h := s.Spec.Width, s.Spec.Height
	unit := s.Tile.Unit.SVG()

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.4f %.4f" width="%.4f%s" height="%.4f%s">`+"\n",
		w, h, w, unit, h, unit)
	r.style.RenderDefs(&buf)
	fmt.Fprintf(&buf, `  <rect width="%.4f" height="%.4f" fill="%s"/>`+"\n", w, h, r.style.Palette().Background.Hex())

	if p.Border != nil {
		r.style.RenderBorder(&buf, *p.Border)
	}
	for _, t := range p.Tiles {
		r.style.RenderTile(&buf, t.Outline)
		for _, pip := range t.Pips {
			r.style.RenderPip(&buf, pip)
		}
		if t.Label != nil {
			r.style.RenderLabel(&buf, *t.Label)
		}
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}
