package sink

import (
	"bytes"
	"math"

	"github.com/gogpu/gg"

	"github.com/matzehuels/dominosheet/pkg/errors"
	"github.com/matzehuels/dominosheet/pkg/layout"
	"github.com/matzehuels/dominosheet/pkg/render/styles"
)

const (
	// DefaultDPI is the raster resolution used when none is given.
	DefaultDPI = 150
	// maxPixels caps the canvas so a large page count cannot exhaust memory.
	maxPixels = 1 << 28
)

// PNGOption configures PNG rendering.
type PNGOption func(*pngRenderer)

type pngRenderer struct {
	style styles.Style
	dpi   float64
}

// WithDPI sets the raster resolution in dots per inch.
func WithDPI(dpi float64) PNGOption {
	return func(r *pngRenderer) { r.dpi = dpi }
}

// WithPNGStyle selects the palette the PNG is painted with.
func WithPNGStyle(s styles.Style) PNGOption {
	return func(r *pngRenderer) { r.style = s }
}

// RenderPNG rasterizes every page of the sheet, stacked top to bottom.
func RenderPNG(s layout.Sheet, opts ...PNGOption) ([]byte, error) {
	r := pngRenderer{style: styles.NewSolid(s.Tile.Unit.Scale()), dpi: DefaultDPI}
	for _, opt := range opts {
		opt(&r)
	}
	if r.dpi <= 0 || math.IsNaN(r.dpi) || math.IsInf(r.dpi, 0) {
		return nil, errors.New(errors.ErrCodeInvalidInput, "dpi must be positive, got %v", r.dpi)
	}

	// Sheet coordinates are in the sheet unit; dpi is per inch.
	ppu := r.dpi / s.Tile.Unit.Scale()
	pageW := int(math.Ceil(s.Spec.Width * ppu))
	pageH := int(math.Ceil(s.Spec.Height * ppu))
	pages := max(len(s.Pages), 1)
	if pageW <= 0 || pageH <= 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "page is smaller than one pixel at %v dpi", r.dpi)
	}
	if float64(pageW)*float64(pageH)*float64(pages) > maxPixels {
		return nil, errors.New(errors.ErrCodeInvalidInput,
			"%d pages of %dx%d px exceed the raster limit; lower the dpi", pages, pageW, pageH)
	}

	dc := gg.NewContext(pageW, pageH*pages)
	defer dc.Close()

	pal := r.style.Palette()
	dc.ClearWithColor(rgba(pal.Background))
	for i, p := range s.Pages {
		c := canvas{dc: dc, ppu: ppu, top: float64(i * pageH)}
		if err := c.page(p, pal); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "rasterize page %d", i+1)
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "encode png")
	}
	return buf.Bytes(), nil
}

// canvas maps sheet coordinates of one page onto the shared raster.
type canvas struct {
	dc  *gg.Context
	ppu float64
	top float64
}

func (c canvas) x(v float64) float64 { return v * c.ppu }
func (c canvas) y(v float64) float64 { return c.top + v*c.ppu }

func (c canvas) page(p layout.Page, pal styles.Palette) error {
	if p.Border != nil {
		if err := c.border(*p.Border, pal); err != nil {
			return err
		}
	}
	for _, t := range p.Tiles {
		if err := c.tile(t, pal); err != nil {
			return err
		}
	}
	return nil
}

func (c canvas) rect(r layout.Rect) {
	if r.Radius > 0 {
		c.dc.DrawRoundedRectangle(c.x(r.X), c.y(r.Y), r.W*c.ppu, r.H*c.ppu, r.Radius*c.ppu)
		return
	}
	c.dc.DrawRectangle(c.x(r.X), c.y(r.Y), r.W*c.ppu, r.H*c.ppu)
}

func (c canvas) tile(t layout.Tile, pal styles.Palette) error {
	c.rect(t.Outline)
	setColor(c.dc, pal.Tile)
	if err := c.dc.Fill(); err != nil {
		return err
	}
	if pal.StrokeWidth > 0 {
		c.rect(t.Outline)
		setColor(c.dc, pal.Stroke)
		c.dc.SetLineWidth(max(1, pal.StrokeWidth*c.ppu))
		if err := c.dc.Stroke(); err != nil {
			return err
		}
	}

	setColor(c.dc, pal.Pip)
	for _, p := range t.Pips {
		c.dc.DrawCircle(c.x(p.CX), c.y(p.CY), p.Diameter/2*c.ppu)
		if err := c.dc.Fill(); err != nil {
			return err
		}
	}
	return nil
}

func (c canvas) border(r layout.Rect, pal styles.Palette) error {
	r.Radius = 0
	c.rect(r)
	setColor(c.dc, pal.Border)
	c.dc.SetLineWidth(max(1, pal.BorderWidth*c.ppu))
	return c.dc.Stroke()
}

func setColor(dc *gg.Context, c styles.RGB) { dc.SetRGB(c.R, c.G, c.B) }

func rgba(c styles.RGB) gg.RGBA { return gg.RGB(c.R, c.G, c.B) }
