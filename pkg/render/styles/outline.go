package styles

import (
	"bytes"

	"github.com/matzehuels/dominosheet/pkg/geom"
	"github.com/matzehuels/dominosheet/pkg/layout"
)

// outlineInches is the tile stroke width of the outline style.
const outlineInches = 0.01

// Outline paints white tiles with a thin black outline and black pips. It
// uses far less ink than [Solid].
type Outline struct {
	m      metrics
	stroke float64
}

// NewOutline returns the outline style for a unit scale factor.
func NewOutline(scale float64) Outline {
	return Outline{m: newMetrics(scale), stroke: geom.Dimension(outlineInches, scale)}
}

func (Outline) Name() string                 { return NameOutline }
func (Outline) RenderDefs(buf *bytes.Buffer) {}

func (o Outline) RenderTile(buf *bytes.Buffer, r layout.Rect) {
	writeRect(buf, r, white.Hex(), black.Hex(), o.stroke)
}

func (o Outline) RenderPip(buf *bytes.Buffer, p layout.Pip) {
	writePip(buf, p, black.Hex())
}

func (o Outline) RenderLabel(buf *bytes.Buffer, l layout.Label) {
	writeLabel(buf, l, o.m, black.Hex())
}

func (o Outline) RenderBorder(buf *bytes.Buffer, r layout.Rect) {
	writeBorder(buf, r, o.m, blue.Hex())
}

func (o Outline) Palette() Palette {
	return Palette{
		Background:  white,
		Tile:        white,
		Stroke:      black,
		Pip:         black,
		Label:       black,
		Border:      blue,
		StrokeWidth: o.stroke,
		BorderWidth: o.m.borderWidth,
	}
}
