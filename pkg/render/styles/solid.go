package styles

import (
	"bytes"

	"github.com/matzehuels/dominosheet/pkg/layout"
)

// Solid paints black tiles with white pips and a blue margin border.
type Solid struct {
	m metrics
}

// NewSolid returns the solid style for a unit scale factor.
func NewSolid(scale float64) Solid { return Solid{m: newMetrics(scale)} }

func (Solid) Name() string                 { return NameSolid }
func (Solid) RenderDefs(buf *bytes.Buffer) {}

func (s Solid) RenderTile(buf *bytes.Buffer, r layout.Rect) {
	writeRect(buf, r, black.Hex(), "", 0)
}

func (s Solid) RenderPip(buf *bytes.Buffer, p layout.Pip) {
	writePip(buf, p, white.Hex())
}

func (s Solid) RenderLabel(buf *bytes.Buffer, l layout.Label) {
	writeLabel(buf, l, s.m, black.Hex())
}

func (s Solid) RenderBorder(buf *bytes.Buffer, r layout.Rect) {
	writeBorder(buf, r, s.m, blue.Hex())
}

func (s Solid) Palette() Palette {
	return Palette{
		Background:  white,
		Tile:        black,
		Stroke:      black,
		Pip:         white,
		Label:       black,
		Border:      blue,
		BorderWidth: s.m.borderWidth,
	}
}
