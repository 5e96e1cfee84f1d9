package styles

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/dominosheet/pkg/errors"
	"github.com/matzehuels/dominosheet/pkg/geom"
	"github.com/matzehuels/dominosheet/pkg/layout"
)

// Style names accepted by [Lookup].
const (
	NameSolid   = "solid"
	NameOutline = "outline"
)

const (
	// labelPoints is the label font size in points.
	labelPoints = 6.0
	// borderInches is the stroke width of the margin border.
	borderInches = 0.01
	labelFont    = "Courier, monospace"
)

// Style defines the visual appearance of a sheet.
type Style interface {
	// Name returns the name the style is registered under.
	Name() string
	// RenderDefs writes SVG <defs> content, if any.
	RenderDefs(buf *bytes.Buffer)
	// RenderTile writes the tile outline.
	RenderTile(buf *bytes.Buffer, r layout.Rect)
	// RenderPip writes one lit pip.
	RenderPip(buf *bytes.Buffer, p layout.Pip)
	// RenderLabel writes a value label.
	RenderLabel(buf *bytes.Buffer, l layout.Label)
	// RenderBorder writes the margin border of a page.
	RenderBorder(buf *bytes.Buffer, r layout.Rect)
	// Palette returns the colours used for raster output.
	Palette() Palette
}

// RGB is a colour with components in [0, 1].
type RGB struct{ R, G, B float64 }

// Hex formats the colour as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", channel(c.R), channel(c.G), channel(c.B))
}

func channel(v float64) uint8 {
	return uint8(max(0, min(1, v))*255 + 0.5)
}

// Palette lists the colours a style paints with.
type Palette struct {
	Background RGB
	Tile       RGB
	Stroke     RGB
	Pip        RGB
	Label      RGB
	Border     RGB

	// StrokeWidth is the tile outline width in sheet units (0 for none).
	StrokeWidth float64
	// BorderWidth is the margin border width in sheet units.
	BorderWidth float64
}

var (
	black = RGB{0, 0, 0}
	white = RGB{1, 1, 1}
	blue  = RGB{0, 0, 1}
)

// Names returns the registered style names in sorted order.
func Names() []string {
	return []string{NameOutline, NameSolid}
}

// Lookup returns the named style sized for unit u. Names are matched
// case-insensitively; the empty name selects [Solid].
func Lookup(name string, u geom.Unit) (Style, error) {
	scale := u.Scale()
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", NameSolid:
		return NewSolid(scale), nil
	case NameOutline:
		return NewOutline(scale), nil
	}
	return nil, errors.New(errors.ErrCodeInvalidStyle,
		"unknown style %q (valid: %s)", name, strings.Join(Names(), ", "))
}

// Valid reports whether name is a known style.
func Valid(name string) bool {
	return name == "" || slices.Contains(Names(), strings.ToLower(strings.TrimSpace(name)))
}

// metrics are the unit-scaled sizes shared by both styles.
type metrics struct {
	fontSize    float64
	borderWidth float64
}

func newMetrics(scale float64) metrics {
	return metrics{
		fontSize:    geom.Dimension(labelPoints/72, scale),
		borderWidth: geom.Dimension(borderInches, scale),
	}
}

func writeRect(buf *bytes.Buffer, r layout.Rect, fill, stroke string, strokeWidth float64) {
	fmt.Fprintf(buf, `  <rect x="%.4f" y="%.4f" width="%.4f" height="%.4f"`, r.X, r.Y, r.W, r.H)
	if r.Radius > 0 {
		fmt.Fprintf(buf, ` rx="%.4f" ry="%.4f"`, r.Radius, r.Radius)
	}
	fmt.Fprintf(buf, ` fill="%s"`, fill)
	if strokeWidth > 0 {
		fmt.Fprintf(buf, ` stroke="%s" stroke-width="%.4f"`, stroke, strokeWidth)
	}
	buf.WriteString("/>\n")
}

func writePip(buf *bytes.Buffer, p layout.Pip, fill string) {
	fmt.Fprintf(buf, `  <circle cx="%.4f" cy="%.4f" r="%.4f" fill="%s"/>`+"\n", p.CX, p.CY, p.Diameter/2, fill)
}

func writeLabel(buf *bytes.Buffer, l layout.Label, m metrics, fill string) {
	fmt.Fprintf(buf, `  <text x="%.4f" y="%.4f" font-family="%s" font-size="%.4f" fill="%s">%s</text>`+"\n",
		l.X, l.Y, labelFont, m.fontSize, fill, l.Text)
}

func writeBorder(buf *bytes.Buffer, r layout.Rect, m metrics, stroke string) {
	r.Radius = 0
	writeRect(buf, r, "none", stroke, m.borderWidth)
}
