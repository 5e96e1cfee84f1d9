package geom

import (
	"github.com/matzehuels/dominosheet/pkg/errors"
)

// Margin holds the four independent page margins, in page units.
type Margin struct {
	Top    float64 `json:"top" toml:"top"`
	Left   float64 `json:"left" toml:"left"`
	Right  float64 `json:"right" toml:"right"`
	Bottom float64 `json:"bottom" toml:"bottom"`
}

// Uniform returns a margin with the same offset on all four sides.
func Uniform(v float64) Margin {
	return Margin{Top: v, Left: v, Right: v, Bottom: v}
}

// PageSpec describes one sheet size and how many sheets to fill.
//
// XScale and YScale are reserved for non-uniform stretching of the printed
// output and are carried through unchanged; the layout does not apply them.
type PageSpec struct {
	Width            float64 `json:"width" toml:"width"`
	Height           float64 `json:"height" toml:"height"`
	Margin           Margin  `json:"margin" toml:"margin"`
	Count            int     `json:"count" toml:"count"`
	CenterHorizontal bool    `json:"center_horizontal" toml:"center_horizontal"`
	CenterVertical   bool    `json:"center_vertical" toml:"center_vertical"`
	XScale           float64 `json:"x_scale,omitempty" toml:"x_scale"`
	YScale           float64 `json:"y_scale,omitempty" toml:"y_scale"`
}

// Letter returns a one-page US Letter spec (8.5 x 11 in) with uniform
// margins of margin inches, centered both ways.
func Letter(margin float64) PageSpec {
	return PageSpec{
		Width:            8.5,
		Height:           11,
		Margin:           Uniform(margin),
		Count:            1,
		CenterHorizontal: true,
		CenterVertical:   true,
		XScale:           1.0,
		YScale:           1.0,
	}
}

// WorkWidth returns the horizontal space inside the margins. It may be
// zero or negative for degenerate pages.
func (p PageSpec) WorkWidth() float64 {
	return p.Width - p.Margin.Left - p.Margin.Right
}

// WorkHeight returns the vertical space inside the margins. It may be
// zero or negative for degenerate pages.
func (p PageSpec) WorkHeight() float64 {
	return p.Height - p.Margin.Top - p.Margin.Bottom
}

// Validate rejects page specs that are malformed rather than merely too
// small to hold a tile.
func (p PageSpec) Validate() error {
	if err := errors.ValidateLength("page width", p.Width); err != nil {
		return err
	}
	if err := errors.ValidateLength("page height", p.Height); err != nil {
		return err
	}
	for _, m := range []struct {
		name string
		v    float64
	}{
		{"top margin", p.Margin.Top},
		{"left margin", p.Margin.Left},
		{"right margin", p.Margin.Right},
		{"bottom margin", p.Margin.Bottom},
	} {
		if err := errors.ValidateOffset(m.name, m.v); err != nil {
			return err
		}
	}
	return errors.ValidateCount("page count", p.Count)
}
