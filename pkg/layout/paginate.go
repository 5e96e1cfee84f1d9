package layout

import (
	"fmt"

	"github.com/matzehuels/dominosheet/pkg/geom"
	"github.com/matzehuels/dominosheet/pkg/pips"
)

// ValueSource supplies the domino value for each placed tile.
// *pool.Pool satisfies it.
type ValueSource interface {
	Next() (int, error)
}

// Options controls the optional parts of each tile's draw instructions.
type Options struct {
	RoundedCorners bool `json:"rounded_corners"` // outline carries the tile's corner radius
	PrintValues    bool `json:"print_values"`    // attach a "%04d" label below each tile
	MarginBorder   bool `json:"margin_border"`   // outline the work area of every page
}

// Rect is an axis-aligned rectangle with an optional corner radius.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	W      float64 `json:"w"`
	H      float64 `json:"h"`
	Radius float64 `json:"radius,omitempty"`
}

// Pip is one lit pip, by centre and diameter.
type Pip struct {
	Row      int     `json:"row"`
	Slot     int     `json:"slot"`
	CX       float64 `json:"cx"`
	CY       float64 `json:"cy"`
	Diameter float64 `json:"diameter"`
}

// Label is a text annotation anchored at its baseline start.
type Label struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Text string  `json:"text"`
}

// Tile is the draw-instruction batch for one placed domino.
type Tile struct {
	Page    int       `json:"page"`
	Row     int       `json:"row"`
	Col     int       `json:"col"`
	Value   int       `json:"value"`
	Outline Rect      `json:"outline"`
	Pips    []Pip     `json:"pips"`
	Label   *Label    `json:"label,omitempty"`
	Face    pips.Face `json:"-"`
}

// Paginate lays out page.Count pages. For every cell, in row-major order
// within each page, it takes one value from src, decodes it and hands the
// resulting Tile to emit. Any error stops pagination and is returned.
func Paginate(page geom.PageSpec, tile geom.Tile, src ValueSource, opts Options, emit func(Tile) error) error {
	grid := ComputeGrid(page, tile)
	off := ComputeOffsets(page, tile, grid)
	for p := range page.Count {
		for pl := range Placements(page, tile, grid, off) {
			value, err := src.Next()
			if err != nil {
				return fmt.Errorf("page %d cell (%d,%d): %w", p, pl.Row, pl.Col, err)
			}
			t, err := NewTile(tile, pl, value, opts)
			if err != nil {
				return fmt.Errorf("page %d cell (%d,%d): %w", p, pl.Row, pl.Col, err)
			}
			t.Page = p
			if err := emit(t); err != nil {
				return err
			}
		}
	}
	return nil
}

// NewTile decodes value and builds the draw instructions for a tile at pl.
func NewTile(tile geom.Tile, pl Placement, value int, opts Options) (Tile, error) {
	face, err := pips.Decode(value)
	if err != nil {
		return Tile{}, err
	}
	t := Tile{
		Row:   pl.Row,
		Col:   pl.Col,
		Value: value,
		Face:  face,
		Outline: Rect{
			X: pl.X, Y: pl.Y,
			W: tile.Width, H: tile.Height,
		},
		Pips: make([]Pip, 0, face.Count()),
	}
	if opts.RoundedCorners {
		t.Outline.Radius = tile.CornerRadius
	}
	for row := range face {
		for _, slot := range face.Lit(row) {
			cx, cy := pips.Center(tile, pl.X, pl.Y, row, slot)
			t.Pips = append(t.Pips, Pip{Row: row, Slot: slot, CX: cx, CY: cy, Diameter: tile.PipDiameter})
		}
	}
	if opts.PrintValues {
		t.Label = &Label{X: pl.X + tile.LabelX, Y: pl.Y + tile.LabelY, Text: fmt.Sprintf("%04d", value)}
	}
	return t, nil
}
