package layout

import (
	"iter"

	"github.com/matzehuels/dominosheet/pkg/geom"
)

// Placement is the top-left corner of one grid cell.
type Placement struct {
	Row int     `json:"row"`
	Col int     `json:"col"`
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
}

// Placements yields every cell of one page in row-major order: row 0 first,
// columns left to right. The sequence is lazy and can be ranged over any
// number of times with identical results.
func Placements(page geom.PageSpec, tile geom.Tile, grid Grid, off Offsets) iter.Seq[Placement] {
	return func(yield func(Placement) bool) {
		for row := range grid.Rows {
			y := page.Margin.Top + off.Y + float64(row)*tile.RowSpacing + float64(row)*tile.Height
			for col := range grid.Cols {
				x := page.Margin.Left + off.X + float64(col)*tile.Width + float64(col)*tile.Padding
				if !yield(Placement{Row: row, Col: col, X: x, Y: y}) {
					return
				}
			}
		}
	}
}
