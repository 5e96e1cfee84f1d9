package layout

import (
	"math"

	"github.com/matzehuels/dominosheet/pkg/geom"
)

// offsetPrecision is the number of decimals centering offsets are rounded
// to, so that every page shares bit-identical coordinates.
const offsetPrecision = 4

// Offsets shift the whole grid inside the work area.
type Offsets struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ComputeOffsets centres the grid on each axis whose centering flag is set.
// An offset is negative when the grid is wider than the work area.
func ComputeOffsets(page geom.PageSpec, tile geom.Tile, grid Grid) Offsets {
	var o Offsets
	if page.CenterHorizontal {
		span := float64(grid.Cols)*(tile.Width+tile.Padding) - tile.Padding
		o.X = round((page.WorkWidth() - span) / 2)
	}
	if page.CenterVertical {
		span := float64(grid.Rows)*(tile.Height+tile.RowSpacing) - tile.RowSpacing
		o.Y = round((page.WorkHeight() - span) / 2)
	}
	return o
}

func round(v float64) float64 {
	p := math.Pow10(offsetPrecision)
	return math.Round(v*p) / p
}
