package layout

import (
	"math"

	"github.com/matzehuels/dominosheet/pkg/geom"
)

// Grid is the number of tile rows and columns that fit on one page.
type Grid struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// Cells returns the number of tiles per page.
func (g Grid) Cells() int { return g.Rows * g.Cols }

// Empty reports whether no tile fits.
func (g Grid) Empty() bool { return g.Rows == 0 || g.Cols == 0 }

// ComputeGrid counts the rows and columns of tiles that fit in the work
// area of page. Each count is clamped to zero when not even one tile fits.
func ComputeGrid(page geom.PageSpec, tile geom.Tile) Grid {
	return Grid{
		Rows: fit(page.WorkHeight(), tile.Height, tile.RowSpacing),
		Cols: fit(page.WorkWidth(), tile.Width, tile.Padding),
	}
}

// maxFit bounds a single row or column count so that huge or degenerate
// dimensions never overflow the int conversion.
const maxFit = math.MaxInt32

// fit returns 1 + floor((space - size) / (size + gap)), clamped to
// [0, maxFit]. NaN counts as zero.
func fit(space, size, gap float64) int {
	n := 1 + math.Floor((space-size)/(size+gap))
	if !(n > 0) {
		return 0
	}
	return int(min(n, maxFit))
}
