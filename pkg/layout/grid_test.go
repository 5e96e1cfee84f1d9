package layout

import (
	"math"
	"testing"

	"github.com/matzehuels/dominosheet/pkg/geom"
)

const eps = 1e-9

func near(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func letterInch() (geom.PageSpec, geom.Tile) {
	return geom.Letter(0.6), geom.NewTile(geom.UnitInch, 0.5)
}

func TestComputeGridLetter(t *testing.T) {
	page, tile := letterInch()
	got := ComputeGrid(page, tile)
	if got.Cols != 4 {
		t.Errorf("Cols = %d, want 4", got.Cols)
	}
	if got.Rows != 10 {
		t.Errorf("Rows = %d, want 10", got.Rows)
	}
	if got.Cells() != 40 {
		t.Errorf("Cells() = %d, want 40", got.Cells())
	}
}

func TestComputeGrid(t *testing.T) {
	tile := geom.NewTile(geom.UnitInch, 0.5)
	tests := []struct {
		name     string
		page     geom.PageSpec
		wantRows int
		wantCols int
	}{
		{
			name:     "exactly one tile",
			page:     geom.PageSpec{Width: 1.7, Height: 0.5},
			wantRows: 1, wantCols: 1,
		},
		{
			name:     "just short of a second column",
			page:     geom.PageSpec{Width: 1.7*2 + 0.125 - 0.001, Height: 0.5},
			wantRows: 1, wantCols: 1,
		},
		{
			name:     "room for two columns",
			page:     geom.PageSpec{Width: 1.7*2 + 0.125 + 1e-9, Height: 0.5},
			wantRows: 1, wantCols: 2,
		},
		{
			name:     "narrower than a tile",
			page:     geom.PageSpec{Width: 1.0, Height: 5},
			wantRows: 5, wantCols: 0,
		},
		{
			name:     "shorter than a tile",
			page:     geom.PageSpec{Width: 5, Height: 0.4},
			wantRows: 0, wantCols: 2,
		},
		{
			name:     "margins swallow the page",
			page:     geom.PageSpec{Width: 8.5, Height: 11, Margin: geom.Uniform(6)},
			wantRows: 0, wantCols: 0,
		},
		{
			name:     "deeply negative work area",
			page:     geom.PageSpec{Width: 1, Height: 1, Margin: geom.Uniform(40)},
			wantRows: 0, wantCols: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeGrid(tt.page, tile)
			if got.Rows != tt.wantRows || got.Cols != tt.wantCols {
				t.Errorf("ComputeGrid() = %dx%d, want %dx%d", got.Rows, got.Cols, tt.wantRows, tt.wantCols)
			}
			if got.Rows < 0 || got.Cols < 0 {
				t.Errorf("ComputeGrid() returned negative dimensions %+v", got)
			}
		})
	}
}

func TestComputeGridFitsImpliesNonEmpty(t *testing.T) {
	tile := geom.NewTile(geom.UnitMM, 0.5)
	for w := 10.0; w < 400; w += 7.3 {
		for h := 5.0; h < 400; h += 11.1 {
			page := geom.PageSpec{Width: w, Height: h, Margin: geom.Uniform(5)}
			g := ComputeGrid(page, tile)
			fitsW := page.WorkWidth() >= tile.Width
			fitsH := page.WorkHeight() >= tile.Height
			if fitsW != (g.Cols >= 1) {
				t.Fatalf("w=%v: fits=%v but Cols=%d", w, fitsW, g.Cols)
			}
			if fitsH != (g.Rows >= 1) {
				t.Fatalf("h=%v: fits=%v but Rows=%d", h, fitsH, g.Rows)
			}
		}
	}
}

func TestComputeGridHugePageIsBounded(t *testing.T) {
	tile := geom.NewTile(geom.UnitInch, 0.5)
	tests := []struct {
		name string
		page geom.PageSpec
	}{
		{"million inch page", geom.PageSpec{Width: 1e6, Height: 1e6}},
		{"beyond int range", geom.PageSpec{Width: 1e300, Height: 1e300}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := ComputeGrid(tt.page, tile)
			if g.Rows <= 0 || g.Cols <= 0 || g.Rows > maxFit || g.Cols > maxFit {
				t.Errorf("grid = %+v, want positive counts no larger than %d", g, maxFit)
			}
		})
	}
}

func TestGridEmpty(t *testing.T) {
	if !(Grid{Rows: 3}).Empty() {
		t.Error("Grid{Rows: 3}.Empty() = false, want true")
	}
	if (Grid{Rows: 1, Cols: 1}).Empty() {
		t.Error("Grid{1,1}.Empty() = true, want false")
	}
}
