package layout

import (
	"testing"

	"github.com/matzehuels/dominosheet/pkg/geom"
)

func TestComputeOffsetsLetter(t *testing.T) {
	page, tile := letterInch()
	got := ComputeOffsets(page, tile, ComputeGrid(page, tile))
	if !near(got.X, 0.0625, eps) {
		t.Errorf("X = %v, want 0.0625", got.X)
	}
	if !near(got.Y, 0.15, eps) {
		t.Errorf("Y = %v, want 0.15", got.Y)
	}
}

func TestComputeOffsetsDisabled(t *testing.T) {
	page, tile := letterInch()
	page.CenterHorizontal = false
	page.CenterVertical = false
	got := ComputeOffsets(page, tile, ComputeGrid(page, tile))
	if got != (Offsets{}) {
		t.Errorf("ComputeOffsets() = %+v, want zero", got)
	}
}

func TestComputeOffsetsIndependentAxes(t *testing.T) {
	page, tile := letterInch()
	page.CenterVertical = false
	got := ComputeOffsets(page, tile, ComputeGrid(page, tile))
	if got.Y != 0 || got.X == 0 {
		t.Errorf("horizontal only: %+v", got)
	}
}

func TestComputeOffsetsExactFit(t *testing.T) {
	tile := geom.NewTile(geom.UnitInch, 0.5)
	// Three columns and four rows fill the work area (up to a sliver that
	// keeps the column count away from a floating-point boundary).
	page := geom.PageSpec{
		Width:            3*1.7 + 2*0.125 + 1.0 + 1e-6,
		Height:           4*0.5 + 3*0.5 + 1.0,
		Margin:           geom.Uniform(0.5),
		CenterHorizontal: true,
		CenterVertical:   true,
	}
	grid := ComputeGrid(page, tile)
	if grid.Cols != 3 || grid.Rows != 4 {
		t.Fatalf("grid = %+v, want 4x3", grid)
	}
	got := ComputeOffsets(page, tile, grid)
	if !near(got.X, 0, 1e-4) || !near(got.Y, 0, 1e-4) {
		t.Errorf("exact fit offsets = %+v, want 0", got)
	}
}

func TestComputeOffsetsRounded(t *testing.T) {
	tile := geom.NewTile(geom.UnitInch, 0.5)
	page := geom.PageSpec{Width: 3.3333333, Height: 1, CenterHorizontal: true}
	got := ComputeOffsets(page, tile, ComputeGrid(page, tile))
	if got.X != 0.8167 {
		t.Errorf("X = %v, want 0.8167", got.X)
	}
}

func TestComputeOffsetsDegenerate(t *testing.T) {
	tile := geom.NewTile(geom.UnitInch, 0.5)
	page := geom.PageSpec{
		Width: 1, Height: 0.3,
		CenterHorizontal: true, CenterVertical: true,
	}
	grid := ComputeGrid(page, tile)
	if !grid.Empty() {
		t.Fatalf("grid = %+v, want empty", grid)
	}
	// Must not panic; the value itself carries no placement meaning.
	_ = ComputeOffsets(page, tile, grid)

	// A grid forced wider than the work area yields a negative offset.
	got := ComputeOffsets(page, tile, Grid{Rows: 1, Cols: 2})
	if got.X >= 0 {
		t.Errorf("overflowing grid X = %v, want negative", got.X)
	}
}
