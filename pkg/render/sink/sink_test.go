package sink

import (
	"testing"

	"github.com/matzehuels/dominosheet/pkg/geom"
	"github.com/matzehuels/dominosheet/pkg/layout"
	"github.com/matzehuels/dominosheet/pkg/pool"
)

// tileSheet builds a sheet with exactly one tile per page.
func tileSheet(t testing.TB, pages int, values []int, opts layout.Options) layout.Sheet {
	t.Helper()
	page := geom.PageSpec{Width: 1.7, Height: 0.5, Count: pages}
	tile := geom.NewTile(geom.UnitInch, 0.5)
	s, err := layout.Build(page, tile, pool.New(values), opts)
	if err != nil {
		t.Fatalf("layout.Build() error: %v", err)
	}
	return s
}

func letterSheet(t testing.TB, opts layout.Options) layout.Sheet {
	t.Helper()
	page := geom.Letter(0.6)
	tile := geom.NewTile(geom.UnitInch, 0.5)
	s, err := layout.Build(page, tile, pool.New([]int{0, 1, 2, 4095}), opts)
	if err != nil {
		t.Fatalf("layout.Build() error: %v", err)
	}
	return s
}
