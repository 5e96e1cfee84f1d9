package cli

import (
	"math"
	"strings"
	"testing"

	"github.com/matzehuels/dominosheet/pkg/geom"
	"github.com/matzehuels/dominosheet/pkg/pipeline"
)

func TestComputeGridDefaults(t *testing.T) {
	rep, err := computeGrid(pipeline.DefaultOptions())
	if err != nil {
		t.Fatal(err)
	}
	if rep.grid.Rows != 10 || rep.grid.Cols != 4 {
		t.Errorf("grid = %dx%d, want 10x4", rep.grid.Rows, rep.grid.Cols)
	}
	if math.Abs(rep.offsets.X-0.0625) > 1e-9 || math.Abs(rep.offsets.Y-0.15) > 1e-9 {
		t.Errorf("offsets = %+v, want {0.0625 0.15}", rep.offsets)
	}
	if rep.candidates != 2080 || rep.cycleLen != 2079 {
		t.Errorf("candidates = %d, cycle = %d; want 2080, 2079", rep.candidates, rep.cycleLen)
	}
}

func TestComputeGridNoFit(t *testing.T) {
	opts := pipeline.DefaultOptions()
	opts.Page.Margin = geom.Uniform(4)

	rep, err := computeGrid(opts)
	if err != nil {
		t.Fatal(err)
	}
	if !rep.grid.Empty() || rep.grid.Rows < 0 || rep.grid.Cols < 0 {
		t.Errorf("grid = %+v, want an empty non-negative grid", rep.grid)
	}
}

func TestComputeGridInvalid(t *testing.T) {
	opts := pipeline.DefaultOptions()
	opts.Page.Width = 0
	if _, err := computeGrid(opts); err == nil {
		t.Error("zero page width should fail")
	}
}

func TestGridCommandPlain(t *testing.T) {
	out, err := runCLI(t, "grid", "--plain", "-n", "3", "--strict-cursor")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"Rows: 10\n",
		"Cols: 4\n",
		"Offset: 0.0625, 0.1500\n",
		"Tiles/page: 40\n",
		"Tiles: 120\n",
		"Cycle: 2080\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("grid output missing %q:\n%s", want, out)
		}
	}
}

func TestGridCommandTable(t *testing.T) {
	out, err := runCLI(t, "grid", "--unit", "mm")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Unit") || !strings.Contains(out, "mm") {
		t.Errorf("grid table missing unit row:\n%s", out)
	}
}
