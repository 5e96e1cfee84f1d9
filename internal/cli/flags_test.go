package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dominosheet/pkg/layout"
	"github.com/matzehuels/dominosheet/pkg/pipeline"
)

func parseSheetFlags(t *testing.T, args ...string) (pipeline.Options, error) {
	t.Helper()
	flags := newSheetFlags()
	cmd := &cobra.Command{Use: "test"}
	flags.register(cmd)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags(%v): %v", args, err)
	}
	return flags.options(cmd)
}

func TestSheetFlagsDefaults(t *testing.T) {
	opts, err := parseSheetFlags(t)
	if err != nil {
		t.Fatal(err)
	}
	d := pipeline.DefaultOptions()
	if opts.Page != d.Page || opts.Unit != d.Unit || opts.Style != d.Style || opts.Randomize != d.Randomize {
		t.Errorf("options without flags = %+v, want defaults %+v", opts, d)
	}
}

func TestSheetFlagsOverride(t *testing.T) {
	opts, err := parseSheetFlags(t,
		"-n", "3", "--margin", "0.25", "--unit", "mm", "--seed", "9",
		"--labels", "--border", "--rounded=false", "--randomize=false",
		"--center-x=false", "--style", "outline", "--dpi", "300", "--all")
	if err != nil {
		t.Fatal(err)
	}

	if opts.Page.Count != 3 {
		t.Errorf("Page.Count = %d, want 3", opts.Page.Count)
	}
	if opts.Page.Margin.Top != 0.25 || opts.Page.Margin.Right != 0.25 {
		t.Errorf("Page.Margin = %+v, want 0.25 everywhere", opts.Page.Margin)
	}
	if opts.Page.CenterHorizontal || !opts.Page.CenterVertical {
		t.Errorf("centering = %v/%v, want false/true", opts.Page.CenterHorizontal, opts.Page.CenterVertical)
	}
	if opts.Unit != "mm" || opts.Seed != 9 || opts.Style != "outline" || opts.DPI != 300 {
		t.Errorf("unit/seed/style/dpi = %s/%d/%s/%g", opts.Unit, opts.Seed, opts.Style, opts.DPI)
	}
	if !opts.PrintValues || !opts.MarginBorder || opts.RoundedCorners || opts.Randomize || !opts.AllValues {
		t.Errorf("switches = %+v", opts)
	}
}

func TestSheetFlagsConfigPrecedence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.toml")
	config := "unit = \"cm\"\nprint_values = true\n\n[page]\ncount = 4\n"
	if err := os.WriteFile(path, []byte(config), 0o644); err != nil {
		t.Fatal(err)
	}

	opts, err := parseSheetFlags(t, "--config", path, "-n", "2")
	if err != nil {
		t.Fatal(err)
	}
	if opts.Page.Count != 2 {
		t.Errorf("Page.Count = %d, the flag should win over the file", opts.Page.Count)
	}
	if opts.Unit != "cm" || !opts.PrintValues {
		t.Errorf("unit = %q, print_values = %v; unset flags must keep file values", opts.Unit, opts.PrintValues)
	}
	if opts.Page.Width != 8.5 {
		t.Errorf("Page.Width = %g, keys missing from the file keep their default", opts.Page.Width)
	}
}

func TestSheetFlagsValuesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.txt")
	config := filepath.Join(filepath.Dir(path), "sheet.toml")
	if err := os.WriteFile(config, []byte("values = [1, 2, 3]\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	opts, err := parseSheetFlags(t, "--config", config, "--values", path)
	if err != nil {
		t.Fatal(err)
	}
	if opts.ValuesFile != path || opts.Values != nil {
		t.Errorf("ValuesFile = %q, Values = %v; --values replaces inline values", opts.ValuesFile, opts.Values)
	}
}

func TestSheetFlagsMissingConfig(t *testing.T) {
	if _, err := parseSheetFlags(t, "--config", filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("missing config file should fail")
	}
}

func TestSheetFlagsUnitConvertsDefaultPage(t *testing.T) {
	tests := []struct {
		unit       string
		wantWidth  float64
		wantMargin float64
	}{
		{"mm", 215.9, 15.24},
		{"cm", 21.59, 1.524},
		{"inch", 8.5, 0.6},
	}
	for _, tt := range tests {
		t.Run(tt.unit, func(t *testing.T) {
			opts, err := parseSheetFlags(t, "--unit", tt.unit)
			if err != nil {
				t.Fatal(err)
			}
			if d := opts.Page.Width - tt.wantWidth; d > 1e-9 || d < -1e-9 {
				t.Errorf("Page.Width = %g, want %g", opts.Page.Width, tt.wantWidth)
			}
			if d := opts.Page.Margin.Left - tt.wantMargin; d > 1e-9 || d < -1e-9 {
				t.Errorf("Page.Margin.Left = %g, want %g", opts.Page.Margin.Left, tt.wantMargin)
			}
			if g := layout.ComputeGrid(opts.Page, opts.Tile()); g.Rows != 10 || g.Cols != 4 {
				t.Errorf("grid = %dx%d, want the Letter grid 10x4", g.Rows, g.Cols)
			}
		})
	}
}

func TestSheetFlagsUnitKeepsExplicitLengths(t *testing.T) {
	opts, err := parseSheetFlags(t, "--unit", "mm", "--width", "210", "--height", "297", "--margin", "10")
	if err != nil {
		t.Fatal(err)
	}
	if opts.Page.Width != 210 || opts.Page.Height != 297 || opts.Page.Margin.Top != 10 {
		t.Errorf("page = %+v, explicit lengths must be taken as given", opts.Page)
	}
}
