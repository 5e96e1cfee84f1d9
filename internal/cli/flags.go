package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/dominosheet/pkg/geom"
	"github.com/matzehuels/dominosheet/pkg/pipeline"
)

// sheetFlags holds the sheet options shared by generate, grid, preview and
// config. Flag defaults mirror pipeline.DefaultOptions; a flag only
// overrides the config file when it was set on the command line.
type sheetFlags struct {
	config     string
	pages      int
	width      float64
	height     float64
	margin     float64
	centerX    bool
	centerY    bool
	unit       string
	rowSpacing float64
	valuesFile string
	allValues  bool
	randomize  bool
	seed       uint64
	strict     bool
	rounded    bool
	labels     bool
	border     bool
	style      string
	dpi        float64
}

func newSheetFlags() *sheetFlags {
	d := pipeline.DefaultOptions()
	return &sheetFlags{
		pages:      d.Page.Count,
		width:      d.Page.Width,
		height:     d.Page.Height,
		margin:     pipeline.DefaultMargin,
		centerX:    d.Page.CenterHorizontal,
		centerY:    d.Page.CenterVertical,
		unit:       d.Unit,
		rowSpacing: d.RowSpacing,
		randomize:  d.Randomize,
		rounded:    d.RoundedCorners,
		style:      d.Style,
		dpi:        d.DPI,
	}
}

// register adds the sheet flags to cmd.
func (f *sheetFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.StringVarP(&f.config, "config", "c", "", "TOML file with sheet options")

	// Page
	fs.IntVarP(&f.pages, "pages", "n", f.pages, "number of pages")
	fs.Float64Var(&f.width, "width", f.width, "page width, in the sheet unit")
	fs.Float64Var(&f.height, "height", f.height, "page height, in the sheet unit")
	fs.Float64Var(&f.margin, "margin", f.margin, "margin on every side, in the sheet unit")
	fs.BoolVar(&f.centerX, "center-x", f.centerX, "center the grid horizontally")
	fs.BoolVar(&f.centerY, "center-y", f.centerY, "center the grid vertically")
	fs.StringVarP(&f.unit, "unit", "u", f.unit, "unit: inch (default), mm, cm; the default Letter page is converted, --width/--height/--margin are read in this unit")
	fs.Float64Var(&f.rowSpacing, "row-spacing", f.rowSpacing, "gap between tile rows, in inches before unit scaling")

	// Values
	fs.StringVar(&f.valuesFile, "values", "", "file with one value per line (default: one value per rotation pair)")
	fs.BoolVar(&f.allValues, "all", false, "use all 4096 values instead of one per rotation pair")
	fs.BoolVar(&f.randomize, "randomize", f.randomize, "shuffle the value pool")
	fs.Uint64Var(&f.seed, "seed", 0, "shuffle seed (0 draws a random seed)")
	fs.BoolVar(&f.strict, "strict-cursor", false, "hand out every pool value once per cycle")

	// Drawing
	fs.BoolVar(&f.rounded, "rounded", f.rounded, "round tile corners")
	fs.BoolVar(&f.labels, "labels", false, "print each value below its tile")
	fs.BoolVar(&f.border, "border", false, "outline the work area of every page")
	fs.StringVar(&f.style, "style", f.style, "visual style: solid (default), outline")
	fs.Float64Var(&f.dpi, "dpi", f.dpi, "PNG resolution")

	_ = cmd.RegisterFlagCompletionFunc("unit", cobra.FixedCompletions(
		[]string{string(geom.UnitInch), string(geom.UnitMM), string(geom.UnitCM)}, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("style", cobra.FixedCompletions(
		[]string{"solid", "outline"}, cobra.ShellCompDirectiveNoFileComp))
}

// options loads --config (or the defaults) and applies every flag that was
// explicitly set.
func (f *sheetFlags) options(cmd *cobra.Command) (pipeline.Options, error) {
	opts := pipeline.DefaultOptions()
	if f.config != "" {
		var err error
		if opts, err = pipeline.LoadOptions(f.config); err != nil {
			return pipeline.Options{}, err
		}
	}

	changed := cmd.Flags().Changed
	if changed("unit") && f.config == "" {
		// The default page is in inches; express it in the chosen unit.
		opts.Page = scalePage(opts.Page, geom.ParseUnit(f.unit).Scale())
	}
	if changed("pages") {
		opts.Page.Count = f.pages
	}
	if changed("width") {
		opts.Page.Width = f.width
	}
	if changed("height") {
		opts.Page.Height = f.height
	}
	if changed("margin") {
		opts.Page.Margin = geom.Uniform(f.margin)
	}
	if changed("center-x") {
		opts.Page.CenterHorizontal = f.centerX
	}
	if changed("center-y") {
		opts.Page.CenterVertical = f.centerY
	}
	if changed("unit") {
		opts.Unit = f.unit
	}
	if changed("row-spacing") {
		opts.RowSpacing = f.rowSpacing
	}
	if changed("values") {
		opts.ValuesFile = f.valuesFile
		opts.Values = nil
	}
	if changed("all") {
		opts.AllValues = f.allValues
	}
	if changed("randomize") {
		opts.Randomize = f.randomize
	}
	if changed("seed") {
		opts.Seed = f.seed
	}
	if changed("strict-cursor") {
		opts.StrictCursor = f.strict
	}
	if changed("rounded") {
		opts.RoundedCorners = f.rounded
	}
	if changed("labels") {
		opts.PrintValues = f.labels
	}
	if changed("border") {
		opts.MarginBorder = f.border
	}
	if changed("style") {
		opts.Style = f.style
	}
	if changed("dpi") {
		opts.DPI = f.dpi
	}
	return opts, nil
}

// scalePage converts the page lengths by scale.
func scalePage(p geom.PageSpec, scale float64) geom.PageSpec {
	p.Width *= scale
	p.Height *= scale
	p.Margin.Top *= scale
	p.Margin.Left *= scale
	p.Margin.Right *= scale
	p.Margin.Bottom *= scale
	return p
}
