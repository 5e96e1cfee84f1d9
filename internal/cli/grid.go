package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dominosheet/pkg/layout"
	"github.com/matzehuels/dominosheet/pkg/pipeline"
	"github.com/matzehuels/dominosheet/pkg/pool"
)

// gridReport is the computed geometry of a sheet, without drawing it.
type gridReport struct {
	opts       pipeline.Options
	grid       layout.Grid
	offsets    layout.Offsets
	candidates int
	cycleLen   int
}

// gridCommand creates the grid command that prints the computed layout.
func (c *CLI) gridCommand() *cobra.Command {
	var plain bool
	flags := newSheetFlags()

	cmd := &cobra.Command{
		Use:   "grid",
		Short: "Print the grid a sheet configuration produces",
		Long: `Print the grid a sheet configuration produces.

Shows rows, columns and centering offsets per page, the number of tiles the
sheet holds, and how many values the pool hands out before it is reshuffled.
Nothing is rendered.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd)
			if err != nil {
				return err
			}
			rep, err := computeGrid(opts)
			if err != nil {
				return err
			}
			if rep.grid.Empty() {
				printWarning("No tile fits the work area")
			}
			if plain {
				rep.writePlain(cmd.OutOrStdout())
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), rep.table())
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().BoolVar(&plain, "plain", false, "print key: value lines instead of a table")
	return cmd
}

// computeGrid validates opts and derives the grid without consuming values.
func computeGrid(opts pipeline.Options) (gridReport, error) {
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return gridReport{}, err
	}
	values, err := opts.CandidateValues()
	if err != nil {
		return gridReport{}, err
	}

	tile := opts.Tile()
	grid := layout.ComputeGrid(opts.Page, tile)
	return gridReport{
		opts:       opts,
		grid:       grid,
		offsets:    layout.ComputeOffsets(opts.Page, tile, grid),
		candidates: len(values),
		cycleLen:   pool.New(values, opts.PoolOptions(opts.Seed)...).CycleLength(),
	}, nil
}

func (r gridReport) rows() [][]string {
	u := r.opts.GeomUnit()
	tile := r.opts.Tile()
	return [][]string{
		{"Unit", string(u)},
		{"Page", fmt.Sprintf("%g × %g", r.opts.Page.Width, r.opts.Page.Height)},
		{"Work area", fmt.Sprintf("%.4f × %.4f", r.opts.Page.WorkWidth(), r.opts.Page.WorkHeight())},
		{"Tile", fmt.Sprintf("%.4f × %.4f (+%.4f, row gap %.4f)", tile.Width, tile.Height, tile.Padding, tile.RowSpacing)},
		{"Rows", fmt.Sprint(r.grid.Rows)},
		{"Cols", fmt.Sprint(r.grid.Cols)},
		{"Offset", fmt.Sprintf("%.4f, %.4f", r.offsets.X, r.offsets.Y)},
		{"Tiles/page", fmt.Sprint(r.grid.Cells())},
		{"Pages", fmt.Sprint(r.opts.Page.Count)},
		{"Tiles", fmt.Sprint(r.grid.Cells() * r.opts.Page.Count)},
		{"Candidates", fmt.Sprint(r.candidates)},
		{"Cycle", fmt.Sprint(r.cycleLen)},
	}
}

func (r gridReport) table() string {
	keyStyle := lipgloss.NewStyle().Foreground(colorGray)
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Rows(r.rows()...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if col == 0 {
				return keyStyle.PaddingRight(1)
			}
			return lipgloss.NewStyle().Foreground(colorCyan)
		}).
		Render()
}

// writePlain writes the report as "key: value" lines.
func (r gridReport) writePlain(w io.Writer) {
	for _, row := range r.rows() {
		fmt.Fprintf(w, "%s: %s\n", row[0], row[1])
	}
}
