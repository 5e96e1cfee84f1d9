package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/dominosheet/pkg/pipeline"
)

// previewCommand creates the preview command that pages through a sheet in
// the terminal.
func (c *CLI) previewCommand() *cobra.Command {
	flags := newSheetFlags()

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Page through a sheet in the terminal",
		Long: `Page through a sheet in the terminal.

Lays out the sheet exactly as generate would and shows each page's tiles as
pip faces. Pass the seed shown in the header to generate to print the same
sheet.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd)
			if err != nil {
				return err
			}
			return c.runPreview(cmd.Context(), opts)
		},
	}

	flags.register(cmd)
	return cmd
}

func (c *CLI) runPreview(ctx context.Context, opts pipeline.Options) error {
	opts.Logger = c.Logger
	opts.SetDefaults()
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	seed, _ := opts.ResolveSeed()
	runner := pipeline.NewRunner(nil, nil, c.Logger)
	sheet, _, err := runner.BuildSheet(ctx, opts, seed)
	if err != nil {
		return err
	}

	p := tea.NewProgram(NewPreviewModel(sheet, seed), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}
