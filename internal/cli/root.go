package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/dominosheet/pkg/buildinfo"
)

// RootCommand creates the root cobra command with all subcommands registered.
//
// The --verbose flag is registered by the caller, which owns the log level;
// --cache-url is shared by every command that touches the artifact cache.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Dominosheet lays out printable sheets of pip-coded domino tiles",
		Long: `Dominosheet lays out printable sheets of pip-coded domino tiles.

Each tile encodes a 12-bit value as two rows of pips. Tiles are placed in a
grid on every page, values are drawn from a (shuffled) pool, and the result
is written as PDF, SVG, PNG or a JSON instruction stream.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.CacheURL, "cache-url", "", "redis:// URL for the artifact cache (default: $"+envRedisURL+" or the file cache)")

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.gridCommand())
	root.AddCommand(c.decodeCommand())
	root.AddCommand(c.previewCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.configCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}
