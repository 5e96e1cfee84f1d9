package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dominosheet/pkg/pipeline"
)

// configCommand creates the config command group.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Write and inspect sheet configuration files",
	}

	cmd.AddCommand(c.configShowCommand())
	cmd.AddCommand(c.configInitCommand())

	return cmd
}

// configShowCommand prints the effective options as TOML.
func (c *CLI) configShowCommand() *cobra.Command {
	flags := newSheetFlags()

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective sheet options as TOML",
		Long: `Print the effective sheet options as TOML.

Combines the defaults, --config and any flags given, exactly as generate
would see them.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd)
			if err != nil {
				return err
			}
			opts.SetDefaults()
			return opts.EncodeTOML(cmd.OutOrStdout())
		},
	}

	flags.register(cmd)
	return cmd
}

// configInitCommand writes the default options to a new file.
func (c *CLI) configInitCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init [file]",
		Short: "Write a config file with the default sheet options",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "sheet.toml"
			if len(args) == 1 {
				path = args[0]
			}
			if err := writeDefaultConfig(path, force); err != nil {
				return err
			}
			printSuccess("Wrote %s", path)
			printNextStep("Generate a sheet", "dominosheet generate --config "+path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	return cmd
}

func writeDefaultConfig(path string, force bool) error {
	flag := os.O_WRONLY | os.O_CREATE | os.O_EXCL
	if force {
		flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	}
	f, err := os.OpenFile(path, flag, 0o644)
	if os.IsExist(err) {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}
	if err != nil {
		return err
	}
	if err := pipeline.DefaultOptions().EncodeTOML(f); err != nil {
		f.Close()
		return fmt.Errorf("encode config: %w", err)
	}
	return f.Close()
}
