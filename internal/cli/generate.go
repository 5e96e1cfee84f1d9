package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dominosheet/pkg/pipeline"
)

// defaultOutput is the base path used when -o is not given.
const defaultOutput = "dominoes"

// generateCommand creates the generate command that writes sheet artifacts.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		output     string
		formatsStr string
		noCache    bool
		refresh    bool
	)
	flags := newSheetFlags()

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Lay out domino tiles and write the sheet",
		Long: `Lay out domino tiles and write the sheet.

Values are drawn from the pool for every grid cell of every page and each
tile is drawn as a rounded rectangle with two rows of pips. Output files are
named after the base path (-o): dominoes.pdf, dominoes.png, dominoes.json.
SVG is written one file per page (dominoes-1.svg, dominoes-2.svg, ...) when
the sheet has more than one page.

Options come from --config when given; flags set on the command line take
precedence over the file.`,
		Example: `  dominosheet generate
  dominosheet generate -n 3 -f pdf,json -o batch
  dominosheet generate --config sheet.toml --seed 42 --labels`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := flags.options(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("format") {
				opts.Formats = pipeline.ParseFormats(formatsStr)
			}
			opts.Refresh = refresh
			return c.runGenerate(cmd.Context(), opts, output, noCache)
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", defaultOutput, "output base path (extension is added per format)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): pdf (default), svg, png, json (comma-separated)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "re-render even when artifacts are cached")

	return cmd
}

// runGenerate executes the pipeline and writes one file per artifact.
func (c *CLI) runGenerate(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	logger := loggerFromContext(ctx)
	opts.Logger = logger
	opts.SetDefaults()
	prog := newProgress(logger)

	spinner := newSpinnerWithContext(ctx, "Rendering "+strings.Join(opts.Formats, ", ")+"...")
	spinner.Start()
	result, err := runner.Execute(ctx, opts)
	if err != nil {
		spinner.Stop()
		if spinner.Cancelled() {
			return ctx.Err()
		}
		printError("Sheet generation failed")
		return err
	}

	base := basePath(output)
	spinner.SetMessage("Writing " + base + "...")
	var written []string
	for _, format := range opts.Formats {
		paths, err := writeArtifact(result, opts, base, format)
		if err != nil {
			spinner.Stop()
			return err
		}
		written = append(written, paths...)
	}
	spinner.Stop()

	prog.done(fmt.Sprintf("Generated %d tiles on %d page(s)", result.Stats.Tiles, result.Stats.Pages), "files", len(written))
	printSheetStats(result)
	for _, p := range written {
		printFile(p)
	}
	return nil
}

// writeArtifact writes the artifact for format and returns the paths
// written. Multi-page SVG output is split into one file per page.
func writeArtifact(result *pipeline.Result, opts pipeline.Options, base, format string) ([]string, error) {
	if format == pipeline.FormatSVG && len(result.Sheet.Pages) > 1 {
		pages, err := pipeline.SVGPages(result.Sheet, opts)
		if err != nil {
			return nil, err
		}
		paths := make([]string, len(pages))
		for i, data := range pages {
			paths[i] = fmt.Sprintf("%s-%d.svg", base, i+1)
			if err := writeFile(paths[i], data); err != nil {
				return nil, err
			}
		}
		return paths, nil
	}

	path := base + "." + format
	if err := writeFile(path, result.Artifacts[format]); err != nil {
		return nil, err
	}
	return []string{path}, nil
}

// basePath strips a known format extension from output so that
// "-o sheet.pdf" and "-o sheet" name the same files.
func basePath(output string) string {
	if output == "" {
		return defaultOutput
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.ToLower(strings.TrimPrefix(ext, "."))] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// writeFile writes data to path, creating parent directories.
func writeFile(path string, data []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
