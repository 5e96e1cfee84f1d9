package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dominosheet/pkg/dominoes"
	"github.com/matzehuels/dominosheet/pkg/errors"
	"github.com/matzehuels/dominosheet/pkg/pips"
)

// decodeCommand creates the decode command that prints pip faces.
func (c *CLI) decodeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "decode <value>...",
		Short: "Print the pip face of one or more values",
		Long: `Print the pip face of one or more values.

Values are 12-bit integers in decimal, or with a 0b, 0o or 0x prefix. Each
face is drawn as two rows of eight slots; ● is a lit pip.`,
		Example: `  dominosheet decode 7
  dominosheet decode 0b100000_000001 4095`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for i, arg := range args {
				if i > 0 {
					fmt.Fprintln(cmd.OutOrStdout())
				}
				if err := writeFace(cmd.OutOrStdout(), arg); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// parseValue parses a domino value in any Go integer literal syntax.
func parseValue(s string) (int, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 0, 0)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidInput, err, "invalid value %q", s)
	}
	if err := errors.ValidateValue(int(v)); err != nil {
		return 0, err
	}
	return int(v), nil
}

// writeFace writes the header line and the face of the value named by arg.
func writeFace(w io.Writer, arg string) error {
	v, err := parseValue(arg)
	if err != nil {
		return err
	}
	face, err := pips.Decode(v)
	if err != nil {
		return err
	}

	header := fmt.Sprintf("%04d  0b%06b_%06b  %d pips", v, v>>6, v&0o77, face.Count())
	if r := dominoes.Rotate(v); r != v {
		header += fmt.Sprintf("  (rotated: %04d)", r)
	}
	fmt.Fprintln(w, StyleTitle.Render(header))
	fmt.Fprintln(w, face.String())
	return nil
}
