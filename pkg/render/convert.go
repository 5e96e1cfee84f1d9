package render

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/matzehuels/dominosheet/pkg/errors"
)

// converter is the external tool used for vector conversion.
const converter = "rsvg-convert"

// Available reports whether rsvg-convert is on PATH.
func Available() bool {
	_, err := exec.LookPath(converter)
	return err == nil
}

// ToPDF converts one or more SVG pages to a single PDF document, one PDF page
// per SVG. Requires librsvg: brew install librsvg (macOS), apt install
// librsvg2-bin (Linux).
func ToPDF(ctx context.Context, pages ...[]byte) ([]byte, error) {
	switch len(pages) {
	case 0:
		return nil, errors.New(errors.ErrCodeInvalidInput, "no pages to convert")
	case 1:
		return rsvgConvert(ctx, pages[0], "pdf")
	}

	// rsvg-convert only concatenates pages that come from files.
	dir, err := os.MkdirTemp("", "dominosheet-pdf-*")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "create temp dir")
	}
	defer os.RemoveAll(dir)

	args := []string{"-f", "pdf"}
	for i, svg := range pages {
		name := filepath.Join(dir, fmt.Sprintf("page-%03d.svg", i+1))
		if err := os.WriteFile(name, svg, 0o600); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "write page %d", i+1)
		}
		args = append(args, name)
	}
	return run(ctx, "pdf", nil, args...)
}

func rsvgConvert(ctx context.Context, svg []byte, format string) ([]byte, error) {
	return run(ctx, format, svg, "-f", format)
}

// run shells out to rsvg-convert, feeding stdin when given.
func run(ctx context.Context, format string, stdin []byte, args ...string) ([]byte, error) {
	if !Available() {
		return nil, errors.New(errors.ErrCodeUnsupported,
			"%s export requires librsvg. Install with:\n  macOS:  brew install librsvg\n  Linux:  apt install librsvg2-bin", format)
	}

	cmd := exec.CommandContext(ctx, converter, args...)
	if stdin != nil {
		cmd.Stdin = bytes.NewReader(stdin)
	}

	var out, errBuf bytes.Buffer
	cmd.Stdout = &out
	cmd.Stderr = &errBuf

	if err := cmd.Run(); err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("rsvg-convert: %v: %s", err, errBuf.String())
	}
	return out.Bytes(), nil
}
