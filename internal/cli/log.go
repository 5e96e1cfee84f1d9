// Package cli implements the dominosheet command-line interface.
//
// The commands lay out sheets of pip-coded domino tiles and write them as
// PDF, SVG, PNG or JSON, inspect the grid a configuration produces, decode
// single values, page through a sheet in the terminal and serve rendering
// over HTTP. The CLI is built using cobra and logs with charmbracelet/log.
//
// # Commands
//
// The main commands are:
//   - generate: Lay out a sheet and write its artifacts
//   - grid: Print rows, columns and offsets for a configuration
//   - decode: Print the pip face of one or more values
//   - preview: Page through a sheet in the terminal
//   - serve: Run the HTTP API
//   - config: Write and inspect TOML configuration files
//   - cache: Manage the rendered artifact cache
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context to allow structured progress tracking.
//
// # Example
//
//	import "github.com/matzehuels/dominosheet/internal/cli"
//
//	func main() {
//	    c := cli.New(os.Stderr, cli.LogInfo)
//	    if err := c.RootCommand().Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger returns a logger writing to w at level, timestamped
// "15:04:05.00".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times one command step.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time appended, e.g.
// "Generated 40 tiles on 1 page(s) (12ms)", plus any key/value fields.
func (p *progress) done(msg string, keyvals ...any) {
	p.logger.Info(fmt.Sprintf("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond)), keyvals...)
}

type ctxKey struct{}

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// loggerFromContext returns the logger attached by withLogger, or
// log.Default() when there is none.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
