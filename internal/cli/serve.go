package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dominosheet/internal/server"
)

// serveCommand creates the serve command that runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve sheet rendering over HTTP",
		Long: `Serve sheet rendering over HTTP.

Routes:
  GET  /healthz               liveness and build version
  GET  /v1/decode/{value}     pip face of one value as JSON
  POST /v1/sheets?format=pdf  render a sheet; the JSON body holds sheet options

The server stops gracefully on interrupt.`,
		Example: `  dominosheet serve --addr :8080
  curl -X POST 'localhost:8080/v1/sheets?format=svg' -d '{"seed": 7}' -o sheet.svg`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), addr, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr string, noCache bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	cacheLabel := "file"
	switch {
	case noCache:
		cacheLabel = "disabled"
	case c.cacheURL() != "":
		cacheLabel = "redis"
	}
	printInfo("Serving the sheet API")
	printKeyValue("Address", StyleHighlight.Render(addr))
	printKeyValue("Cache", cacheLabel)
	return server.New(runner, c.Logger).ListenAndServe(ctx, addr)
}
