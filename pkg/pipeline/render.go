package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/dominosheet/pkg/layout"
	"github.com/matzehuels/dominosheet/pkg/observability"
	"github.com/matzehuels/dominosheet/pkg/render/sink"
	"github.com/matzehuels/dominosheet/pkg/render/styles"
)

// RenderMeta carries the per-run values recorded in JSON output.
type RenderMeta struct {
	DocumentID string
	Seed       uint64
}

// Render generates output artifacts in the requested formats.
func Render(ctx context.Context, s layout.Sheet, opts Options, meta RenderMeta) (map[string][]byte, error) {
	style, err := styles.Lookup(opts.Style, s.Tile.Unit)
	if err != nil {
		return nil, err
	}

	hooks := observability.Pipeline()
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		start := time.Now()
		data, err := renderFormat(ctx, s, format, style, opts, meta)
		hooks.OnRender(ctx, observability.RenderEvent{
			Format:   format,
			Bytes:    len(data),
			Duration: time.Since(start),
			Err:      err,
		})
		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[format] = data
	}
	return artifacts, nil
}

func renderFormat(ctx context.Context, s layout.Sheet, format string, style styles.Style, opts Options, meta RenderMeta) ([]byte, error) {
	switch format {
	case FormatSVG:
		return sink.RenderSVG(s, sink.WithStyle(style)), nil
	case FormatPDF:
		return sink.RenderPDF(ctx, s, sink.WithPDFSVGOptions(sink.WithStyle(style)))
	case FormatPNG:
		return sink.RenderPNG(s, sink.WithDPI(opts.DPI), sink.WithPNGStyle(style))
	case FormatJSON:
		jsonOpts := []sink.JSONOption{
			sink.WithJSONDocumentID(meta.DocumentID),
			sink.WithJSONStyle(style.Name()),
		}
		if opts.Randomize {
			jsonOpts = append(jsonOpts, sink.WithJSONRandomize(meta.Seed))
		}
		return sink.RenderJSON(s, jsonOpts...)
	}
	return nil, ValidateFormat(format)
}

// SVGPages renders every page of the sheet as its own SVG document.
func SVGPages(s layout.Sheet, opts Options) ([][]byte, error) {
	style, err := styles.Lookup(opts.Style, s.Tile.Unit)
	if err != nil {
		return nil, err
	}
	return sink.RenderSVGPages(s, sink.WithStyle(style)), nil
}
