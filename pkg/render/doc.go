// Package render converts rendered sheets between output formats.
//
// # Overview
//
// The drawing itself lives in subpackages:
//
//   - [sink]: SVG, PDF, PNG and JSON encoders for a [layout.Sheet]
//   - [styles]: visual styles (solid, outline)
//
// This package holds the format conversion they share.
//
// # Format Conversion
//
// [ToPDF] converts SVG to PDF using the external rsvg-convert tool (from
// librsvg). It accepts several SVG pages and produces one multi-page
// document:
//
//	pages := sink.RenderSVGPages(sheet)
//	pdf, err := render.ToPDF(ctx, pages...)
//
// [Available] reports whether the tool is installed. PNG output never needs
// it; the PNG sink rasterizes in-process.
//
// [sink]: github.com/matzehuels/dominosheet/pkg/render/sink
// [styles]: github.com/matzehuels/dominosheet/pkg/render/styles
// [layout.Sheet]: github.com/matzehuels/dominosheet/pkg/layout.Sheet
package render
