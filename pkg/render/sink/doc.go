// Package sink encodes a [layout.Sheet] into output formats.
//
// A "sink" consumes the draw instructions produced by the layout engine and
// never influences placement or decoding. This package provides:
//
//   - SVG: one document per page, sized in the sheet's unit
//   - PDF: all pages in one document (requires rsvg-convert)
//   - PNG: all pages stacked vertically, rasterized in-process with gg
//   - JSON: the full instruction stream for external tools
//
// Basic usage:
//
//	svg := sink.RenderSVG(sheet, sink.WithStyle(styles.NewOutline(1)))
//	pdf, err := sink.RenderPDF(ctx, sheet, sink.WithPDFSVGOptions(sink.WithStyle(s)))
//	png, err := sink.RenderPNG(sheet, sink.WithDPI(300))
//
// The PDF sink needs librsvg:
//   - macOS: brew install librsvg
//   - Linux: apt install librsvg2-bin
//
// The PNG sink draws tiles and pips only; value labels need a font and are
// left to the vector formats.
//
// [layout.Sheet]: github.com/matzehuels/dominosheet/pkg/layout.Sheet
package sink
