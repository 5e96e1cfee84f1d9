// Package styles defines how sheet instructions are painted.
//
// A [Style] turns the draw instructions produced by the layout engine into
// SVG elements, and exposes a [Palette] for raster sinks that cannot use
// SVG. Two styles ship with the package:
//
//   - [Solid]: black tiles with white pips, as cut from a printed sheet
//   - [Outline]: white tiles with a thin black outline and black pips
//
// Styles are selected by name with [Lookup]:
//
//	s, err := styles.Lookup("outline", geom.UnitMM)
//	svg := sink.RenderSVG(sheet, sink.WithStyle(s))
//
// Styles hold no per-render state and may be shared between goroutines.
package styles
