// Package pkg provides the core libraries for Dominosheet tile sheets.
//
// # Overview
//
// Dominosheet prints sheets of domino tiles whose pips encode a 12-bit
// value: two rows of eight slots, end markers always lit, six data bits per
// row. Tiles are placed on a grid inside the page margins, values are drawn
// from a finite (optionally shuffled) pool, and every placed tile becomes a
// small batch of draw instructions. The pkg directory is organized into
// these areas:
//
//  1. [geom], [pips], [dominoes], [pool], [layout] - Domain logic
//  2. [render] - Styles and output sinks (SVG, PDF, PNG, JSON)
//  3. [pipeline] - Orchestration (options → layout → render)
//  4. [cache], [observability], [errors], [buildinfo] - Infrastructure
//
// # Architecture
//
// The typical data flow through Dominosheet:
//
//	PageSpec + Tile + candidate values
//	         ↓
//	    [pool] package (shuffled value stream)
//	         ↓
//	    [layout] package (grid, offsets, placements, per-tile instructions)
//	         ↓
//	    [render/sink] package (SVG/PDF/PNG/JSON)
//
// # Quick Start
//
// Lay out one US Letter page and render it to SVG:
//
//	import (
//	    "github.com/matzehuels/dominosheet/pkg/dominoes"
//	    "github.com/matzehuels/dominosheet/pkg/geom"
//	    "github.com/matzehuels/dominosheet/pkg/layout"
//	    "github.com/matzehuels/dominosheet/pkg/pool"
//	    "github.com/matzehuels/dominosheet/pkg/render/sink"
//	)
//
//	// 1. Describe the page and the tile footprint
//	page := geom.Letter(0.6)
//	tile := geom.NewTile(geom.UnitInch, geom.DefaultRowSpacing)
//
//	// 2. Fill a pool with one value per rotation pair
//	p := pool.New(dominoes.Canonical(), pool.WithRandomize(42))
//
//	// 3. Lay out the sheet
//	s, _ := layout.Build(page, tile, p, layout.Options{RoundedCorners: true})
//
//	// 4. Render to SVG
//	svg := sink.RenderSVG(s)
//
// # Main Packages
//
// ## Core Domain Logic
//
// [geom] - Units, page specs and the tile footprint. Every tile dimension is
// a base length in inches scaled by the unit.
//
// [pips] - Decodes a value into the lit slots of its face.
//
// [dominoes] - Candidate value sets (all 4096, or one per rotation pair) and
// value list parsing.
//
// [pool] - Finite value pool that reshuffles itself on exhaustion.
//
// [layout] - Grid fitting, centering offsets, row-major placement and
// pagination into a [layout.Sheet].
//
// ## Visualization
//
// [render] - rsvg-convert wrappers for SVG to PDF/PNG conversion.
//
//   - [render/styles]: Visual styles (solid, outline)
//   - [render/sink]: Output formats (SVG, PDF, PNG, JSON)
//
// ## Orchestration
//
// [pipeline] - Complete sheet pipeline (options → layout → render) used by
// the CLI and the HTTP server. Ensures consistent behavior across entry
// points.
//
// ## Infrastructure
//
// [cache] - Artifact cache with file and Redis backends.
//
// [observability] - Hook points for metrics and tracing.
//
// [errors] - Typed error codes shared by every package.
//
// # Testing
//
// Run tests:
//
//	go test ./pkg/...           # All tests
//	go test ./pkg/layout/...    # Specific package
//	go test -run Example ./...  # Examples only
//
// [geom]: https://pkg.go.dev/github.com/matzehuels/dominosheet/pkg/geom
// [pips]: https://pkg.go.dev/github.com/matzehuels/dominosheet/pkg/pips
// [dominoes]: https://pkg.go.dev/github.com/matzehuels/dominosheet/pkg/dominoes
// [pool]: https://pkg.go.dev/github.com/matzehuels/dominosheet/pkg/pool
// [layout]: https://pkg.go.dev/github.com/matzehuels/dominosheet/pkg/layout
// [render]: https://pkg.go.dev/github.com/matzehuels/dominosheet/pkg/render
// [render/styles]: https://pkg.go.dev/github.com/matzehuels/dominosheet/pkg/render/styles
// [render/sink]: https://pkg.go.dev/github.com/matzehuels/dominosheet/pkg/render/sink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/dominosheet/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/dominosheet/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/dominosheet/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/dominosheet/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/dominosheet/pkg/buildinfo
// [layout.Sheet]: https://pkg.go.dev/github.com/matzehuels/dominosheet/pkg/layout#Sheet
package pkg
