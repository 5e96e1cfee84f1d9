// Package layout places domino tiles on printable sheets.
//
// # Overview
//
// The engine works in four steps, each usable on its own:
//
//  1. [ComputeGrid]: how many tile rows and columns fit inside the margins.
//  2. [ComputeOffsets]: how far to shift the grid to centre it.
//  3. [Placements]: the top-left corner of every cell on a page, row-major.
//  4. [Paginate]: every cell of every page paired with the next pool value
//     and its decoded pip face, emitted as a [Tile] of draw instructions.
//
// [Build] collects the Paginate stream into a [Sheet], which the sinks in
// pkg/render/sink encode as SVG, PDF, PNG or JSON.
//
// # Degenerate pages
//
// A page whose work area cannot hold one tile is not an error: the grid
// has zero rows or columns, Placements yields nothing and the value source
// is never consulted.
//
// # Concurrency
//
// ComputeGrid, ComputeOffsets and Placements are pure. Paginate is as safe
// as the ValueSource it is given; a pool.Pool is not safe for concurrent
// use, so pages are generated sequentially.
package layout
