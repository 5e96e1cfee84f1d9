// Package geom holds the physical measurements shared by the sheet layout:
// the unit system, page and margin specs, and the domino tile footprint.
//
// All tile dimensions are stored in inches as base constants and converted
// to the chosen unit with a single scale factor:
//
//	scale := geom.ParseUnit("mm").Scale() // 25.4
//	tile := geom.NewTile(geom.UnitMM, geom.DefaultRowSpacing)
//	tile.Width // 1.7 * 25.4
//
// Unrecognized unit strings fall back to inches. This is deliberate: unit
// names come from user configuration and a typo yields a sheet in inches
// rather than an error.
//
// Every type in this package is a plain value. Nothing here is shared or
// mutated after construction.
package geom
