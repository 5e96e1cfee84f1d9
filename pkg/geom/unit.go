package geom

import "strings"

// Unit is a linear measurement unit accepted for page and tile dimensions.
type Unit string

const (
	UnitInch Unit = "inch"
	UnitMM   Unit = "mm"
	UnitCM   Unit = "cm"
)

// unitScales maps each recognized unit to the number of units per inch.
var unitScales = map[Unit]float64{
	UnitInch: 1.0,
	UnitMM:   25.4,
	UnitCM:   2.54,
}

// ParseUnit normalizes s into a Unit. Unknown names are returned as-is;
// their Scale is 1.0.
func ParseUnit(s string) Unit {
	return Unit(strings.ToLower(strings.TrimSpace(s)))
}

// Known reports whether u is one of the recognized units.
func (u Unit) Known() bool {
	_, ok := unitScales[u]
	return ok
}

// Scale returns the number of u per inch, or 1.0 for unrecognized units.
func (u Unit) Scale() float64 {
	if s, ok := unitScales[u]; ok {
		return s
	}
	return 1.0
}

// SVG returns the SVG/CSS length suffix for u ("in", "mm", "cm").
// Unrecognized units render as inches, matching Scale.
func (u Unit) SVG() string {
	switch u {
	case UnitMM:
		return "mm"
	case UnitCM:
		return "cm"
	default:
		return "in"
	}
}

// Dimension converts a base length in inches to a length in the unit whose
// scale factor is scale.
func Dimension(base, scale float64) float64 {
	return base * scale
}
