// Package pips decodes a domino value into the pip slots lit on its face.
//
// A value is a 12-bit pattern. The high six bits drive row 0, the low six
// bits row 1. Each row has eight slots: slot 0 and slot 7 are end markers
// and always lit; slots 1 through 6 show the row's data bits, most
// significant bit first.
//
//	face, _ := pips.Decode(0b100000_000001)
//	face.Lit(0) // [0 1 7]
//	face.Lit(1) // [0 6 7]
//
// A data slot is lit only by its own bit. Neighbouring slots, including the
// always-lit end markers, have no influence on it.
package pips

import (
	"strings"

	"github.com/matzehuels/dominosheet/pkg/errors"
	"github.com/matzehuels/dominosheet/pkg/geom"
)

const rowMask = 1<<geom.DataSlots - 1

// Face is the decoded lit/unlit state of every slot on a tile.
type Face [geom.Rows][geom.SlotsPerRow]bool

// Decode splits value into its two rows and resolves each slot.
// It fails with a domain error when value is outside [0, 4095].
func Decode(value int) (Face, error) {
	var f Face
	if err := errors.ValidateValue(value); err != nil {
		return f, err
	}
	rows := [geom.Rows]int{
		(value >> geom.DataSlots) & rowMask,
		value & rowMask,
	}
	for r, bits := range rows {
		f[r] = decodeRow(bits)
	}
	return f, nil
}

// decodeRow lights the end markers and every data slot whose bit is set.
// Slot i (1..6) reads bit 6-i.
func decodeRow(bits int) [geom.SlotsPerRow]bool {
	var row [geom.SlotsPerRow]bool
	for slot := range geom.SlotsPerRow {
		switch slot {
		case 0, geom.LastSlot:
			row[slot] = true
		default:
			row[slot] = bits&(1<<(geom.DataSlots-slot)) != 0
		}
	}
	return row
}

// Lit returns the indices of the lit slots in row r, in ascending order.
func (f Face) Lit(r int) []int {
	var slots []int
	for slot, on := range f[r] {
		if on {
			slots = append(slots, slot)
		}
	}
	return slots
}

// Count returns the total number of lit slots on the face.
func (f Face) Count() int {
	n := 0
	for r := range f {
		for _, on := range f[r] {
			if on {
				n++
			}
		}
	}
	return n
}

// String draws the face as two lines of ● and ·.
func (f Face) String() string {
	var b strings.Builder
	for r := range f {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, on := range f[r] {
			if on {
				b.WriteString("●")
			} else {
				b.WriteString("·")
			}
		}
	}
	return b.String()
}

// Center returns the centre of the pip at (row, slot) on a tile whose
// top-left corner is (originX, originY).
func Center(t geom.Tile, originX, originY float64, row, slot int) (x, y float64) {
	x = originX + t.PipPadding + t.PipRadius + float64(slot)*2*t.PipDiameter
	y = originY + t.PipPadding + t.PipRadius + float64(row)*2*t.PipDiameter
	return x, y
}
