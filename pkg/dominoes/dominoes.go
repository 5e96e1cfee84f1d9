// Package dominoes enumerates the candidate values a sheet is filled from.
//
// A printed tile can be picked up either way round, so a value and its
// 180° rotation name the same physical domino. [Canonical] keeps one value
// per rotation pair (the smaller), which guarantees no two tiles in a full
// cycle of the pool can be confused for one another.
package dominoes

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/matzehuels/dominosheet/pkg/errors"
	"github.com/matzehuels/dominosheet/pkg/geom"
)

const (
	rowMask = 1<<geom.DataSlots - 1

	// Count is the number of representable values.
	Count = 1 << geom.BitsPerValue
)

// All returns every representable value, 0 through 4095.
func All() []int {
	out := make([]int, Count)
	for v := range out {
		out[v] = v
	}
	return out
}

// Canonical returns, in ascending order, every value v with v <= Rotate(v).
func Canonical() []int {
	out := make([]int, 0, Count/2+(1<<geom.DataSlots)/2)
	for v := range Count {
		if IsCanonical(v) {
			out = append(out, v)
		}
	}
	return out
}

// IsCanonical reports whether v is the representative of its rotation pair.
func IsCanonical(v int) bool {
	return v <= Rotate(v)
}

// Rotate returns the value of the tile turned by 180°: the rows swap places
// and each row reads backwards.
func Rotate(v int) int {
	row0 := (v >> geom.DataSlots) & rowMask
	row1 := v & rowMask
	return reverse(row1)<<geom.DataSlots | reverse(row0)
}

func reverse(bits int) int {
	out := 0
	for range geom.DataSlots {
		out = out<<1 | bits&1
		bits >>= 1
	}
	return out
}

// ReadValues parses a list of domino values separated by whitespace or
// commas. Lines starting with '#' are comments. Every value must be in
// [0, 4095].
func ReadValues(r io.Reader) ([]int, error) {
	var out []int
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.FieldsFunc(text, func(r rune) bool {
			return r == ',' || r == ' ' || r == '\t'
		})
		for _, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "line %d: %q is not an integer", line, f)
			}
			if err := errors.ValidateValue(v); err != nil {
				return nil, errors.Wrap(errors.ErrCodeDomain, err, "line %d", line)
			}
			out = append(out, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
