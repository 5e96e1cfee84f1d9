package errors

import (
	"math"
)

// MaxValue is the largest domino value: two rows of six data bits.
const MaxValue = 1<<12 - 1

// ValidateValue checks that v is a representable domino value.
func ValidateValue(v int) error {
	if v < 0 || v > MaxValue {
		return Domain("domino value %d out of range [0, %d]", v, MaxValue)
	}
	return nil
}

// ValidateLength checks that a physical length is a finite, positive number.
func ValidateLength(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Configuration("%s must be a finite number", name)
	}
	if v <= 0 {
		return Configuration("%s must be positive, got %g", name, v)
	}
	return nil
}

// ValidateOffset checks that a margin or spacing is finite and not negative.
// Zero is allowed.
func ValidateOffset(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Configuration("%s must be a finite number", name)
	}
	if v < 0 {
		return Configuration("%s must not be negative, got %g", name, v)
	}
	return nil
}

// ValidateCount checks that a count is not negative.
func ValidateCount(name string, n int) error {
	if n < 0 {
		return Configuration("%s must not be negative, got %d", name, n)
	}
	return nil
}
