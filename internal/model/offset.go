// Package model defines the index and range values used to address sequences
// from the front or from the back.
package model

import (
	"math"
	"strconv"
)

// Side tells which end of a sequence an Offset counts from.
type Side uint8

const (
	// Front counts from the first element, like an ordinary index.
	Front Side = iota
	// Back counts from the logical end, one past the last element.
	Back
)

// BackMarker prefixes a bound counted from the back in the literal syntax.
const BackMarker = '^'

// Offset is a distance tagged with the end of the sequence it is measured from.
// The zero value is FromFront(0).
type Offset struct {
	Side Side
	N    uint
}

// FromFront returns an Offset n elements after the start of a sequence.
func FromFront(n uint) Offset {
	return Offset{Side: Front, N: n}
}

// FromBack returns an Offset n elements before the end of a sequence.
// FromBack(0) is the position at length, one past the last element.
func FromBack(n uint) Offset {
	return Offset{Side: Back, N: n}
}

// IsBack reports whether the offset counts from the back.
func (o Offset) IsBack() bool {
	return o.Side == Back
}

// Resolve converts the offset to a zero-based front-relative position for a
// sequence of the given length.
//
// FromFront(n) resolves to n without looking at length; a position past the
// end is left for the sequence's own bounds check. A front distance above
// math.MaxInt resolves to math.MaxInt, which is past the end of any sequence.
// FromBack(n) resolves to length-n and fails with an *UnderflowError when n
// exceeds length.
func (o Offset) Resolve(length int) (int, error) {
	if o.Side == Front {
		if o.N > math.MaxInt {
			return math.MaxInt, nil
		}

		return int(o.N), nil
	}

	if length < 0 || o.N > uint(length) {
		return 0, &UnderflowError{Distance: o.N, Length: length}
	}

	return length - int(o.N), nil
}

// MustResolve is like Resolve but panics on underflow.
func (o Offset) MustResolve(length int) int {
	pos, err := o.Resolve(length)
	if err != nil {
		panic(err)
	}

	return pos
}

// String renders the offset in literal syntax, e.g. "3" or "^3".
func (o Offset) String() string {
	n := strconv.FormatUint(uint64(o.N), 10)
	if o.Side == Back {
		return string(BackMarker) + n
	}

	return n
}

func (Offset) index() {}
