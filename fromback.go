// Package fromback provides indexes that count from either end of a sequence.
//
// An Offset is a distance from the front or from the back. Back offsets are
// resolved against a length when they are used, so the same value selects the
// last element of any sequence:
//
//	last := fromback.FromBack(1)
//	v, err := fromback.Index([]int{8, 6, 7}, last) // 7
//
// # Ranges
//
// Range, RangeFrom and RangeInclusive take Offset bounds on either side, and
// RangeFull selects everything. They can also be parsed from a literal where ^
// marks a back offset:
//
//	sel := fromback.MustParse("1..^2")
//	s, err := fromback.SliceString("ranges", sel) // "ang"
//
// A back offset longer than the sequence fails with an error matching
// ErrBackOffsetUnderflow. The slicing helpers do no further checks; bounds that
// pass resolution but do not fit the sequence panic the same way native
// slicing does.
package fromback

import (
	"github.com/mouse-blink/fromback/internal/adapter"
	"github.com/mouse-blink/fromback/internal/domain"
	"github.com/mouse-blink/fromback/internal/model"
)

// Re-export the index types so callers only import this package.
type (
	// Offset is a position counted from the front or the back.
	Offset = model.Offset
	// Side says which end an Offset counts from.
	Side = model.Side

	// Range is the half-open range [Start, End).
	Range = model.Range
	// RangeFrom is the range from Start to the end of the sequence.
	RangeFrom = model.RangeFrom
	// RangeInclusive is the closed range [Start, End].
	RangeInclusive = model.RangeInclusive
	// RangeFull selects the whole sequence.
	RangeFull = model.RangeFull

	// Span is a resolved Range.
	Span = model.Span
	// SpanFrom is a resolved RangeFrom.
	SpanFrom = model.SpanFrom
	// SpanInclusive is a resolved RangeInclusive.
	SpanInclusive = model.SpanInclusive

	// Expr is any value Parse can produce: an Offset or one of the ranges.
	Expr = model.Index
	// Selector is anything that resolves to half-open slice bounds.
	Selector = model.Selector

	// UnderflowError reports a back offset longer than the sequence.
	UnderflowError = model.UnderflowError
)

const (
	Front = model.Front
	Back  = model.Back
)

var (
	// ErrBackOffsetUnderflow matches every UnderflowError.
	ErrBackOffsetUnderflow = model.ErrBackOffsetUnderflow
	// ErrSyntax is wrapped by every Parse error for malformed input.
	ErrSyntax = domain.ErrSyntax
	// ErrEmptyExpr is returned by Parse for blank input.
	ErrEmptyExpr = domain.ErrEmptyExpr
)

// FromFront returns the offset n elements from the front.
func FromFront(n uint) Offset {
	return model.FromFront(n)
}

// FromBack returns the offset n elements from the back. FromBack(1) is the
// last element and FromBack(0) is one past it.
func FromBack(n uint) Offset {
	return model.FromBack(n)
}

// Parse reads an index literal such as "^1", "2..^3", "..=^2" or "..".
func Parse(expr string) (Expr, error) {
	return domain.Parse(expr)
}

// MustParse is like Parse but panics on error.
func MustParse(expr string) Expr {
	return domain.MustParse(expr)
}

// Index returns the element of s at o.
func Index[T any](s []T, o Offset) (T, error) {
	return adapter.Index(s, o)
}

// MustIndex is like Index but panics on underflow.
func MustIndex[T any](s []T, o Offset) T {
	return adapter.MustIndex(s, o)
}

// Slice returns the part of s that sel selects.
func Slice[T any](s []T, sel Selector) ([]T, error) {
	return adapter.Slice(s, sel)
}

// MustSlice is like Slice but panics on underflow.
func MustSlice[T any](s []T, sel Selector) []T {
	return adapter.MustSlice(s, sel)
}

// SliceBytes slices b.
func SliceBytes(b []byte, sel Selector) ([]byte, error) {
	return adapter.SliceBytes(b, sel)
}

// ByteAt returns the byte of s at o.
func ByteAt(s string, o Offset) (byte, error) {
	return adapter.ByteAt(s, o)
}

// SliceString slices s by byte.
func SliceString(s string, sel Selector) (string, error) {
	return adapter.SliceString(s, sel)
}

// MustSliceString is like SliceString but panics on underflow.
func MustSliceString(s string, sel Selector) string {
	return adapter.MustSliceString(s, sel)
}

// SliceRunes slices s by code point.
func SliceRunes(s string, sel Selector) (string, error) {
	return adapter.SliceRunes(s, sel)
}
