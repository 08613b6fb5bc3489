package adapter

import (
	"unicode/utf8"

	m "github.com/mouse-blink/fromback/internal/model"
)

// The functions below resolve an index against the sequence's own length and
// then index natively. Back-offset underflow comes back as an error; any
// position the resolution produces past the end, or an inverted range, is
// left to Go's bounds check and panics like a plain s[i] or s[lo:hi] would.

// Index returns the element of s at o.
func Index[T any](s []T, o m.Offset) (T, error) {
	pos, err := o.Resolve(len(s))
	if err != nil {
		var zero T
		return zero, err
	}

	return s[pos], nil
}

// MustIndex is like Index but panics on underflow.
func MustIndex[T any](s []T, o m.Offset) T {
	return s[o.MustResolve(len(s))]
}

// Slice returns the sub-slice of s selected by sel. The result shares s's
// backing array.
func Slice[T any](s []T, sel m.Selector) ([]T, error) {
	lo, hi, err := sel.Bounds(len(s))
	if err != nil {
		return nil, err
	}

	return s[lo:hi], nil
}

// MustSlice is like Slice but panics on underflow.
func MustSlice[T any](s []T, sel m.Selector) []T {
	out, err := Slice(s, sel)
	if err != nil {
		panic(err)
	}

	return out
}

// SliceBytes slices a byte buffer measured in bytes.
func SliceBytes(b []byte, sel m.Selector) ([]byte, error) {
	return Slice(b, sel)
}

// ByteAt returns the byte of s at o.
func ByteAt(s string, o m.Offset) (byte, error) {
	pos, err := o.Resolve(len(s))
	if err != nil {
		return 0, err
	}

	return s[pos], nil
}

// SliceString slices s measured in bytes. Bounds that split a multi-byte
// character produce invalid UTF-8, as s[lo:hi] does.
func SliceString(s string, sel m.Selector) (string, error) {
	lo, hi, err := sel.Bounds(len(s))
	if err != nil {
		return "", err
	}

	return s[lo:hi], nil
}

// MustSliceString is like SliceString but panics on underflow.
func MustSliceString(s string, sel m.Selector) string {
	out, err := SliceString(s, sel)
	if err != nil {
		panic(err)
	}

	return out
}

// SliceRunes slices s measured in UTF-8 code points. Each invalid byte counts
// as one code point, and the selected bytes are returned unchanged.
func SliceRunes(s string, sel m.Selector) (string, error) {
	count := utf8.RuneCountInString(s)
	if count == len(s) {
		return SliceString(s, sel)
	}

	lo, hi, err := sel.Bounds(count)
	if err != nil {
		return "", err
	}

	offsets := runeOffsets(s, count)

	return s[offsets[lo]:offsets[hi]], nil
}

// runeOffsets returns the byte offset of every code point in s, followed by len(s).
func runeOffsets(s string, count int) []int {
	offsets := make([]int, 0, count+1)

	for i := 0; i < len(s); {
		offsets = append(offsets, i)
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}

	return append(offsets, len(s))
}
