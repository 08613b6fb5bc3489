package domain

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/mouse-blink/fromback/internal/adapter"
	m "github.com/mouse-blink/fromback/internal/model"
)

// ErrOutOfRange is returned when a resolved position or range does not fit
// the source it is applied to.
var ErrOutOfRange = errors.New("out of range")

// Bounds resolves any index to half-open slice bounds for a sequence of the
// given length. A single Offset selects the one element at its position.
func Bounds(idx m.Index, length int) (int, int, error) {
	switch v := idx.(type) {
	case m.Offset:
		pos, err := v.Resolve(length)
		if err != nil {
			return 0, 0, err
		}

		return pos, pos + 1, nil
	case m.Selector:
		return v.Bounds(length)
	default:
		return 0, 0, fmt.Errorf("unsupported index %T", idx)
	}
}

func checkBounds(idx m.Index, lo, hi, length int) error {
	if lo < 0 || hi < 0 {
		return fmt.Errorf("%w: bounds [%d, %d) with length %d", ErrOutOfRange, lo, hi, length)
	}

	if _, single := idx.(m.Offset); single && lo >= length {
		return fmt.Errorf("%w: index %d with length %d", ErrOutOfRange, lo, length)
	}

	if lo > hi {
		return fmt.Errorf("%w: start %d after end %d", ErrOutOfRange, lo, hi)
	}

	if hi > length {
		return fmt.Errorf("%w: end %d beyond length %d", ErrOutOfRange, hi, length)
	}

	return nil
}

// take applies idx to elements. The resolved bounds are checked first so the
// native index or slice expression never panics.
func take[T any](elements []T, idx m.Index) (lo, hi int, out []T, err error) {
	lo, hi, err = Bounds(idx, len(elements))
	if err != nil {
		return 0, 0, nil, err
	}

	if err = checkBounds(idx, lo, hi, len(elements)); err != nil {
		return lo, hi, nil, err
	}

	switch v := idx.(type) {
	case m.Offset:
		var e T

		e, err = adapter.Index(elements, v)
		out = []T{e}
	case m.Selector:
		out, err = adapter.Slice(elements, v)
	}

	return lo, hi, out, err
}

// Split breaks content into the elements of the given unit.
func Split(content []byte, unit m.Unit) []string {
	switch unit {
	case m.UnitBytes:
		out := make([]string, len(content))
		for i, b := range content {
			out[i] = string([]byte{b})
		}

		return out
	case m.UnitRunes:
		out := make([]string, 0, utf8.RuneCount(content))

		for len(content) > 0 {
			_, size := utf8.DecodeRune(content)
			out = append(out, string(content[:size]))
			content = content[size:]
		}

		return out
	case m.UnitFields:
		return strings.Fields(string(content))
	default:
		return splitLines(content)
	}
}

// Count returns the number of elements content has in the given unit.
func Count(content []byte, unit m.Unit) int {
	switch unit {
	case m.UnitBytes:
		return len(content)
	case m.UnitRunes:
		return utf8.RuneCount(content)
	default:
		return len(Split(content, unit))
	}
}

// Join reassembles selected elements of the given unit.
func Join(elements []string, unit m.Unit) string {
	switch unit {
	case m.UnitBytes, m.UnitRunes:
		return strings.Join(elements, "")
	case m.UnitFields:
		return strings.Join(elements, " ")
	default:
		return strings.Join(elements, "\n")
	}
}

func splitLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}

	text := strings.TrimSuffix(string(content), "\n")
	lines := strings.Split(text, "\n")

	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}

	return lines
}

// apply selects idx from content measured in unit.
func apply(content []byte, unit m.Unit, idx m.Index) (m.Selection, error) {
	sel := m.Selection{Expr: idx, Unit: unit}

	var err error

	switch unit {
	case m.UnitBytes:
		var out []byte

		sel.Length = len(content)
		sel.Lo, sel.Hi, out, err = take(content, idx)
		sel.Output = string(out)
	default:
		var out []string

		elements := Split(content, unit)
		sel.Length = len(elements)
		sel.Lo, sel.Hi, out, err = take(elements, idx)
		sel.Output = Join(out, unit)
	}

	sel.Err = err

	return sel, err
}
