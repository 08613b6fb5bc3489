package domain

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	m "github.com/mouse-blink/fromback/internal/model"
)

var (
	// ErrSyntax is wrapped by every error Parse returns for malformed input.
	ErrSyntax = errors.New("invalid index expression")
	// ErrEmptyExpr is returned by Parse for blank input.
	ErrEmptyExpr = errors.New("empty index expression")
)

// Parse builds an index or range value from its literal form.
//
// A bound prefixed with ^ counts from the back; a bare bound counts from the
// front. Supported forms:
//
//	N  ^N                    single offset
//	A..B  ..B                Range (missing start is 0)
//	A..=B  ..=B              RangeInclusive
//	A..                      RangeFrom
//	..                       RangeFull
//
// Parse does not resolve anything; the result is checked only against a
// sequence length later.
func Parse(expr string) (m.Index, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return nil, ErrEmptyExpr
	}

	p := &parser{src: expr}

	return p.parse()
}

// MustParse is like Parse but panics if the expression is malformed.
func MustParse(expr string) m.Index {
	idx, err := Parse(expr)
	if err != nil {
		panic(err)
	}

	return idx
}

type parser struct {
	src string
	pos int
}

func (p *parser) parse() (m.Index, error) {
	p.skipSpace()

	start, hasStart, err := p.bound()
	if err != nil {
		return nil, err
	}

	p.skipSpace()

	if p.eof() {
		return start, nil
	}

	if !strings.HasPrefix(p.src[p.pos:], "..") {
		return nil, p.errorf(p.pos, "unexpected %q", p.src[p.pos])
	}

	p.pos += 2

	inclusive := false
	if !p.eof() && p.src[p.pos] == '=' {
		inclusive = true
		p.pos++
	}

	p.skipSpace()

	end, hasEnd, err := p.bound()
	if err != nil {
		return nil, err
	}

	p.skipSpace()

	if !p.eof() {
		return nil, p.errorf(p.pos, "unexpected %q", p.src[p.pos])
	}

	switch {
	case inclusive && !hasEnd:
		return nil, p.errorf(p.pos, "inclusive range needs an end bound")
	case inclusive:
		return m.RangeInclusive{Start: start, End: end}, nil
	case hasEnd:
		return m.Range{Start: start, End: end}, nil
	case hasStart:
		return m.RangeFrom{Start: start}, nil
	default:
		return m.RangeFull{}, nil
	}
}

// bound reads an optional ^-marked decimal. A missing bound yields the zero
// Offset, which is FromFront(0).
func (p *parser) bound() (m.Offset, bool, error) {
	begin := p.pos
	side := m.Front

	if !p.eof() && p.src[p.pos] == m.BackMarker {
		side = m.Back
		p.pos++
		p.skipSpace()
	}

	digits := p.pos
	for !p.eof() && p.src[p.pos] >= '0' && p.src[p.pos] <= '9' {
		p.pos++
	}

	if p.pos == digits {
		if side == m.Back {
			return m.Offset{}, false, p.errorf(digits, "expected digits after %c", m.BackMarker)
		}

		return m.Offset{}, false, nil
	}

	n, err := strconv.ParseUint(p.src[digits:p.pos], 10, strconv.IntSize-1)
	if err != nil {
		return m.Offset{}, false, p.errorf(begin, "bound out of range")
	}

	return m.Offset{Side: side, N: uint(n)}, true, nil
}

func (p *parser) skipSpace() {
	for !p.eof() && (p.src[p.pos] == ' ' || p.src[p.pos] == '\t') {
		p.pos++
	}
}

func (p *parser) eof() bool {
	return p.pos >= len(p.src)
}

func (p *parser) errorf(col int, format string, args ...interface{}) error {
	return fmt.Errorf("%w %q: %s at column %d", ErrSyntax, p.src, fmt.Sprintf(format, args...), col+1)
}
