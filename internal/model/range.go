package model

// Index is any value the literal syntax can produce: a single Offset or one of
// the range shapes.
type Index interface {
	String() string
	index()
}

// Selector is a range shape that can be turned into slice bounds s[lo:hi].
type Selector interface {
	Index
	Bounds(length int) (lo, hi int, err error)
}

// Span is a resolved half-open range [Start, End).
type Span struct {
	Start int
	End   int
}

// Len returns End-Start, or 0 for an inverted span.
func (s Span) Len() int {
	return max(s.End-s.Start, 0)
}

// SpanFrom is a resolved range starting at Start and running to the end.
type SpanFrom struct {
	Start int
}

// SpanInclusive is a resolved range [Start, End] including End.
type SpanInclusive struct {
	Start int
	End   int
}

// Range is a bounded range with an exclusive end (start..end).
type Range struct {
	Start Offset
	End   Offset
}

// Resolve resolves Start then End against length. No ordering check is made
// between the two positions.
func (r Range) Resolve(length int) (Span, error) {
	start, end, err := resolvePair(r.Start, r.End, length)
	if err != nil {
		return Span{}, err
	}

	return Span{Start: start, End: end}, nil
}

// MustResolve is like Resolve but panics on underflow.
func (r Range) MustResolve(length int) Span {
	span, err := r.Resolve(length)
	if err != nil {
		panic(err)
	}

	return span
}

// Bounds implements Selector.
func (r Range) Bounds(length int) (int, int, error) {
	span, err := r.Resolve(length)
	return span.Start, span.End, err
}

func (r Range) String() string {
	return r.Start.String() + ".." + r.End.String()
}

func (Range) index() {}

// RangeFrom is a range with only a start (start..), running to the end.
type RangeFrom struct {
	Start Offset
}

// Resolve resolves Start against length.
func (r RangeFrom) Resolve(length int) (SpanFrom, error) {
	start, err := r.Start.Resolve(length)
	if err != nil {
		return SpanFrom{}, err
	}

	return SpanFrom{Start: start}, nil
}

// MustResolve is like Resolve but panics on underflow.
func (r RangeFrom) MustResolve(length int) SpanFrom {
	span, err := r.Resolve(length)
	if err != nil {
		panic(err)
	}

	return span
}

// Bounds implements Selector.
func (r RangeFrom) Bounds(length int) (int, int, error) {
	span, err := r.Resolve(length)
	if err != nil {
		return 0, 0, err
	}

	return span.Start, length, nil
}

func (r RangeFrom) String() string {
	return r.Start.String() + ".."
}

func (RangeFrom) index() {}

// RangeInclusive is a bounded range including its end (start..=end).
//
// FromBack(1) as End is the last element. FromBack(0) resolves to length, one
// past the last element, so slicing with it runs off the sequence.
type RangeInclusive struct {
	Start Offset
	End   Offset
}

// Resolve resolves Start then End against length.
func (r RangeInclusive) Resolve(length int) (SpanInclusive, error) {
	start, end, err := resolvePair(r.Start, r.End, length)
	if err != nil {
		return SpanInclusive{}, err
	}

	return SpanInclusive{Start: start, End: end}, nil
}

// MustResolve is like Resolve but panics on underflow.
func (r RangeInclusive) MustResolve(length int) SpanInclusive {
	span, err := r.Resolve(length)
	if err != nil {
		panic(err)
	}

	return span
}

// Bounds implements Selector.
func (r RangeInclusive) Bounds(length int) (int, int, error) {
	span, err := r.Resolve(length)
	if err != nil {
		return 0, 0, err
	}

	return span.Start, span.End + 1, nil
}

func (r RangeInclusive) String() string {
	return r.Start.String() + "..=" + r.End.String()
}

func (RangeInclusive) index() {}

// RangeFull selects the whole sequence (..).
type RangeFull struct{}

// Resolve returns [0, length).
func (RangeFull) Resolve(length int) Span {
	return Span{Start: 0, End: length}
}

// Bounds implements Selector.
func (RangeFull) Bounds(length int) (int, int, error) {
	return 0, length, nil
}

func (RangeFull) String() string {
	return ".."
}

func (RangeFull) index() {}

func resolvePair(start, end Offset, length int) (int, int, error) {
	s, err := start.Resolve(length)
	if err != nil {
		return 0, 0, err
	}

	e, err := end.Resolve(length)
	if err != nil {
		return 0, 0, err
	}

	return s, e, nil
}
