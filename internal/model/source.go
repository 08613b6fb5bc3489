package model

import "fmt"

// Path represents a file system path. StdinPath stands for standard input.
type Path string

// StdinPath is the path used to read from standard input.
const StdinPath Path = "-"

// Unit is the atomic element a source is measured and sliced in.
type Unit string

const (
	// UnitLines splits a source into lines without their terminators.
	UnitLines Unit = "lines"
	// UnitBytes measures a source in bytes.
	UnitBytes Unit = "bytes"
	// UnitRunes measures a source in UTF-8 code points.
	UnitRunes Unit = "runes"
	// UnitFields splits a source on runs of whitespace.
	UnitFields Unit = "fields"
)

// Units lists every supported Unit.
var Units = []Unit{UnitLines, UnitBytes, UnitRunes, UnitFields}

// ParseUnit validates a unit name.
func ParseUnit(s string) (Unit, error) {
	for _, u := range Units {
		if string(u) == s {
			return u, nil
		}
	}

	return "", fmt.Errorf("unknown unit %q (want one of %v)", s, Units)
}

// Resolution is one expression resolved against one length.
type Resolution struct {
	Expr   Index
	Length int
	// Lo and Hi are the half-open slice bounds the expression denotes.
	Lo int
	Hi int
	// Elements holds the selected sample elements, if a sample was given.
	Elements []string
	Err      error
}

// Selection is the result of applying an expression to one source.
type Selection struct {
	Path   Path
	Expr   Index
	Unit   Unit
	Length int
	Lo     int
	Hi     int
	Output string
	Err    error
}
