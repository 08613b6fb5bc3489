package model

import (
	"errors"
	"fmt"
)

// ErrBackOffsetUnderflow is matched by every error returned when a back-relative
// distance exceeds the length of the sequence it is resolved against.
var ErrBackOffsetUnderflow = errors.New("back offset underflow")

// UnderflowError reports a FromBack distance larger than the sequence length.
type UnderflowError struct {
	Distance uint
	Length   int
}

func (e *UnderflowError) Error() string {
	return fmt.Sprintf("%v: ^%d exceeds length %d", ErrBackOffsetUnderflow, e.Distance, e.Length)
}

// Is makes errors.Is(err, ErrBackOffsetUnderflow) hold.
func (e *UnderflowError) Is(target error) bool {
	return target == ErrBackOffsetUnderflow
}
