package casefold

import (
	"errors"
	"strconv"
)

// ErrOutOfRange is matched by every *OutOfRangeError.
var ErrOutOfRange = errors.New("casefold: index out of range")

// An OutOfRangeError is returned when an index or range is outside of the
// valid bounds of a FoldedString.
type OutOfRangeError struct {
	Start int // requested index, or the start of the requested range
	End   int // end of the requested range, equal to Start for an index
	Len   int // length of the folded string
}

func (e *OutOfRangeError) Error() string {
	if e.Start == e.End {
		return "casefold: index " + strconv.Itoa(e.Start) +
			" out of range [0:" + strconv.Itoa(e.Len) + "]"
	}
	return "casefold: invalid range [" + strconv.Itoa(e.Start) + ":" +
		strconv.Itoa(e.End) + "] for length " + strconv.Itoa(e.Len)
}

// Is reports whether target is ErrOutOfRange.
func (e *OutOfRangeError) Is(target error) bool {
	return target == ErrOutOfRange
}
