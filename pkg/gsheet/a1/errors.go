package a1

import (
	"errors"
	"fmt"
)

// ErrInvalidReference indicates a single-cell token that cannot be parsed.
var ErrInvalidReference = errors.New("invalid cell reference")

// ErrInvalidRange indicates a malformed composite range expression.
var ErrInvalidRange = errors.New("invalid range")

// RangeError describes why a range expression was rejected. It matches
// ErrInvalidRange with errors.Is; when one of the range halves failed to
// parse, Err holds that cause.
type RangeError struct {
	Range  string
	Reason string
	Err    error
}

func (e *RangeError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%v %q: %v", ErrInvalidRange, e.Range, e.Err)
	case e.Reason != "":
		return fmt.Sprintf("%v %q: %s", ErrInvalidRange, e.Range, e.Reason)
	}
	return fmt.Sprintf("%v %q", ErrInvalidRange, e.Range)
}

func (e *RangeError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrInvalidRange.
func (e *RangeError) Is(target error) bool {
	return target == ErrInvalidRange
}
