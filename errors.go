package vectorx

import (
	"errors"
	"fmt"
)

// Sentinel errors. Partial operations panic with values wrapping these;
// recover and test with errors.Is.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrNotFound        = errors.New("not found")
)

type (
	// ArgumentError is returned when a size argument is negative or would
	// overflow the capacity.
	ArgumentError struct {
		Op    string
		Value int
	}

	// IndexError is the panic value of MustGet, MustSet and friends.
	IndexError struct {
		Op    string
		Index int
		Len   int
	}
)

func (e *ArgumentError) Error() string {
	if e.Value >= 0 {
		return fmt.Sprintf("vectorx: %s: invalid argument %d (capacity overflow)", e.Op, e.Value)
	}
	return fmt.Sprintf("vectorx: %s: invalid argument %d (must be >= 0)", e.Op, e.Value)
}

// Unwrap returns ErrInvalidArgument for errors.Is() compatibility.
func (e *ArgumentError) Unwrap() error { return ErrInvalidArgument }

func (e *IndexError) Error() string {
	return fmt.Sprintf("vectorx: %s: index %d out of range [0:%d]", e.Op, e.Index, e.Len)
}

// Unwrap returns ErrIndexOutOfRange for errors.Is() compatibility.
func (e *IndexError) Unwrap() error { return ErrIndexOutOfRange }

func checkNonNegative(op string, n int) error {
	if n < 0 {
		return &ArgumentError{Op: op, Value: n}
	}
	return nil
}
