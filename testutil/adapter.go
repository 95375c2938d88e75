package testutil

import (
	"errors"
	"testing"

	"github.com/comalice/vectorx"
)

// ReaderCase names one read-capable handle so a test can run the same
// assertions against every handle kind.
type ReaderCase[T any] struct {
	Name   string
	Reader vectorx.Reader[T]
}

// WriterCase names one write-capable handle.
type WriterCase[T any] struct {
	Name   string
	Writer vectorx.Writer[T]
}

// Readers returns the read-capable handles over v: the vector itself and its
// read-only view. Both share v's storage.
func Readers[T any](v *vectorx.Vector[T]) []ReaderCase[T] {
	return []ReaderCase[T]{
		{Name: "ReadWrite", Reader: v},
		{Name: "ReadOnly", Reader: v.AsReadOnly()},
	}
}

// Writers returns the write-capable handles over v.
func Writers[T any](v *vectorx.Vector[T]) []WriterCase[T] {
	return []WriterCase[T]{
		{Name: "ReadWrite", Writer: v},
		{Name: "WriteOnly", Writer: v.AsWriteOnly()},
	}
}

// AssertElems fails t unless r holds exactly want, in order.
func AssertElems[T comparable](t testing.TB, r vectorx.Reader[T], want ...T) {
	t.Helper()
	got := r.ToSlice()
	if len(got) != len(want) {
		t.Fatalf("elements = %v (len %d), want %v (len %d)", got, len(got), want, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("elements = %v, want %v (first difference at %d)", got, want, i)
		}
	}
}

// AssertLenCap fails t unless r has the given length and capacity.
func AssertLenCap[T any](t testing.TB, r vectorx.Reader[T], wantLen, wantCap int) {
	t.Helper()
	if r.Len() != wantLen || r.Cap() != wantCap {
		t.Fatalf("len=%d cap=%d, want len=%d cap=%d", r.Len(), r.Cap(), wantLen, wantCap)
	}
}

// MustPanicWith runs f and fails t unless it panics with an error matching
// target under errors.Is.
func MustPanicWith(t testing.TB, target error, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected panic wrapping %v, got none", target)
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value %v (%T) is not an error", r, r)
		}
		if !errors.Is(err, target) {
			t.Fatalf("panic %v does not wrap %v", err, target)
		}
	}()
	f()
}
