package vectorx

import (
	"iter"

	"github.com/comalice/vectorx/internal/buffer"
)

// FromSlice returns a vector holding a copy of s. Capacity equals len(s).
func FromSlice[T any](s []T) *Vector[T] {
	v := &Vector[T]{buf: *buffer.New[T](len(s))}
	for _, x := range s {
		v.buf.Push(x)
	}
	return v
}

// ToSlice returns a copy of the live elements.
func (v *Vector[T]) ToSlice() []T {
	return v.Clone().buf.Steal()
}

// FromSliceSteal adopts s as the backing buffer without copying. The caller
// gives up s: writing to it afterwards corrupts the vector.
func FromSliceSteal[T any](s []T) *Vector[T] {
	return &Vector[T]{buf: *buffer.Adopt(s)}
}

// Steal hands the backing buffer to the caller without copying and resets
// v to empty with no storage. The returned slice has the live elements and
// may carry spare capacity.
func (v *Vector[T]) Steal() []T {
	return v.buf.Steal()
}

// FromSeq collects seq into a new vector.
func FromSeq[T any](seq iter.Seq[T]) *Vector[T] {
	v := &Vector[T]{}
	for x := range seq {
		v.buf.Push(x)
	}
	return v
}

// Extend pushes every value of seq onto v.
func (v *Vector[T]) Extend(seq iter.Seq[T]) {
	for x := range seq {
		v.buf.Push(x)
	}
}
