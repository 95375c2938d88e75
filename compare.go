package vectorx

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Equal reports whether a and b have the same length and equal elements.
// Capacity is ignored.
func Equal[T comparable](a, b Reader[T]) bool {
	return EqualFunc(a, b, func(x, y T) bool { return x == y })
}

// EqualFunc is Equal with a custom element equality.
func EqualFunc[A, B any](a Reader[A], b Reader[B], eq func(A, B) bool) bool {
	va, vb := a.readable(), b.readable()
	if va.Len() != vb.Len() {
		return false
	}
	for i := 0; i < va.Len(); i++ {
		if !eq(va.buf.At(i), vb.buf.At(i)) {
			return false
		}
	}
	return true
}

// Compare orders a and b lexicographically: the first differing element
// decides, otherwise the shorter vector is less. Returns -1, 0 or +1.
func Compare[T constraints.Ordered](a, b Reader[T]) int {
	return CompareFunc(a, b, cmp.Compare[T])
}

// CompareFunc is Compare with a custom element comparison.
func CompareFunc[A, B any](a Reader[A], b Reader[B], cmpFn func(A, B) int) int {
	va, vb := a.readable(), b.readable()
	n := min(va.Len(), vb.Len())
	for i := 0; i < n; i++ {
		if c := cmpFn(va.buf.At(i), vb.buf.At(i)); c != 0 {
			if c < 0 {
				return -1
			}
			return 1
		}
	}
	return cmp.Compare(va.Len(), vb.Len())
}
