package vectorx

import (
	"golang.org/x/exp/constraints"
	"golang.org/x/exp/slices"
)

// Sort sorts v in place in ascending order. Capacity is left untouched.
func Sort[T constraints.Ordered](v *Vector[T]) {
	slices.Sort(v.buf.Live())
}

// SortFunc sorts v in place using cmp, which returns a negative number when
// a < b, zero when equal and a positive number when a > b. Not stable.
func SortFunc[T any](v *Vector[T], cmp func(a, b T) int) {
	slices.SortFunc(v.buf.Live(), cmp)
}

// SortStableFunc is SortFunc keeping equal elements in their original order.
func SortStableFunc[T any](v *Vector[T], cmp func(a, b T) int) {
	slices.SortStableFunc(v.buf.Live(), cmp)
}

// IsSorted reports whether r is in ascending order.
func IsSorted[T constraints.Ordered](r Reader[T]) bool {
	return slices.IsSorted(r.readable().buf.Live())
}

// Uniq removes consecutive duplicates in place. Sort first to remove all
// duplicates.
func Uniq[T comparable](v *Vector[T]) {
	v.buf.SetLen(len(slices.Compact(v.buf.Live())))
}
