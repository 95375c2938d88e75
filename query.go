package vectorx

import (
	"fmt"
	"reflect"
)

// Exists reports whether any element satisfies p. Scans left to right and
// stops at the first match.
func Exists[T any](r Reader[T], p func(T) bool) bool {
	_, ok := FindIndex(r, p)
	return ok
}

// ForAll reports whether every element satisfies p. Stops at the first
// failure; true for an empty vector.
func ForAll[T any](r Reader[T], p func(T) bool) bool {
	_, found := FindIndex(r, func(x T) bool { return !p(x) })
	return !found
}

// Mem reports whether r holds an element structurally equal to x
// (reflect.DeepEqual, so pointers are compared by what they point to).
func Mem[T any](r Reader[T], x T) bool {
	return Exists(r, func(y T) bool { return reflect.DeepEqual(x, y) })
}

// MemQ reports whether r holds an element == x. For pointer element types
// this is identity.
func MemQ[T comparable](r Reader[T], x T) bool {
	return Exists(r, func(y T) bool { return x == y })
}

// FindIndex returns the index of the first element satisfying p.
func FindIndex[T any](r Reader[T], p func(T) bool) (int, bool) {
	src := r.readable()
	for i := 0; i < src.Len(); i++ {
		if p(src.buf.At(i)) {
			return i, true
		}
	}
	return -1, false
}

// Find returns the first element satisfying p.
func Find[T any](r Reader[T], p func(T) bool) (T, bool) {
	i, ok := FindIndex(r, p)
	if !ok {
		var zero T
		return zero, false
	}
	return r.readable().buf.At(i), true
}

// MustFind is Find that panics with an error wrapping ErrNotFound when no
// element matches.
func MustFind[T any](r Reader[T], p func(T) bool) T {
	x, ok := Find(r, p)
	if !ok {
		panic(fmt.Errorf("vectorx: MustFind: %w", ErrNotFound))
	}
	return x
}

// FindMap returns the first result of f that reports true.
func FindMap[T, U any](r Reader[T], f func(T) (U, bool)) (U, bool) {
	src := r.readable()
	for i := 0; i < src.Len(); i++ {
		if y, ok := f(src.buf.At(i)); ok {
			return y, true
		}
	}
	var zero U
	return zero, false
}

// FoldLeft accumulates from the first element to the last.
func FoldLeft[T, A any](r Reader[T], init A, f func(A, T) A) A {
	acc := init
	src := r.readable()
	for i := 0; i < src.Len(); i++ {
		acc = f(acc, src.buf.At(i))
	}
	return acc
}

// FoldRight accumulates from the last element to the first. f takes the
// element first and the accumulator second.
func FoldRight[T, A any](r Reader[T], init A, f func(T, A) A) A {
	acc := init
	src := r.readable()
	for i := src.Len() - 1; i >= 0; i-- {
		acc = f(src.buf.At(i), acc)
	}
	return acc
}
