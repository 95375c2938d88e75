package vectorx

import (
	"iter"
	"math"

	"github.com/comalice/vectorx/internal/buffer"
)

// Vector is a growable array. A *Vector[T] is the read-write handle; narrow
// it with AsReadOnly or AsWriteOnly.
// The zero value is an empty vector ready to use.
// Not safe for concurrent use.
type Vector[T any] struct {
	buf buffer.Buffer[T]
}

//
// Construction
//

// New creates an empty vector. With WithCapacity(n) the backing buffer holds
// exactly n slots; the default allocates nothing.
func New[T any](opts ...Option) (*Vector[T], error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if err := checkNonNegative("New", o.capacity); err != nil {
		return nil, err
	}
	return &Vector[T]{buf: *buffer.New[T](o.capacity)}, nil
}

// Of builds a vector holding xs in order. xs is copied.
func Of[T any](xs ...T) *Vector[T] {
	return FromSlice(xs)
}

//
// Capacity management
//

func (v *Vector[T]) Len() int      { return v.buf.Len() }
func (v *Vector[T]) Cap() int      { return v.buf.Cap() }
func (v *Vector[T]) IsEmpty() bool { return v.buf.Len() == 0 }

// EnsureCapacity guarantees Cap() >= n, doubling the current capacity (or
// starting from 2) until it fits, then reallocating once.
func (v *Vector[T]) EnsureCapacity(n int) error {
	if err := checkNonNegative("EnsureCapacity", n); err != nil {
		return err
	}
	v.buf.EnsureCapacity(n)
	return nil
}

// Reserve guarantees room for extra more slots beyond the current capacity.
func (v *Vector[T]) Reserve(extra int) error {
	if err := checkNonNegative("Reserve", extra); err != nil {
		return err
	}
	if extra > math.MaxInt-v.buf.Cap() {
		return &ArgumentError{Op: "Reserve", Value: extra}
	}
	v.buf.EnsureCapacity(v.buf.Cap() + extra)
	return nil
}

// ShrinkToFit reallocates the buffer to exactly Len() slots.
func (v *Vector[T]) ShrinkToFit() { v.buf.ShrinkToFit() }

// Truncate drops every element at index >= n. No-op when n >= Len().
// A negative n is treated as 0 and empties the vector.
func (v *Vector[T]) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n < v.buf.Len() {
		v.buf.SetLen(n)
	}
}

// Clear removes all elements and keeps the buffer.
func (v *Vector[T]) Clear() { v.buf.SetLen(0) }

// Reset removes all elements and releases the buffer.
func (v *Vector[T]) Reset() { v.buf.Release() }

//
// Element access
//

// Push appends x. Amortized O(1).
func (v *Vector[T]) Push(x T) { v.buf.Push(x) }

// PushAll appends xs in order, growing at most once.
func (v *Vector[T]) PushAll(xs ...T) {
	v.buf.EnsureCapacity(v.buf.Len() + len(xs))
	for _, x := range xs {
		v.buf.Push(x)
	}
}

// Pop removes and returns the last element.
func (v *Vector[T]) Pop() (T, bool) {
	if v.buf.Len() == 0 {
		var zero T
		return zero, false
	}
	return v.buf.Pop(), true
}

// Top returns the last element without removing it.
func (v *Vector[T]) Top() (T, bool) {
	n := v.buf.Len()
	if n == 0 {
		var zero T
		return zero, false
	}
	return v.buf.At(n - 1), true
}

// MustTop is Top that panics with an *IndexError on an empty vector.
func (v *Vector[T]) MustTop() T {
	x, ok := v.Top()
	if !ok {
		panic(&IndexError{Op: "MustTop", Index: -1, Len: 0})
	}
	return x
}

func (v *Vector[T]) inRange(i int) bool { return i >= 0 && i < v.buf.Len() }

// Get returns the element at i, or false when i is out of range.
func (v *Vector[T]) Get(i int) (T, bool) {
	if !v.inRange(i) {
		var zero T
		return zero, false
	}
	return v.buf.At(i), true
}

// Set replaces the element at i. It reports false when i is out of range.
func (v *Vector[T]) Set(i int, x T) bool {
	if !v.inRange(i) {
		return false
	}
	v.buf.Store(i, x)
	return true
}

// MustGet is Get that panics with an *IndexError when i is out of range.
func (v *Vector[T]) MustGet(i int) T {
	if !v.inRange(i) {
		panic(&IndexError{Op: "MustGet", Index: i, Len: v.buf.Len()})
	}
	return v.buf.At(i)
}

// MustSet is Set that panics with an *IndexError when i is out of range.
func (v *Vector[T]) MustSet(i int, x T) {
	if !v.inRange(i) {
		panic(&IndexError{Op: "MustSet", Index: i, Len: v.buf.Len()})
	}
	v.buf.Store(i, x)
}

// Insert places x at i, shifting the tail right. i may equal Len().
func (v *Vector[T]) Insert(i int, x T) bool {
	if i < 0 || i > v.buf.Len() {
		return false
	}
	v.buf.InsertAt(i, x)
	return true
}

// RemoveAt removes the element at i, shifting the tail left.
func (v *Vector[T]) RemoveAt(i int) (T, bool) {
	if !v.inRange(i) {
		var zero T
		return zero, false
	}
	return v.buf.RemoveAt(i), true
}

// DropAt is RemoveAt without the removed value.
func (v *Vector[T]) DropAt(i int) bool {
	_, ok := v.RemoveAt(i)
	return ok
}

// RemoveUnordered removes the element at i by moving the last element into
// its slot. O(1), does not preserve order.
func (v *Vector[T]) RemoveUnordered(i int) (T, bool) {
	if !v.inRange(i) {
		var zero T
		return zero, false
	}
	x := v.buf.At(i)
	last := v.buf.Pop()
	if i < v.buf.Len() {
		v.buf.Store(i, last)
	}
	return x, true
}

// Swap exchanges the elements at i and j.
func (v *Vector[T]) Swap(i, j int) bool {
	if !v.inRange(i) || !v.inRange(j) {
		return false
	}
	pi, pj := v.buf.Ptr(i), v.buf.Ptr(j)
	*pi, *pj = *pj, *pi
	return true
}

// Clone returns an independent copy with capacity equal to Len().
func (v *Vector[T]) Clone() *Vector[T] {
	return &Vector[T]{buf: *v.buf.Clone()}
}

//
// Iteration
//

// All yields index/element pairs in order.
func (v *Vector[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < v.buf.Len(); i++ {
			if !yield(i, v.buf.At(i)) {
				return
			}
		}
	}
}

// Values yields elements in order.
func (v *Vector[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < v.buf.Len(); i++ {
			if !yield(v.buf.At(i)) {
				return
			}
		}
	}
}

// Backward yields index/element pairs from last to first.
func (v *Vector[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := v.buf.Len() - 1; i >= 0; i-- {
			if !yield(i, v.buf.At(i)) {
				return
			}
		}
	}
}
