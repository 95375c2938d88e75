package buffer

import "math"

// GrowthFactor is the multiplier applied to capacity on each reallocation.
const GrowthFactor = 2

// Buffer is a contiguous block of slots, the first Len of which are live.
// The zero value is an empty buffer with no allocation.
type Buffer[T any] struct {
	length int
	data   []T
}

// New allocates a buffer of exactly capacity slots. capacity must be >= 0;
// callers validate it.
func New[T any](capacity int) *Buffer[T] {
	b := &Buffer[T]{}
	if capacity > 0 {
		b.data = make([]T, capacity)
	}
	return b
}

// Adopt takes ownership of s without copying. The caller must not touch s
// afterwards.
func Adopt[T any](s []T) *Buffer[T] {
	return &Buffer[T]{length: len(s), data: s}
}

func (b *Buffer[T]) Len() int { return b.length }
func (b *Buffer[T]) Cap() int { return len(b.data) }

// NextCapacity returns the capacity EnsureCapacity would grow from current to
// satisfy n. It returns current when no growth is needed, and n itself when
// another doubling would overflow int.
func NextCapacity(current, n int) int {
	if current >= n {
		return current
	}
	c := current
	if c == 0 {
		c = GrowthFactor
	}
	for c < n {
		if c > math.MaxInt/GrowthFactor {
			return n
		}
		c *= GrowthFactor
	}
	return c
}

// EnsureCapacity grows the buffer so that Cap() >= n. n must be >= 0.
func (b *Buffer[T]) EnsureCapacity(n int) {
	c := NextCapacity(len(b.data), n)
	if c == len(b.data) {
		return
	}
	b.realloc(c)
}

// ShrinkToFit reallocates to exactly Len() slots.
func (b *Buffer[T]) ShrinkToFit() {
	if len(b.data) > b.length {
		b.realloc(b.length)
	}
}

func (b *Buffer[T]) realloc(c int) {
	if c == 0 {
		b.data = nil
		return
	}
	next := make([]T, c)
	copy(next, b.data[:b.length])
	b.data = next
}

// At returns slot i without bounds checks beyond Go's own.
func (b *Buffer[T]) At(i int) T { return b.data[i] }

// Store writes slot i.
func (b *Buffer[T]) Store(i int, v T) { b.data[i] = v }

// Ptr returns the address of slot i. Valid until the next reallocation.
func (b *Buffer[T]) Ptr(i int) *T { return &b.data[i] }

// Push appends v, growing if needed.
func (b *Buffer[T]) Push(v T) {
	b.EnsureCapacity(b.length + 1)
	b.data[b.length] = v
	b.length++
}

// Pop removes the last element. The buffer must be non-empty.
func (b *Buffer[T]) Pop() T {
	b.length--
	v := b.data[b.length]
	b.clearSlots(b.length, b.length+1)
	return v
}

// Blit copies n elements from src[srcOff:] into b at dstOff. Overlapping
// ranges within the same buffer are handled.
func (b *Buffer[T]) Blit(dstOff int, src *Buffer[T], srcOff, n int) {
	copy(b.data[dstOff:dstOff+n], src.data[srcOff:srcOff+n])
}

// InsertAt shifts [i, Len) right by one and stores v at i. 0 <= i <= Len.
func (b *Buffer[T]) InsertAt(i int, v T) {
	b.EnsureCapacity(b.length + 1)
	b.Blit(i+1, b, i, b.length-i)
	b.data[i] = v
	b.length++
}

// RemoveAt shifts [i+1, Len) left by one and returns the removed value.
// 0 <= i < Len.
func (b *Buffer[T]) RemoveAt(i int) T {
	v := b.data[i]
	b.Blit(i, b, i+1, b.length-i-1)
	b.length--
	b.clearSlots(b.length, b.length+1)
	return v
}

// SetLen moves the live boundary to n. Slots dropped by shrinking are
// zeroed; growing requires n <= Cap() and exposes whatever the slots hold.
func (b *Buffer[T]) SetLen(n int) {
	if n < b.length {
		b.clearSlots(n, b.length)
	}
	b.length = n
}

// Release drops the backing storage entirely.
func (b *Buffer[T]) Release() {
	b.length = 0
	b.data = nil
}

// Live returns the live prefix. It aliases the buffer.
func (b *Buffer[T]) Live() []T { return b.data[:b.length] }

// Clone returns an independent buffer sized to Len().
func (b *Buffer[T]) Clone() *Buffer[T] {
	c := New[T](b.length)
	copy(c.data, b.data[:b.length])
	c.length = b.length
	return c
}

// Steal hands the whole backing slice, resliced to Len(), to the caller and
// resets the buffer.
func (b *Buffer[T]) Steal() []T {
	s := b.data[:b.length]
	b.Release()
	return s
}

func (b *Buffer[T]) clearSlots(from, to int) {
	clear(b.data[from:to])
}
