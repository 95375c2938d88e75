package vectorx

import "github.com/comalice/vectorx/internal/buffer"

// Map returns a new vector holding f applied to each element of r.
func Map[T, U any](r Reader[T], f func(T) U) *Vector[U] {
	return MapIndexed(r, func(_ int, x T) U { return f(x) })
}

// MapIndexed is Map with the element index passed to f.
func MapIndexed[T, U any](r Reader[T], f func(int, T) U) *Vector[U] {
	src := r.readable()
	n := src.Len()
	out := &Vector[U]{buf: *buffer.New[U](n)}
	for i := 0; i < n; i++ {
		out.buf.Push(f(i, src.buf.At(i)))
	}
	return out
}

// MapInPlace replaces each element with f applied to it.
func (v *Vector[T]) MapInPlace(f func(T) T) {
	for i := 0; i < v.buf.Len(); i++ {
		p := v.buf.Ptr(i)
		*p = f(*p)
	}
}

// Filter returns a new vector of the elements satisfying keep, in order.
func Filter[T any](r Reader[T], keep func(T) bool) *Vector[T] {
	return FilterIndexed(r, func(_ int, x T) bool { return keep(x) })
}

// FilterIndexed is Filter with the element index passed to keep.
func FilterIndexed[T any](r Reader[T], keep func(int, T) bool) *Vector[T] {
	src := r.readable()
	out := &Vector[T]{}
	for i := 0; i < src.Len(); i++ {
		if x := src.buf.At(i); keep(i, x) {
			out.buf.Push(x)
		}
	}
	return out
}

// FilterMap keeps the results of f that report true.
func FilterMap[T, U any](r Reader[T], f func(T) (U, bool)) *Vector[U] {
	src := r.readable()
	out := &Vector[U]{}
	for i := 0; i < src.Len(); i++ {
		if y, ok := f(src.buf.At(i)); ok {
			out.buf.Push(y)
		}
	}
	return out
}

// FilterInPlace drops the elements failing keep, compacting survivors to the
// left in their original order. Capacity is unchanged.
func (v *Vector[T]) FilterInPlace(keep func(T) bool) {
	j := 0
	for i := 0; i < v.buf.Len(); i++ {
		x := v.buf.At(i)
		if !keep(x) {
			continue
		}
		if i != j {
			v.buf.Store(j, x)
		}
		j++
	}
	v.buf.SetLen(j)
}

// Rev returns a new vector with r's elements in reverse order.
func Rev[T any](r Reader[T]) *Vector[T] {
	src := r.readable()
	n := src.Len()
	out := &Vector[T]{buf: *buffer.New[T](n)}
	for i := n - 1; i >= 0; i-- {
		out.buf.Push(src.buf.At(i))
	}
	return out
}

// RevInPlace reverses v with a two-pointer swap.
func (v *Vector[T]) RevInPlace() {
	for i, j := 0, v.buf.Len()-1; i < j; i, j = i+1, j-1 {
		pi, pj := v.buf.Ptr(i), v.buf.Ptr(j)
		*pi, *pj = *pj, *pi
	}
}
