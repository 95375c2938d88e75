package vectorx

import "github.com/comalice/vectorx/internal/buffer"

// Pair is the element type produced by Zip and CartesianProduct.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Append returns a new vector holding a's elements followed by b's.
func Append[T any](a, b Reader[T]) *Vector[T] {
	out := &Vector[T]{buf: *buffer.New[T](a.Len() + b.Len())}
	out.AppendFrom(a)
	out.AppendFrom(b)
	return out
}

// AppendFrom pushes r's elements onto v in order. r may be v itself.
func (v *Vector[T]) AppendFrom(r Reader[T]) {
	src := r.readable()
	n := src.Len()
	v.buf.EnsureCapacity(v.buf.Len() + n)
	for i := 0; i < n; i++ {
		v.buf.Push(src.buf.At(i))
	}
}

// Zip pairs elements positionally, stopping at the shorter input.
func Zip[A, B any](a Reader[A], b Reader[B]) *Vector[Pair[A, B]] {
	return ZipWith(a, b, func(x A, y B) Pair[A, B] { return Pair[A, B]{First: x, Second: y} })
}

// ZipWith combines elements positionally with f, stopping at the shorter
// input.
func ZipWith[A, B, C any](a Reader[A], b Reader[B], f func(A, B) C) *Vector[C] {
	va, vb := a.readable(), b.readable()
	n := min(va.Len(), vb.Len())
	out := &Vector[C]{buf: *buffer.New[C](n)}
	for i := 0; i < n; i++ {
		out.buf.Push(f(va.buf.At(i), vb.buf.At(i)))
	}
	return out
}

// CartesianProduct returns every (a[i], b[j]) pair in row-major order.
func CartesianProduct[A, B any](a Reader[A], b Reader[B]) *Vector[Pair[A, B]] {
	return Map2(a, b, func(x A, y B) Pair[A, B] { return Pair[A, B]{First: x, Second: y} })
}

// Map2 applies f to every combination of elements, outer loop over a and
// inner loop over b.
func Map2[A, B, C any](a Reader[A], b Reader[B], f func(A, B) C) *Vector[C] {
	va, vb := a.readable(), b.readable()
	out := &Vector[C]{buf: *buffer.New[C](va.Len() * vb.Len())}
	for i := 0; i < va.Len(); i++ {
		x := va.buf.At(i)
		for j := 0; j < vb.Len(); j++ {
			out.buf.Push(f(x, vb.buf.At(j)))
		}
	}
	return out
}

// Apply applies every function in fs to every value in xs, in the same
// order as Map2.
func Apply[A, B any](fs Reader[func(A) B], xs Reader[A]) *Vector[B] {
	return Map2(fs, xs, func(f func(A) B, x A) B { return f(x) })
}

// Flatten concatenates the inner vectors in order. Nil inner vectors count
// as empty.
func Flatten[T any](vv Reader[*Vector[T]]) *Vector[T] {
	src := vv.readable()
	total := 0
	for i := 0; i < src.Len(); i++ {
		if inner := src.buf.At(i); inner != nil {
			total += inner.Len()
		}
	}
	out := &Vector[T]{buf: *buffer.New[T](total)}
	for i := 0; i < src.Len(); i++ {
		if inner := src.buf.At(i); inner != nil {
			out.AppendFrom(inner)
		}
	}
	return out
}

// FlatMap maps each element to a vector and concatenates the results.
func FlatMap[T, U any](r Reader[T], f func(T) *Vector[U]) *Vector[U] {
	src := r.readable()
	out := &Vector[U]{}
	for i := 0; i < src.Len(); i++ {
		if inner := f(src.buf.At(i)); inner != nil {
			out.AppendFrom(inner)
		}
	}
	return out
}
