package vectorx

import "iter"

// Reader is satisfied by handles that grant read access: *Vector[T] and
// ReadOnly[T]. The unexported method seals it to this package.
type Reader[T any] interface {
	Len() int
	Cap() int
	IsEmpty() bool
	Get(i int) (T, bool)
	MustGet(i int) T
	Top() (T, bool)
	All() iter.Seq2[int, T]
	Values() iter.Seq[T]
	Backward() iter.Seq2[int, T]
	ToSlice() []T

	readable() *Vector[T]
}

// Writer is satisfied by handles that grant write access: *Vector[T] and
// WriteOnly[T].
type Writer[T any] interface {
	Push(x T)
	PushAll(xs ...T)
	Pop() (T, bool)
	Set(i int, x T) bool
	MustSet(i int, x T)
	Insert(i int, x T) bool
	RemoveAt(i int) (T, bool)
	DropAt(i int) bool
	Clear()
	EnsureCapacity(n int) error
	Reserve(extra int) error
	ShrinkToFit()
	Truncate(n int)
	AppendFrom(r Reader[T])

	writable() *Vector[T]
}

var (
	_ Reader[int] = (*Vector[int])(nil)
	_ Writer[int] = (*Vector[int])(nil)
	_ Reader[int] = ReadOnly[int]{}
	_ Writer[int] = WriteOnly[int]{}
)

func (v *Vector[T]) readable() *Vector[T] { return v }
func (v *Vector[T]) writable() *Vector[T] { return v }

// AsReadOnly narrows v to a read-only view. The view shares v's storage:
// later writes through v are visible through it.
func (v *Vector[T]) AsReadOnly() ReadOnly[T] { return ReadOnly[T]{v: v} }

// AsWriteOnly narrows v to a write-only view sharing v's storage.
func (v *Vector[T]) AsWriteOnly() WriteOnly[T] { return WriteOnly[T]{v: v} }

// ReadOnly is a read-only view of a Vector. There is no way back to the
// read-write handle. Obtain one with AsReadOnly; the zero value has no
// vector behind it and panics on use.
type ReadOnly[T any] struct {
	v *Vector[T]
}

func (r ReadOnly[T]) Len() int                    { return r.v.Len() }
func (r ReadOnly[T]) Cap() int                    { return r.v.Cap() }
func (r ReadOnly[T]) IsEmpty() bool               { return r.v.IsEmpty() }
func (r ReadOnly[T]) Get(i int) (T, bool)         { return r.v.Get(i) }
func (r ReadOnly[T]) MustGet(i int) T             { return r.v.MustGet(i) }
func (r ReadOnly[T]) Top() (T, bool)              { return r.v.Top() }
func (r ReadOnly[T]) All() iter.Seq2[int, T]      { return r.v.All() }
func (r ReadOnly[T]) Values() iter.Seq[T]         { return r.v.Values() }
func (r ReadOnly[T]) Backward() iter.Seq2[int, T] { return r.v.Backward() }
func (r ReadOnly[T]) ToSlice() []T                { return r.v.ToSlice() }
func (r ReadOnly[T]) String() string              { return r.v.String() }
func (r ReadOnly[T]) readable() *Vector[T]        { return r.v }

// WriteOnly is a write-only view of a Vector. Obtain one with AsWriteOnly;
// the zero value has no vector behind it and panics on use.
type WriteOnly[T any] struct {
	v *Vector[T]
}

func (w WriteOnly[T]) Push(x T)                   { w.v.Push(x) }
func (w WriteOnly[T]) PushAll(xs ...T)            { w.v.PushAll(xs...) }
func (w WriteOnly[T]) Pop() (T, bool)             { return w.v.Pop() }
func (w WriteOnly[T]) Set(i int, x T) bool        { return w.v.Set(i, x) }
func (w WriteOnly[T]) MustSet(i int, x T)         { w.v.MustSet(i, x) }
func (w WriteOnly[T]) Insert(i int, x T) bool     { return w.v.Insert(i, x) }
func (w WriteOnly[T]) RemoveAt(i int) (T, bool)   { return w.v.RemoveAt(i) }
func (w WriteOnly[T]) DropAt(i int) bool          { return w.v.DropAt(i) }
func (w WriteOnly[T]) Clear()                     { w.v.Clear() }
func (w WriteOnly[T]) EnsureCapacity(n int) error { return w.v.EnsureCapacity(n) }
func (w WriteOnly[T]) Reserve(extra int) error    { return w.v.Reserve(extra) }
func (w WriteOnly[T]) ShrinkToFit()               { w.v.ShrinkToFit() }
func (w WriteOnly[T]) Truncate(n int)             { w.v.Truncate(n) }
func (w WriteOnly[T]) AppendFrom(r Reader[T])     { w.v.AppendFrom(r) }
func (w WriteOnly[T]) writable() *Vector[T]       { return w.v }
