// Package vectorx provides Vector, a growable array with amortized O(1)
// append and capability-restricted handles.
//
// # Capabilities
//
// A *Vector[T] grants both read and write access. AsReadOnly and
// AsWriteOnly narrow it to a ReadOnly[T] or WriteOnly[T] view at no cost:
// the view is a single pointer to the same storage, so it observes every
// later mutation. Operations declare what they need by accepting Reader[T]
// or Writer[T]; passing a ReadOnly[T] where a Writer[T] is required does not
// compile. Both interfaces are sealed, and nothing converts a view back to
// the read-write handle.
//
//	v := vectorx.Of(3, 1, 2)
//	ro := v.AsReadOnly()
//	total := vectorx.FoldLeft(ro, 0, func(acc, x int) int { return acc + x })
//	// ro.Push(4) // compile error: ReadOnly has no Push
//
// # Growth
//
// Capacity doubles (starting from 2) whenever a write needs more room, so
// N pushes perform O(log N) reallocations. EnsureCapacity, Reserve and
// ShrinkToFit manage capacity explicitly.
//
// # Errors
//
// Every partial operation has a total form. Get, Set, Pop, Find and friends
// report absence with a bool. MustGet, MustSet, MustTop and MustFind panic
// with an error wrapping ErrIndexOutOfRange or ErrNotFound; use them only
// where the caller has already guaranteed the precondition. Negative sizes
// passed to New, EnsureCapacity or Reserve return an error wrapping
// ErrInvalidArgument.
//
// # Ownership
//
// FromSliceSteal and Steal move the backing buffer in or out without
// copying. The donor must not be used for storage afterwards; Steal resets
// the vector to empty.
//
// Vectors are not safe for concurrent use.
package vectorx
