// Package buffer provides the raw backing storage for vectorx vectors.
//
// This package uses ONLY the Go standard library. It knows nothing about
// capability tags; the root package layers read/write handles on top.
//
// Core invariants:
// - 0 <= length <= capacity, where capacity is len(data)
// - Growth is geometric (factor 2), so N appends cost O(log N) reallocations
// - Vacated slots are zeroed so the GC can reclaim what they referenced
// - Copies never read past length
package buffer
