package vectorx

import (
	"github.com/comalice/vectorx/internal/buffer"
	"golang.org/x/exp/constraints"
)

// Range returns the integers from start to end inclusive, ascending when
// start <= end and descending otherwise.
func Range[I constraints.Integer](start, end I) *Vector[I] {
	if start <= end {
		v := &Vector[I]{buf: *buffer.New[I](rangeLen(start, end))}
		for i := start; ; i++ {
			v.buf.Push(i)
			if i == end {
				break
			}
		}
		return v
	}
	v := &Vector[I]{buf: *buffer.New[I](rangeLen(end, start))}
	for i := start; ; i-- {
		v.buf.Push(i)
		if i == end {
			break
		}
	}
	return v
}

// rangeLen is the element count of [lo, hi]. It is only a capacity hint;
// an overflowing span falls back to 0 and lets Push grow.
func rangeLen[I constraints.Integer](lo, hi I) int {
	n := int(hi-lo) + 1
	if n <= 0 {
		return 0
	}
	return n
}
