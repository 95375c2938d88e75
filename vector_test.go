package vectorx_test

import (
	"errors"
	"math"
	"testing"

	. "github.com/comalice/vectorx"
	"github.com/comalice/vectorx/testutil"
)

func TestNewCapacity(t *testing.T) {
	for _, c := range []int{0, 1, 2, 7, 64, 1000} {
		v, err := New[string](WithCapacity(c))
		if err != nil {
			t.Fatalf("New(WithCapacity(%d)): %v", c, err)
		}
		testutil.AssertLenCap[string](t, v, 0, c)
	}
}

func TestNewDefaultDoesNotAllocate(t *testing.T) {
	v, err := New[int]()
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertLenCap[int](t, v, 0, 0)
}

func TestNewNegativeCapacity(t *testing.T) {
	v, err := New[int](WithCapacity(-1))
	if v != nil {
		t.Error("expected nil vector on error")
	}
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
	var argErr *ArgumentError
	if !errors.As(err, &argErr) || argErr.Value != -1 {
		t.Errorf("expected *ArgumentError with Value -1, got %#v", err)
	}
}

func TestZeroValueUsable(t *testing.T) {
	var v Vector[int]
	v.Push(1)
	v.Push(2)
	testutil.AssertElems[int](t, &v, 1, 2)
}

// Test geometric growth: 0 -> 2 -> 4 -> 8 -> 16 -> 32, second call no-op.
func TestEnsureCapacityDoubling(t *testing.T) {
	v, _ := New[int]()
	if err := v.EnsureCapacity(30); err != nil {
		t.Fatal(err)
	}
	if v.Cap() != 32 {
		t.Fatalf("expected capacity 32, got %d", v.Cap())
	}
	if err := v.EnsureCapacity(20); err != nil {
		t.Fatal(err)
	}
	if v.Cap() != 32 {
		t.Errorf("EnsureCapacity(20) should be a no-op, cap=%d", v.Cap())
	}
	if err := v.EnsureCapacity(30); err != nil {
		t.Fatal(err)
	}
	if v.Cap() != 32 {
		t.Errorf("repeat EnsureCapacity(30) changed cap to %d", v.Cap())
	}
}

func TestEnsureCapacityKeepsElements(t *testing.T) {
	v, _ := New[int](WithCapacity(3))
	v.PushAll(1, 2, 3)
	if err := v.EnsureCapacity(10); err != nil {
		t.Fatal(err)
	}
	if v.Cap() != 12 {
		t.Errorf("expected 3 -> 6 -> 12, got %d", v.Cap())
	}
	testutil.AssertElems[int](t, v, 1, 2, 3)
}

func TestEnsureCapacityNegative(t *testing.T) {
	v := Of(1)
	if err := v.EnsureCapacity(-5); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
	if err := v.Reserve(-1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected ErrInvalidArgument, got %v", err)
	}
}

func TestReserve(t *testing.T) {
	v, _ := New[int](WithCapacity(4))
	if err := v.Reserve(4); err != nil {
		t.Fatal(err)
	}
	if v.Cap() != 8 {
		t.Errorf("Reserve(4) from 4: cap=%d, want 8", v.Cap())
	}
	if err := v.Reserve(0); err != nil {
		t.Fatal(err)
	}
	if v.Cap() != 8 {
		t.Errorf("Reserve(0) changed cap to %d", v.Cap())
	}
}

func TestReserveOverflow(t *testing.T) {
	v, _ := New[int](WithCapacity(4))
	err := v.Reserve(math.MaxInt)
	if !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("Reserve(MaxInt) error = %v, want ErrInvalidArgument", err)
	}
	var ae *ArgumentError
	if !errors.As(err, &ae) || ae.Op != "Reserve" || ae.Value != math.MaxInt {
		t.Errorf("Reserve(MaxInt) error = %#v", err)
	}
	if v.Cap() != 4 {
		t.Errorf("failed Reserve changed cap to %d", v.Cap())
	}
}

func TestPushGrowthReallocationCount(t *testing.T) {
	v, _ := New[int]()
	reallocs, last := 0, v.Cap()
	for i := 0; i < 1<<12; i++ {
		v.Push(i)
		if v.Cap() != last {
			reallocs++
			last = v.Cap()
		}
	}
	// 2, 4, ..., 4096
	if reallocs != 12 {
		t.Errorf("expected 12 reallocations for 4096 pushes, got %d", reallocs)
	}
}

func TestShrinkToFit(t *testing.T) {
	v, _ := New[int](WithCapacity(10))
	v.PushAll(1, 2, 3)
	v.ShrinkToFit()
	testutil.AssertLenCap[int](t, v, 3, 3)
	testutil.AssertElems[int](t, v, 1, 2, 3)

	v.ShrinkToFit()
	testutil.AssertLenCap[int](t, v, 3, 3)
}

func TestPushPopIdentity(t *testing.T) {
	v := Of("a", "b")
	before := v.ToSlice()
	v.Push("z")
	got, ok := v.Pop()
	if !ok || got != "z" {
		t.Fatalf("Pop() = %q, %v; want \"z\", true", got, ok)
	}
	testutil.AssertElems[string](t, v, before...)
}

func TestPopEmpty(t *testing.T) {
	v := Of[int]()
	if _, ok := v.Pop(); ok {
		t.Error("Pop on empty vector reported a value")
	}
	if _, ok := v.Top(); ok {
		t.Error("Top on empty vector reported a value")
	}
	testutil.MustPanicWith(t, ErrIndexOutOfRange, func() { v.MustTop() })
}

func TestTop(t *testing.T) {
	v := Of(1, 2, 3)
	if x, ok := v.Top(); !ok || x != 3 {
		t.Errorf("Top() = %d, %v", x, ok)
	}
	if v.MustTop() != 3 || v.Len() != 3 {
		t.Error("MustTop should not remove")
	}
}

func TestGetSetBounds(t *testing.T) {
	v := Of(10, 20, 30)
	tests := []struct {
		name string
		i    int
		ok   bool
	}{
		{name: "first", i: 0, ok: true},
		{name: "last", i: 2, ok: true},
		{name: "negative", i: -1, ok: false},
		{name: "length", i: 3, ok: false},
		{name: "far", i: 100, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, ok := v.Get(tt.i); ok != tt.ok {
				t.Errorf("Get(%d) ok=%v, want %v", tt.i, ok, tt.ok)
			}
			if ok := v.Set(tt.i, 99); ok != tt.ok {
				t.Errorf("Set(%d) ok=%v, want %v", tt.i, ok, tt.ok)
			}
			if !tt.ok {
				testutil.MustPanicWith(t, ErrIndexOutOfRange, func() { v.MustGet(tt.i) })
				testutil.MustPanicWith(t, ErrIndexOutOfRange, func() { v.MustSet(tt.i, 0) })
			}
		})
	}
}

func TestGetSetEmpty(t *testing.T) {
	v, _ := New[int](WithCapacity(8))
	for _, i := range []int{-1, 0, 1, 7, 8} {
		if _, ok := v.Get(i); ok {
			t.Errorf("Get(%d) on empty vector succeeded", i)
		}
		if v.Set(i, 1) {
			t.Errorf("Set(%d) on empty vector succeeded", i)
		}
		testutil.MustPanicWith(t, ErrIndexOutOfRange, func() { v.MustGet(i) })
		testutil.MustPanicWith(t, ErrIndexOutOfRange, func() { v.MustSet(i, 1) })
	}
}

func TestIndexErrorDetails(t *testing.T) {
	v := Of(1, 2)
	defer func() {
		r := recover()
		ie, ok := r.(*IndexError)
		if !ok {
			t.Fatalf("expected *IndexError, got %T", r)
		}
		if ie.Index != 5 || ie.Len != 2 || ie.Op != "MustGet" {
			t.Errorf("unexpected IndexError: %+v", ie)
		}
	}()
	v.MustGet(5)
}

func TestInsertRemoveRoundTrip(t *testing.T) {
	for i := 0; i < 5; i++ {
		v := Of(0, 1, 2, 3, 4)
		x, ok := v.RemoveAt(i)
		if !ok || x != i {
			t.Fatalf("RemoveAt(%d) = %d, %v", i, x, ok)
		}
		if !v.Insert(i, x) {
			t.Fatalf("Insert(%d) failed", i)
		}
		testutil.AssertElems[int](t, v, 0, 1, 2, 3, 4)
	}
}

func TestInsertBounds(t *testing.T) {
	v := Of(1, 2)
	if v.Insert(-1, 0) || v.Insert(3, 0) {
		t.Error("Insert accepted out-of-range index")
	}
	if !v.Insert(2, 3) {
		t.Error("Insert at Len() should append")
	}
	if !v.Insert(0, 0) {
		t.Error("Insert at 0 failed")
	}
	testutil.AssertElems[int](t, v, 0, 1, 2, 3)
}

func TestRemoveDropOutOfRange(t *testing.T) {
	v := Of(1)
	if _, ok := v.RemoveAt(1); ok {
		t.Error("RemoveAt(1) on length-1 vector succeeded")
	}
	if v.DropAt(-1) {
		t.Error("DropAt(-1) succeeded")
	}
	if !v.DropAt(0) || !v.IsEmpty() {
		t.Error("DropAt(0) should empty the vector")
	}
}

func TestRemoveUnordered(t *testing.T) {
	v := Of(1, 2, 3, 4)
	x, ok := v.RemoveUnordered(1)
	if !ok || x != 2 {
		t.Fatalf("RemoveUnordered(1) = %d, %v", x, ok)
	}
	testutil.AssertElems[int](t, v, 1, 4, 3)

	x, ok = v.RemoveUnordered(2)
	if !ok || x != 3 {
		t.Fatalf("RemoveUnordered(last) = %d, %v", x, ok)
	}
	testutil.AssertElems[int](t, v, 1, 4)
}

func TestSwap(t *testing.T) {
	v := Of("a", "b", "c")
	if !v.Swap(0, 2) {
		t.Fatal("Swap failed")
	}
	testutil.AssertElems[string](t, v, "c", "b", "a")
	if v.Swap(0, 3) {
		t.Error("Swap accepted out-of-range index")
	}
}

func TestTruncate(t *testing.T) {
	v := Of(1, 2, 3, 4)
	c := v.Cap()
	v.Truncate(10)
	testutil.AssertElems[int](t, v, 1, 2, 3, 4)
	v.Truncate(2)
	testutil.AssertElems[int](t, v, 1, 2)
	v.Truncate(-3)
	testutil.AssertLenCap[int](t, v, 0, c)
}

func TestClearAndReset(t *testing.T) {
	v, _ := New[int](WithCapacity(4))
	v.PushAll(1, 2, 3)
	v.Clear()
	testutil.AssertLenCap[int](t, v, 0, 4)
	v.Push(9)
	testutil.AssertElems[int](t, v, 9)

	v.Reset()
	testutil.AssertLenCap[int](t, v, 0, 0)
}

func TestCloneIndependent(t *testing.T) {
	v, _ := New[int](WithCapacity(16))
	v.PushAll(1, 2, 3)
	c := v.Clone()
	c.MustSet(0, 100)
	c.Push(4)
	v.Push(5)
	testutil.AssertElems[int](t, v, 1, 2, 3, 5)
	testutil.AssertElems[int](t, c, 100, 2, 3, 4)
}

func TestIterators(t *testing.T) {
	v := Of("x", "y", "z")

	var idx []int
	var vals []string
	for i, s := range v.All() {
		idx = append(idx, i)
		vals = append(vals, s)
	}
	if len(idx) != 3 || idx[2] != 2 || vals[0] != "x" {
		t.Errorf("All yielded %v %v", idx, vals)
	}

	var back []string
	for _, s := range v.Backward() {
		back = append(back, s)
	}
	if len(back) != 3 || back[0] != "z" || back[2] != "x" {
		t.Errorf("Backward yielded %v", back)
	}

	n := 0
	for range v.Values() {
		n++
		if n == 2 {
			break
		}
	}
	if n != 2 {
		t.Errorf("Values did not stop early, n=%d", n)
	}
}
