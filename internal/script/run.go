package script

import (
	"fmt"

	"github.com/comalice/vectorx"
)

// Result records the outcome of one step.
type Result struct {
	Step  int
	Op    OpType
	OK    bool // false when a total operation reported absence
	Value int  // element read, popped or removed, when OK
	Len   int
	Cap   int
	// Pretty is the vector rendered after the step.
	Pretty string
}

// Run executes the steps in order against a fresh vector and returns it.
// observe, when non-nil, receives each step's Result. Run stops at the
// first step that returns an error.
func (s *Script) Run(observe func(Result)) (*vectorx.Vector[int], error) {
	v, err := vectorx.New[int](vectorx.WithCapacity(s.Capacity))
	if err != nil {
		return nil, fmt.Errorf("script %q: %w", s.Name, err)
	}

	for i, st := range s.Steps {
		res := Result{Step: i, Op: st.Op, OK: true}
		if err := apply(v, st, &res); err != nil {
			return v, fmt.Errorf("script %q step %d (%s): %w", s.Name, i, st.Op, err)
		}
		res.Len, res.Cap = v.Len(), v.Cap()
		res.Pretty = v.String()
		if observe != nil {
			observe(res)
		}
	}
	return v, nil
}

func apply(v *vectorx.Vector[int], st Step, res *Result) error {
	switch st.Op {
	case OpGet:
		res.Value, res.OK = read(v.AsReadOnly(), st.Index)
		return nil
	case OpSort:
		vectorx.Sort(v)
		return nil
	case OpRev:
		v.RevInPlace()
		return nil
	case OpUniq:
		vectorx.Uniq(v)
		return nil
	case OpFilter:
		v.FilterInPlace(st.Keep.fn())
		return nil
	case OpMap:
		scale := st.Scale
		if scale == 0 {
			scale = 1
		}
		v.MapInPlace(func(x int) int { return x*scale + st.Add })
		return nil
	case OpRange:
		v.AppendFrom(vectorx.Range(st.Start, st.End))
		return nil
	}
	return write(v.AsWriteOnly(), st, res)
}

func read(r vectorx.Reader[int], i int) (int, bool) {
	return r.Get(i)
}

func write(w vectorx.Writer[int], st Step, res *Result) error {
	switch st.Op {
	case OpPush:
		w.PushAll(st.Values...)
	case OpPop:
		res.Value, res.OK = w.Pop()
	case OpSet:
		res.OK = w.Set(st.Index, st.Value)
	case OpInsert:
		res.OK = w.Insert(st.Index, st.Value)
	case OpRemoveAt:
		res.Value, res.OK = w.RemoveAt(st.Index)
	case OpEnsureCapacity:
		return w.EnsureCapacity(st.N)
	case OpReserve:
		return w.Reserve(st.N)
	case OpShrinkToFit:
		w.ShrinkToFit()
	case OpTruncate:
		w.Truncate(st.N)
	case OpClear:
		w.Clear()
	default:
		return fmt.Errorf("unknown op %q", st.Op)
	}
	return nil
}
