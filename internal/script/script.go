// Package script describes vector operation scripts for the vectorx harness.
//
// A Script is a YAML document naming an initial capacity and a list of
// steps. Validation checks structure only; negative sizes inside steps are
// passed through so the vector's own argument checks are exercised.
package script

import (
	"errors"
	"fmt"
	"strings"
)

// OpType names a vector operation a Step performs.
type OpType string

const (
	OpPush           OpType = "push"
	OpPop            OpType = "pop"
	OpGet            OpType = "get"
	OpSet            OpType = "set"
	OpInsert         OpType = "insert"
	OpRemoveAt       OpType = "removeAt"
	OpEnsureCapacity OpType = "ensureCapacity"
	OpReserve        OpType = "reserve"
	OpShrinkToFit    OpType = "shrinkToFit"
	OpTruncate       OpType = "truncate"
	OpClear          OpType = "clear"
	OpSort           OpType = "sort"
	OpRev            OpType = "rev"
	OpUniq           OpType = "uniq"
	OpFilter         OpType = "filter"
	OpMap            OpType = "map"
	OpRange          OpType = "range"
)

var knownOps = map[OpType]bool{
	OpPush: true, OpPop: true, OpGet: true, OpSet: true, OpInsert: true,
	OpRemoveAt: true, OpEnsureCapacity: true, OpReserve: true,
	OpShrinkToFit: true, OpTruncate: true, OpClear: true, OpSort: true,
	OpRev: true, OpUniq: true, OpFilter: true, OpMap: true, OpRange: true,
}

// Predicate names the filter applied by an OpFilter step.
type Predicate string

const (
	KeepEven     Predicate = "even"
	KeepOdd      Predicate = "odd"
	KeepPositive Predicate = "positive"
)

// Step is one operation. Which fields apply depends on Op:
//   - push: Values
//   - get, removeAt: Index
//   - set, insert: Index, Value
//   - ensureCapacity, reserve, truncate: N
//   - filter: Keep
//   - map: Add, Scale (x*Scale + Add; Scale 0 means 1)
//   - range: Start, End (appended inclusive)
type Step struct {
	Op     OpType    `json:"op" yaml:"op"`
	Values []int     `json:"values,omitempty" yaml:"values,omitempty"`
	Index  int       `json:"index,omitempty" yaml:"index,omitempty"`
	Value  int       `json:"value,omitempty" yaml:"value,omitempty"`
	N      int       `json:"n,omitempty" yaml:"n,omitempty"`
	Keep   Predicate `json:"keep,omitempty" yaml:"keep,omitempty"`
	Add    int       `json:"add,omitempty" yaml:"add,omitempty"`
	Scale  int       `json:"scale,omitempty" yaml:"scale,omitempty"`
	Start  int       `json:"start,omitempty" yaml:"start,omitempty"`
	End    int       `json:"end,omitempty" yaml:"end,omitempty"`
}

// Script is a named sequence of steps run against one Vector[int].
type Script struct {
	Version  string `json:"version,omitempty" yaml:"version,omitempty"`
	Name     string `json:"name" yaml:"name"`
	Capacity int    `json:"capacity,omitempty" yaml:"capacity,omitempty"`
	Steps    []Step `json:"steps" yaml:"steps"`
}

// Validate checks the script:
// - Non-empty Name
// - Non-negative Capacity
// - At least one step, each valid
func (s *Script) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return errors.New("script name is required")
	}
	if s.Capacity < 0 {
		return fmt.Errorf("capacity %d must be >= 0", s.Capacity)
	}
	if len(s.Steps) == 0 {
		return errors.New("steps list is required and cannot be empty")
	}
	for i := range s.Steps {
		if err := s.Steps[i].Validate(); err != nil {
			return fmt.Errorf("step %d validation failed: %w", i, err)
		}
	}
	return nil
}

// Validate checks that the step names a known op with the fields it needs.
func (st *Step) Validate() error {
	if st.Op == "" {
		return errors.New("op is required")
	}
	if !knownOps[st.Op] {
		return fmt.Errorf("unknown op %q", st.Op)
	}
	switch st.Op {
	case OpPush:
		if len(st.Values) == 0 {
			return errors.New("push requires values")
		}
	case OpFilter:
		switch st.Keep {
		case KeepEven, KeepOdd, KeepPositive:
		default:
			return fmt.Errorf("filter: unknown predicate %q", st.Keep)
		}
	}
	return nil
}

func (p Predicate) fn() func(int) bool {
	switch p {
	case KeepEven:
		return func(x int) bool { return x%2 == 0 }
	case KeepOdd:
		return func(x int) bool { return x%2 != 0 }
	default:
		return func(x int) bool { return x > 0 }
	}
}
