package main

import (
	"fmt"

	"github.com/comalice/vectorx"
	"github.com/spf13/cobra"
)

var (
	growthPushes   int
	growthCapacity int

	growthCmd = &cobra.Command{
		Use:   "growth",
		Short: "Push N elements and report every reallocation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			changes, final, err := growthTrace(growthCapacity, growthPushes)
			if err != nil {
				return err
			}
			for _, c := range changes {
				logger.Debug("realloc", "len", c.Len, "from", c.From, "to", c.To)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "pushes=%d reallocations=%d final len=%d cap=%d\n",
				growthPushes, len(changes), final.Len(), final.Cap())
			return nil
		},
	}
)

func init() {
	growthCmd.Flags().IntVarP(&growthPushes, "pushes", "n", 1000, "number of elements to push")
	growthCmd.Flags().IntVarP(&growthCapacity, "capacity", "c", 0, "initial capacity")
}

// capChange records one reallocation observed while pushing.
type capChange struct {
	Len  int
	From int
	To   int
}

// growthTrace pushes 0..pushes-1 onto a vector of the given initial
// capacity and returns every capacity change.
func growthTrace(capacity, pushes int) ([]capChange, *vectorx.Vector[int], error) {
	if pushes < 0 {
		return nil, nil, fmt.Errorf("pushes %d must be >= 0", pushes)
	}
	v, err := vectorx.New[int](vectorx.WithCapacity(capacity))
	if err != nil {
		return nil, nil, err
	}
	var changes []capChange
	last := v.Cap()
	for i := 0; i < pushes; i++ {
		v.Push(i)
		if c := v.Cap(); c != last {
			changes = append(changes, capChange{Len: v.Len(), From: last, To: c})
			last = c
		}
	}
	return changes, v, nil
}
