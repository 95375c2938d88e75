// Package benchmarks provides shared helpers for benchmark tests.
package benchmarks

import (
	"math/rand"

	"github.com/comalice/vectorx"
	"gopkg.in/yaml.v3"
)

// GenShuffled returns a vector holding 0..n-1 in a fixed pseudo-random order.
func GenShuffled(n int) *vectorx.Vector[int] {
	if n < 0 {
		n = 0
	}
	r := rand.New(rand.NewSource(int64(n)))
	return vectorx.FromSlice(r.Perm(n))
}

// GenNested returns outer vectors each holding inner consecutive integers.
func GenNested(outer, inner int) *vectorx.Vector[*vectorx.Vector[int]] {
	vv := vectorx.Of[*vectorx.Vector[int]]()
	for i := 0; i < outer; i++ {
		in := vectorx.Of[int]()
		for j := 0; j < inner; j++ {
			in.Push(i*inner + j)
		}
		vv.Push(in)
	}
	return vv
}

// GenYAML encodes a vector of n elements for decode benchmarks.
func GenYAML(n int) []byte {
	data, err := yaml.Marshal(GenShuffled(n))
	if err != nil {
		panic(err)
	}
	return data
}
