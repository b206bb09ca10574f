// Package pick makes uniform random choices through an injectable source.
package pick

import "math/rand/v2"

// Source yields uniform integers in [0, n).
type Source interface {
	IntN(n int) int
}

// New returns a Source seeded from the runtime's random state.
func New() Source {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())) //nolint:gosec // crypto not needed for picking quotes
}

// Seeded returns a reproducible Source.
func Seeded(seed uint64) Source {
	return rand.New(rand.NewPCG(seed, seed)) //nolint:gosec // crypto not needed for picking quotes
}

// One returns a uniformly chosen element, or false when items is empty.
func One[T any](src Source, items []T) (T, bool) {
	var zero T
	if len(items) == 0 {
		return zero, false
	}
	return items[src.IntN(len(items))], true
}

// Fixed always returns the same index, clamped to the candidate count.
// Useful in tests.
type Fixed int

func (f Fixed) IntN(n int) int {
	return min(max(int(f), 0), n-1)
}

// Sequence returns its indices in order, each clamped to the candidate count,
// and repeats the last one when exhausted.
type Sequence struct {
	Indices []int
	next    int
}

func (s *Sequence) IntN(n int) int {
	if len(s.Indices) == 0 {
		return 0
	}
	i := s.Indices[min(s.next, len(s.Indices)-1)]
	s.next++
	return min(max(i, 0), n-1)
}
