package partition

import (
	"fmt"
	"math"
)

// Split partitions the index domain 0..n-1 into len(at)+1 parts. Each value
// of at is the proportion of one part; the remainder is implicit. Proportions
// must lie in (0, 1) and sum to less than 1.
//
// Counts are derived by rounding each proportion and clamping to what is
// left, so the part lengths always sum to exactly n. Without WithShuffle the
// parts are contiguous ranges in sequence; with it the domain is permuted
// first.
func Split(n int, at []float64, opts ...Option) ([][]int, error) {
	if n < 0 {
		return nil, fmt.Errorf("observation count must be non-negative, got %d", n)
	}
	if err := validateProportions(at); err != nil {
		return nil, err
	}
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	indices := make([]int, n)
	for i := range indices {
		indices[i] = i
	}
	if cfg.shuffle {
		rng := cfg.source()
		rng.Shuffle(n, func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})
	}

	return sliceByProportions(indices, at), nil
}

func validateProportions(at []float64) error {
	if len(at) == 0 {
		return fmt.Errorf("at least one proportion is required")
	}

	sum := 0.0
	for _, p := range at {
		if p <= 0 || p >= 1 {
			return fmt.Errorf("proportion %v is outside (0, 1)", p)
		}
		sum += p
	}
	if sum >= 1 {
		return fmt.Errorf("proportions sum to %v, must be less than 1", sum)
	}

	return nil
}

// sliceByProportions cuts indices into len(at)+1 consecutive parts with
// rounded, clamped lengths. The parts share the backing array of indices.
func sliceByProportions(indices []int, at []float64) [][]int {
	n := len(indices)
	parts := make([][]int, 0, len(at)+1)

	lo := 0
	for _, p := range at {
		k := int(math.Round(p * float64(n)))
		if k > n-lo {
			k = n - lo
		}
		parts = append(parts, indices[lo:lo+k])
		lo += k
	}
	parts = append(parts, indices[lo:])

	return parts
}
