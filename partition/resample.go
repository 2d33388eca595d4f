package partition

import (
	"fmt"
	"math"
	"math/rand/v2"
	"sort"
)

// Oversample rebalances label groups by replicating indices of the smaller
// groups until each reaches at least fraction × (largest group size); the
// fraction defaults to 1 and is set with WithFraction. Whole-group repeats
// come first, then a partial sample without replacement tops the group up, so
// every original index appears at least once in the result.
//
// Without WithShuffle the output keeps groups blocked in first-appearance
// order; with it the whole sequence is permuted.
func Oversample[L comparable](labels []L, opts ...Option) ([]int, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("labels must not be empty")
	}
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	_, groups := groupByLabel(labels)

	maxSize := 0
	for _, group := range groups {
		if len(group) > maxSize {
			maxSize = len(group)
		}
	}
	target := int(math.Ceil(cfg.fraction * float64(maxSize)))

	out := make([]int, 0, target*len(groups))
	for _, group := range groups {
		if len(group) >= target {
			out = append(out, group...)
			continue
		}

		full := target / len(group)
		for r := 0; r < full; r++ {
			out = append(out, group...)
		}
		if rem := target - full*len(group); rem > 0 {
			out = append(out, sampleWithoutReplacement(group, rem, cfg.source())...)
		}
	}

	if cfg.shuffle {
		rng := cfg.source()
		rng.Shuffle(len(out), func(i, j int) {
			out[i], out[j] = out[j], out[i]
		})
	}

	return out, nil
}

// Undersample rebalances label groups by sampling each one without
// replacement down to the smallest group's size. Without WithShuffle the
// output is sorted by original position; with it the sequence is permuted.
func Undersample[L comparable](labels []L, opts ...Option) ([]int, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("labels must not be empty")
	}
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	_, groups := groupByLabel(labels)

	minSize := len(labels)
	for _, group := range groups {
		if len(group) < minSize {
			minSize = len(group)
		}
	}

	out := make([]int, 0, minSize*len(groups))
	for _, group := range groups {
		if len(group) == minSize {
			out = append(out, group...)
			continue
		}
		out = append(out, sampleWithoutReplacement(group, minSize, cfg.source())...)
	}

	if cfg.shuffle {
		rng := cfg.source()
		rng.Shuffle(len(out), func(i, j int) {
			out[i], out[j] = out[j], out[i]
		})
	} else {
		sort.Ints(out)
	}

	return out, nil
}

// sampleWithoutReplacement draws k distinct elements of idxs.
func sampleWithoutReplacement(idxs []int, k int, rng *rand.Rand) []int {
	perm := rng.Perm(len(idxs))

	out := make([]int, k)
	for i := 0; i < k; i++ {
		out[i] = idxs[perm[i]]
	}

	return out
}
