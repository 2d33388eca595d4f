package partition

import (
	"fmt"
	"math/rand/v2"
)

// groupByLabel collects the positions of each distinct label, preserving
// first-appearance order of the labels so results are deterministic.
func groupByLabel[L comparable](labels []L) ([]L, [][]int) {
	order := make([]L, 0)
	groups := make(map[L][]int)

	for i, label := range labels {
		if _, seen := groups[label]; !seen {
			order = append(order, label)
		}
		groups[label] = append(groups[label], i)
	}

	out := make([][]int, len(order))
	for i, label := range order {
		out[i] = groups[label]
	}

	return order, out
}

// StratifiedSplit splits like Split but preserves the relative proportion of
// every label group in each part (up to rounding): the split is computed
// independently inside each group's index subset, then corresponding parts
// are concatenated across groups.
//
// labels holds one group label per observation; len(labels) is the index
// domain. WithShuffle permutes within each group before slicing.
func StratifiedSplit[L comparable](labels []L, at []float64, opts ...Option) ([][]int, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("labels must not be empty")
	}
	if err := validateProportions(at); err != nil {
		return nil, err
	}
	cfg, err := newConfig(opts...)
	if err != nil {
		return nil, err
	}

	parts := make([][]int, len(at)+1)
	_, groups := groupByLabel(labels)

	for _, group := range groups {
		local := group
		if cfg.shuffle {
			local = shuffled(group, cfg.source())
		}

		for p, part := range sliceByProportions(local, at) {
			parts[p] = append(parts[p], part...)
		}
	}

	return parts, nil
}

// StratifiedKFold computes a k-fold partition independently inside each label
// group and concatenates corresponding folds, so every fold's validation set
// preserves the group proportions. Every group must hold at least k
// observations.
func StratifiedKFold[L comparable](labels []L, k int) ([]Fold, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("labels must not be empty")
	}
	if k < 2 || k > len(labels) {
		return nil, fmt.Errorf("fold count must be in [2, %d], got %d", len(labels), k)
	}

	order, groups := groupByLabel(labels)

	folds := make([]Fold, k)
	for g, group := range groups {
		local, err := KFold(len(group), k)
		if err != nil {
			return nil, fmt.Errorf("label group %v: %w", order[g], err)
		}

		for i := 0; i < k; i++ {
			fold, err := local.Fold(i)
			if err != nil {
				return nil, err
			}
			for _, idx := range fold.Train {
				folds[i].Train = append(folds[i].Train, group[idx])
			}
			for _, idx := range fold.Val {
				folds[i].Val = append(folds[i].Val, group[idx])
			}
		}
	}

	return folds, nil
}

// shuffled returns a permuted copy of idxs.
func shuffled(idxs []int, rng *rand.Rand) []int {
	out := make([]int, len(idxs))
	copy(out, idxs)
	rng.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})

	return out
}
