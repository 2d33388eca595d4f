package partition

import (
	"fmt"
	"iter"
)

// Fold is one (train, validation) index partition.
type Fold struct {
	Train []int
	Val   []int
}

// Folds is a lazy k-fold partition of the index domain 0..n-1. Folds are
// contiguous, their sizes differ by at most one, and the larger folds come
// first. Individual folds are computed on demand.
type Folds struct {
	n int
	k int
}

// KFold partitions 0..n-1 into k folds; each fold in turn serves as the
// validation set with the complement as the training set. Requires
// 2 <= k <= n.
//
// Shuffled cross-validation is obtained by composing with a shuffled view
// (or pre-permuted indices), not by an option here: the fold arithmetic stays
// deterministic.
func KFold(n, k int) (*Folds, error) {
	if k < 2 || k > n {
		return nil, fmt.Errorf("fold count must be in [2, %d], got %d", n, k)
	}

	return &Folds{n: n, k: k}, nil
}

// LeaveOut derives a leave-p-out partition: k = n/p folds of (roughly) p
// observations each. Requires 1 <= p <= n/2.
func LeaveOut(n, p int) (*Folds, error) {
	if p < 1 || p > n/2 {
		return nil, fmt.Errorf("leave-out size must be in [1, %d], got %d", n/2, p)
	}

	return KFold(n, n/p)
}

// NumObs returns the size of the partitioned index domain.
func (f *Folds) NumObs() int {
	return f.n
}

// NumFolds returns k.
func (f *Folds) NumFolds() int {
	return f.k
}

// span returns the validation range [lo, hi) of fold i. The n%k extra
// observations are front-loaded onto the first folds.
func (f *Folds) span(i int) (lo, hi int) {
	base := f.n / f.k
	rem := f.n % f.k

	lo = i*base + min(i, rem)
	hi = lo + base
	if i < rem {
		hi++
	}

	return lo, hi
}

// Fold returns fold i. The train set is the in-order complement of the
// validation set, so train ∪ val covers every index exactly once.
func (f *Folds) Fold(i int) (Fold, error) {
	if i < 0 || i >= f.k {
		return Fold{}, fmt.Errorf("fold index %d out of range [0, %d)", i, f.k)
	}

	lo, hi := f.span(i)

	val := make([]int, hi-lo)
	for j := range val {
		val[j] = lo + j
	}

	train := make([]int, 0, f.n-(hi-lo))
	for j := 0; j < lo; j++ {
		train = append(train, j)
	}
	for j := hi; j < f.n; j++ {
		train = append(train, j)
	}

	return Fold{Train: train, Val: val}, nil
}

// All returns a lazy sequence of the k folds in order.
func (f *Folds) All() iter.Seq[Fold] {
	return func(yield func(Fold) bool) {
		for i := 0; i < f.k; i++ {
			fold, err := f.Fold(i)
			if err != nil {
				return
			}
			if !yield(fold) {
				return
			}
		}
	}
}
