// Package dataview provides composable, zero-copy building blocks for feeding
// observation-indexed data to numerical and machine-learning pipelines.
//
// Everything is built on one contract: a container knows how many observations
// it holds (NumObs) and returns the observation at an index (At). Anything
// satisfying that contract composes with every other piece of the library.
//
// # Core Features
//
//   - Observation contract with optional in-place (AtInto) and zero-copy
//     slicing capabilities, detected by interface assertion
//   - Index views that subset and reorder containers without copying data,
//     and flatten when stacked
//   - Partitioning algorithms: proportional splits, k-fold and leave-p-out
//     cross-validation, stratified variants, over- and undersampling
//   - A loader with per-pass shuffling, batching, buffer reuse and a
//     concurrent bounded-queue prefetch pipeline
//   - Chunked, an append-only compressed row store (Zstd, S2, LZ4) with
//     xxHash64 integrity checks, usable directly as a container
//
// # Basic Usage
//
// Splitting a dataset and iterating shuffled batches:
//
//	import "github.com/arloliu/dataview"
//
//	cols, _ := obs.Columns(data, featureSize)
//	train, test, _ := dataview.TrainTestSplit[[]float64](cols, 0.2, partition.WithShuffle())
//
//	ld, _ := dataview.NewBatchLoader[[]float64](train, 32,
//	    loader.WithShuffle(), loader.WithSeed(42))
//	for batch, err := range ld.Batches() {
//	    if err != nil {
//	        return err
//	    }
//	    step(batch)
//	}
//
// Cross-validation:
//
//	folds, _ := dataview.KFold(cols.NumObs(), 5)
//	for fold := range folds.All() {
//	    trainView, _ := dataview.Subset[[]float64](cols, fold.Train)
//	    valView, _ := dataview.Subset[[]float64](cols, fold.Val)
//	    // train on trainView, evaluate on valView
//	}
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the obs, view,
// partition and loader packages, simplifying the most common use cases. For
// advanced usage and fine-grained control, use those packages directly.
package dataview

import (
	"fmt"
	"math/rand/v2"

	"github.com/arloliu/dataview/loader"
	"github.com/arloliu/dataview/obs"
	"github.com/arloliu/dataview/partition"
	"github.com/arloliu/dataview/view"
)

// NewLoader creates a loader over any observation container with custom
// options.
//
// This is the most flexible factory function, allowing full control over
// iteration through options. Use this when you need specific batching,
// shuffling or prefetching behavior.
//
// Parameters:
//   - c: The container to iterate
//   - opts: Optional configuration functions (see loader.Option)
//
// Available options:
//   - loader.WithBatchSize(n) / loader.WithPartial(keep)
//   - loader.WithShuffle() with loader.WithSeed(s) or loader.WithRand(rng)
//   - loader.WithBuffer() for allocation reuse on in-place capable containers
//   - loader.WithParallel() with loader.WithWorkers(n) and loader.WithPrefetch(n)
//
// Returns an error if the container is nil or empty, or if an option is
// invalid.
//
// Example:
//
//	ld, err := dataview.NewLoader[[]float64](cols,
//	    loader.WithShuffle(), loader.WithSeed(42),
//	    loader.WithParallel(), loader.WithWorkers(4),
//	)
func NewLoader[T any](c obs.Container[T], opts ...loader.Option) (*loader.Loader[T], error) {
	return loader.New(c, opts...)
}

// NewBatchLoader creates a loader that yields batches of the given size.
//
// This is the recommended factory function for training loops: it is
// NewLoader with the batch size set first, so further options can still
// override any part of the configuration.
//
// Parameters:
//   - c: The container to iterate
//   - batchSize: Observations per batch (must be positive)
//   - opts: Optional configuration functions (see loader.Option)
//
// Example:
//
//	ld, err := dataview.NewBatchLoader[[]float64](train, 32, loader.WithShuffle())
//	for batch, err := range ld.Batches() {
//	    ...
//	}
func NewBatchLoader[T any](c obs.Container[T], batchSize int, opts ...loader.Option) (*loader.Loader[T], error) {
	if batchSize <= 0 {
		return nil, fmt.Errorf("batch size must be positive, got %d", batchSize)
	}
	allOpts := append([]loader.Option{loader.WithBatchSize(batchSize)}, opts...)

	return loader.New(c, allOpts...)
}

// Subset returns a view of c restricted to the given observation indices, in
// the given order. No data is copied; stacked subsets flatten to a single
// view over the original container.
func Subset[T any](c obs.Container[T], idxs []int) (obs.Container[T], error) {
	return view.Subset(c, idxs)
}

// Shuffled returns a view of c with the observation order permuted by rng.
// A nil rng uses a freshly seeded source. The permutation is fixed at call
// time; call again for a new order.
func Shuffled[T any](c obs.Container[T], rng *rand.Rand) (obs.Container[T], error) {
	if c == nil {
		return nil, fmt.Errorf("container must not be nil")
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return view.New(c, rng.Perm(c.NumObs()))
}

// TrainTestSplit partitions c into a training view and a test view, with
// testFraction of the observations (rounded) going to the test view.
//
// Parameters:
//   - c: The container to split
//   - testFraction: Fraction of observations for the test view, in (0, 1)
//   - opts: Optional partition configuration (partition.WithShuffle,
//     partition.WithRand)
//
// Returns the train view, the test view, and an error if the fraction is out
// of range or the container is nil.
//
// Example:
//
//	train, test, err := dataview.TrainTestSplit[[]float64](cols, 0.2,
//	    partition.WithShuffle(), partition.WithRand(rng),
//	)
func TrainTestSplit[T any](c obs.Container[T], testFraction float64, opts ...partition.Option) (train, test obs.Container[T], err error) {
	if c == nil {
		return nil, nil, fmt.Errorf("container must not be nil")
	}

	parts, err := partition.Split(c.NumObs(), []float64{1 - testFraction}, opts...)
	if err != nil {
		return nil, nil, err
	}

	train, err = view.Subset(c, parts[0])
	if err != nil {
		return nil, nil, err
	}
	test, err = view.Subset(c, parts[1])
	if err != nil {
		return nil, nil, err
	}

	return train, test, nil
}

// KFold returns the k-fold cross-validation partitioning of n observations.
// It is a thin wrapper over partition.KFold; iterate the folds with All or
// index them with Fold.
func KFold(n, k int) (*partition.Folds, error) {
	return partition.KFold(n, k)
}
