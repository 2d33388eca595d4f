// Package partition implements index-set partitioning: train/validation
// splitting, k-fold and leave-p-out cross-validation, stratified variants,
// and class-rebalancing resampling.
//
// Every function here is pure index arithmetic over the domain 0..n-1. None
// of them touch observation data; the returned index sets are meant to be
// handed to view.Subset (or the dataview root wrappers) to obtain lazy,
// zero-copy subsets of the actual container.
//
// Randomness is explicit. Functions that can shuffle or sample accept a
// *rand.Rand via WithRand; with WithShuffle alone a fresh PCG source is
// seeded from the process-wide generator at the call boundary. The core
// algorithms never reach for a hidden global, which keeps runs reproducible
// when the caller supplies a seeded source.
package partition
