// Package view implements the lazy subset layer between containers and the
// loader: a View pairs a container with an index set and behaves as a new
// container of len(indices) observations without touching the underlying
// data.
//
// Views nest by index composition, not by wrapping. Constructing a view over
// a view collapses into a single (original container, composed indices) pair,
// so repeated subsetting never builds an indirection chain:
//
//	v1, _ := view.New(c, []int{4, 2, 0})
//	v2, _ := view.New[int](v1, []int{1, 2}) // stored as view(c, [2, 0])
//
// Subset is the preferred entry point: containers that can subset themselves
// natively (obs.Slicer, e.g. contiguous arrays) return their own zero-copy
// handle instead of a generic View.
//
// BatchView groups a container's observations into fixed-size batches and is
// itself a container whose observations are batches, which is what lets the
// loader stream batches through the same serial and parallel machinery as
// single observations.
package view
