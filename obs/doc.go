// Package obs defines the observation capability contract that every data
// container in dataview satisfies, plus bridges that let ordinary Go values
// (slices, dense arrays, access functions, groups of containers) participate
// without copying.
//
// # The contract
//
// A container needs exactly two operations: an observation count and access
// by position. Everything else in the module (views, partitioning, loading,
// prefetching) is built on this interface:
//
//	type Container[T any] interface {
//	    NumObs() int
//	    At(i int) (T, error)
//	}
//
// Two optional capabilities refine it. IntoContainer adds allocation-free
// access into a caller-supplied buffer; Slicer adds native zero-copy
// subsetting for containers that can represent a subset without a wrapper.
// Code that consumes containers probes for them with type assertions and
// falls back to the required operations when absent.
//
// # Bridges
//
// FromSlice adapts any []T. FromFunc adapts a pure access function, which is
// how lazily-loaded data (files, generated rows) joins the system. Columns
// adapts a dense column-major array following the last-axis-is-observation
// convention: every observation is one contiguous column. Zip and Keyed build
// composite containers from heterogeneous members and enforce that all
// members agree on the observation count; a mismatch is an error, never a
// silent truncation.
//
// # Ownership
//
// Containers are read-only from the module's perspective. No bridge ever
// mutates the wrapped value; the only writes happen into buffers the caller
// hands to AtInto.
package obs
