package view

import (
	"github.com/arloliu/dataview/obs"
)

// View presents a container restricted and reordered by an index set. It is a
// cheap, disposable value: the index set is owned by the View, the data is
// not.
type View[T any] struct {
	src  obs.Container[T]
	idxs []int
}

var (
	_ obs.Container[int]     = (*View[int])(nil)
	_ obs.IntoContainer[int] = (*View[int])(nil)
	_ obs.Slicer[int]        = (*View[int])(nil)
)

// New creates a view of c restricted to idxs, in order. Every index is
// validated against [0, c.NumObs()); a violation is an error, never a clamp.
// Duplicate indices are allowed (resampling relies on them).
//
// When c is itself a View the two index sets are composed immediately, so the
// result always references the original container.
func New[T any](c obs.Container[T], idxs []int) (*View[T], error) {
	n := c.NumObs()
	for _, idx := range idxs {
		if err := obs.CheckIndex(idx, n); err != nil {
			return nil, err
		}
	}

	if inner, ok := c.(*View[T]); ok {
		composed := make([]int, len(idxs))
		for i, idx := range idxs {
			composed[i] = inner.idxs[idx]
		}

		return &View[T]{src: inner.src, idxs: composed}, nil
	}

	own := make([]int, len(idxs))
	copy(own, idxs)

	return &View[T]{src: c, idxs: own}, nil
}

// Subset returns a zero-copy subset of c. Containers implementing obs.Slicer
// get the chance to return their native handle; everything else is wrapped in
// a generic View. This is the customization point for containers whose native
// slicing is already free, e.g. contiguous arrays.
func Subset[T any](c obs.Container[T], idxs []int) (obs.Container[T], error) {
	if slicer, ok := c.(obs.Slicer[T]); ok {
		if sub, ok := slicer.Slice(idxs); ok {
			return sub, nil
		}
	}

	return New(c, idxs)
}

// NumObs returns the size of the index set.
func (v *View[T]) NumObs() int {
	return len(v.idxs)
}

// At returns the observation at position i of the view, delegating through
// the composed index.
func (v *View[T]) At(i int) (T, error) {
	if err := obs.CheckIndex(i, len(v.idxs)); err != nil {
		var zero T
		return zero, err
	}

	return v.src.At(v.idxs[i])
}

// AtInto is the in-place variant of At. When the underlying container lacks
// the capability it falls back to At, ignoring buf.
func (v *View[T]) AtInto(buf T, i int) (T, error) {
	if err := obs.CheckIndex(i, len(v.idxs)); err != nil {
		var zero T
		return zero, err
	}

	if into, ok := v.src.(obs.IntoContainer[T]); ok {
		return into.AtInto(buf, v.idxs[i])
	}

	return v.src.At(v.idxs[i])
}

// Slice composes the view's indices with idxs, yielding another flat view
// over the original container. Invalid indices decline the slice.
func (v *View[T]) Slice(idxs []int) (obs.Container[T], bool) {
	sub, err := New[T](v, idxs)
	if err != nil {
		return nil, false
	}

	return sub, true
}

// Indices returns a copy of the view's index set.
func (v *View[T]) Indices() []int {
	out := make([]int, len(v.idxs))
	copy(out, v.idxs)

	return out
}

// Materialize copies the viewed observations into a fresh slice.
func (v *View[T]) Materialize() ([]T, error) {
	return obs.Materialize[T](v)
}
