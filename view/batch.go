package view

import (
	"fmt"

	"github.com/arloliu/dataview/obs"
)

// BatchView groups the observations of a container into batches of a fixed
// size. It implements obs.Container[[]T]: observation i of a BatchView is the
// i-th batch, materialized as a list of per-observation results.
//
// The batch count is derived entirely from the underlying count n, the batch
// size b and the partial policy: ceil(n/b) batches when partial batches are
// kept, floor(n/b) when the trailing partial batch is dropped.
type BatchView[T any] struct {
	src     obs.Container[T]
	size    int
	partial bool
}

var (
	_ obs.Container[[]int]     = (*BatchView[int])(nil)
	_ obs.IntoContainer[[]int] = (*BatchView[int])(nil)
)

// Batches creates a batch view over c. size must be positive; the partial
// flag decides whether a trailing batch smaller than size is kept.
func Batches[T any](c obs.Container[T], size int, partial bool) (*BatchView[T], error) {
	if size <= 0 {
		return nil, fmt.Errorf("batch size must be positive, got %d", size)
	}

	return &BatchView[T]{src: c, size: size, partial: partial}, nil
}

// NumObs returns the number of batches. It satisfies obs.Container so batch
// views compose with everything built on the observation contract.
func (b *BatchView[T]) NumObs() int {
	n := b.src.NumObs()
	if b.partial {
		return (n + b.size - 1) / b.size
	}

	return n / b.size
}

// NumBatches is an alias for NumObs under its domain name.
func (b *BatchView[T]) NumBatches() int {
	return b.NumObs()
}

// BatchSize returns the configured batch size. The final batch of a partial
// view may be smaller.
func (b *BatchView[T]) BatchSize() int {
	return b.size
}

// span returns the observation range [lo, hi) covered by batch i.
func (b *BatchView[T]) span(i int) (lo, hi int, err error) {
	if err := obs.CheckIndex(i, b.NumObs()); err != nil {
		return 0, 0, err
	}

	lo = i * b.size
	hi = lo + b.size
	if n := b.src.NumObs(); hi > n {
		hi = n
	}

	return lo, hi, nil
}

// At materializes batch i as a list of per-observation results.
func (b *BatchView[T]) At(i int) ([]T, error) {
	lo, hi, err := b.span(i)
	if err != nil {
		return nil, err
	}

	batch := make([]T, 0, hi-lo)
	for idx := lo; idx < hi; idx++ {
		v, err := b.src.At(idx)
		if err != nil {
			return nil, err
		}
		batch = append(batch, v)
	}

	return batch, nil
}

// AtInto materializes batch i into buf, reusing the slice and, when the
// source supports in-place access, the element buffers left in its slots by
// earlier batches. Elements beyond the batch length keep their old contents.
func (b *BatchView[T]) AtInto(buf []T, i int) ([]T, error) {
	lo, hi, err := b.span(i)
	if err != nil {
		return nil, err
	}

	size := hi - lo
	if cap(buf) >= size {
		buf = buf[:size]
	} else {
		grown := make([]T, size)
		copy(grown, buf)
		buf = grown
	}

	into, reuse := b.src.(obs.IntoContainer[T])
	for j := 0; j < size; j++ {
		if reuse {
			buf[j], err = into.AtInto(buf[j], lo+j)
		} else {
			buf[j], err = b.src.At(lo + j)
		}
		if err != nil {
			return nil, err
		}
	}

	return buf, nil
}

// ViewAt returns batch i as a zero-copy sub-container instead of a
// materialized list: the raw multi-index access result. Contiguous-slicing
// sources return their native handle.
func (b *BatchView[T]) ViewAt(i int) (obs.Container[T], error) {
	lo, hi, err := b.span(i)
	if err != nil {
		return nil, err
	}

	idxs := make([]int, hi-lo)
	for j := range idxs {
		idxs[j] = lo + j
	}

	return Subset(b.src, idxs)
}
