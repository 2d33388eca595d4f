package obs

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange reports an observation or batch index outside the
	// valid domain. Access errors wrap it together with the offending index
	// and the container's count.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrCountMismatch reports composite container members disagreeing on
	// their observation count.
	ErrCountMismatch = errors.New("observation count mismatch")
)

// Container is the minimal capability contract: an observation count and
// positional access. Indices are 0-based; i must be in [0, NumObs()).
//
// NumObs must be stable for the lifetime of an unmutated container. At must
// report an out-of-range index as an error wrapping ErrIndexOutOfRange rather
// than clamping it.
type Container[T any] interface {
	NumObs() int
	At(i int) (T, error)
}

// IntoContainer is an optional capability for allocation-free access. AtInto
// overwrites buf with observation i and returns the (possibly grown) buffer.
// Callers that find the capability missing fall back to At.
type IntoContainer[T any] interface {
	Container[T]
	AtInto(buf T, i int) (T, error)
}

// Slicer is an optional capability for containers whose native subsetting is
// zero-copy, e.g. contiguous arrays. Slice returns (nil, false) when the
// index set cannot be represented without copying or contains an invalid
// index; callers fall back to a generic view.
type Slicer[T any] interface {
	Container[T]
	Slice(idxs []int) (Container[T], bool)
}

// CheckIndex validates i against a container of n observations.
func CheckIndex(i, n int) error {
	if i < 0 || i >= n {
		return fmt.Errorf("%w: index %d, count %d", ErrIndexOutOfRange, i, n)
	}

	return nil
}

// Materialize copies every observation of c into a fresh slice, in order.
func Materialize[T any](c Container[T]) ([]T, error) {
	n := c.NumObs()
	out := make([]T, n)
	for i := 0; i < n; i++ {
		v, err := c.At(i)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}

	return out, nil
}

// contiguousRun reports whether idxs is a run of consecutive ascending
// indices, returning its start. Empty index sets are not runs.
func contiguousRun(idxs []int) (start int, ok bool) {
	if len(idxs) == 0 {
		return 0, false
	}
	for i := 1; i < len(idxs); i++ {
		if idxs[i] != idxs[i-1]+1 {
			return 0, false
		}
	}

	return idxs[0], true
}
