package obs

// sliceContainer bridges a plain []T: native length is the observation count,
// native indexing is the access operation.
type sliceContainer[T any] struct {
	data []T
}

// FromSlice wraps data as a Container without copying it. The returned
// container implements Slicer: contiguous ascending index runs come back as
// re-sliced handles sharing the original backing array.
func FromSlice[T any](data []T) Container[T] {
	return sliceContainer[T]{data: data}
}

func (s sliceContainer[T]) NumObs() int {
	return len(s.data)
}

func (s sliceContainer[T]) At(i int) (T, error) {
	if err := CheckIndex(i, len(s.data)); err != nil {
		var zero T
		return zero, err
	}

	return s.data[i], nil
}

func (s sliceContainer[T]) Slice(idxs []int) (Container[T], bool) {
	start, ok := contiguousRun(idxs)
	if !ok || start < 0 || start+len(idxs) > len(s.data) {
		return nil, false
	}

	return sliceContainer[T]{data: s.data[start : start+len(idxs)]}, true
}
