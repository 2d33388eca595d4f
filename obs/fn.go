package obs

import "fmt"

// funcContainer adapts a pure access function. It backs lazily materialized
// data: the function typically reads a row from disk or computes it on
// demand, which is also what makes the loader's prefetch pipeline worthwhile.
type funcContainer[T any] struct {
	n  int
	fn func(i int) (T, error)
}

// FromFunc wraps an access function as a Container of n observations.
// fn is only called with indices in [0, n).
func FromFunc[T any](n int, fn func(i int) (T, error)) (Container[T], error) {
	if n < 0 {
		return nil, fmt.Errorf("observation count must be non-negative, got %d", n)
	}
	if fn == nil {
		return nil, fmt.Errorf("access function must not be nil")
	}

	return funcContainer[T]{n: n, fn: fn}, nil
}

func (f funcContainer[T]) NumObs() int {
	return f.n
}

func (f funcContainer[T]) At(i int) (T, error) {
	if err := CheckIndex(i, f.n); err != nil {
		var zero T
		return zero, err
	}

	return f.fn(i)
}
