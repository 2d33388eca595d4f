package obs

import (
	"fmt"
	"sort"
)

// Sample pairs one observation from each member of a zipped container,
// typically features and the matching label.
type Sample[X, Y any] struct {
	X X
	Y Y
}

// zipContainer is a fixed heterogeneous group of two containers delegating
// access element-wise.
type zipContainer[X, Y any] struct {
	xs Container[X]
	ys Container[Y]
}

// Zip combines two containers into one whose observations are aligned pairs.
// Both members must report the same observation count; the count is validated
// here and re-checked on every access so a member mutated behind the bridge
// surfaces as an error instead of a truncated pass.
func Zip[X, Y any](xs Container[X], ys Container[Y]) (Container[Sample[X, Y]], error) {
	if xs.NumObs() != ys.NumObs() {
		return nil, fmt.Errorf("%w: %d vs %d", ErrCountMismatch, xs.NumObs(), ys.NumObs())
	}

	return zipContainer[X, Y]{xs: xs, ys: ys}, nil
}

func (z zipContainer[X, Y]) NumObs() int {
	return z.xs.NumObs()
}

func (z zipContainer[X, Y]) At(i int) (Sample[X, Y], error) {
	var zero Sample[X, Y]

	if z.xs.NumObs() != z.ys.NumObs() {
		return zero, fmt.Errorf("%w: %d vs %d", ErrCountMismatch, z.xs.NumObs(), z.ys.NumObs())
	}
	if err := CheckIndex(i, z.xs.NumObs()); err != nil {
		return zero, err
	}

	x, err := z.xs.At(i)
	if err != nil {
		return zero, err
	}
	y, err := z.ys.At(i)
	if err != nil {
		return zero, err
	}

	return Sample[X, Y]{X: x, Y: y}, nil
}

// keyedContainer is a label-to-container map delegating access element-wise.
type keyedContainer[T any] struct {
	keys    []string
	members map[string]Container[T]
	count   int
}

// Keyed combines a map of named containers into one whose observations are
// key-to-value maps. All members must report the same observation count,
// validated here and re-checked on access. Keys are visited in sorted order
// so access is deterministic.
func Keyed[T any](members map[string]Container[T]) (Container[map[string]T], error) {
	if len(members) == 0 {
		return nil, fmt.Errorf("keyed container requires at least one member")
	}

	keys := make([]string, 0, len(members))
	for k := range members {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	count := members[keys[0]].NumObs()
	for _, k := range keys[1:] {
		if n := members[k].NumObs(); n != count {
			return nil, fmt.Errorf("%w: member %q has %d observations, member %q has %d",
				ErrCountMismatch, keys[0], count, k, n)
		}
	}

	return &keyedContainer[T]{keys: keys, members: members, count: count}, nil
}

func (k *keyedContainer[T]) NumObs() int {
	return k.count
}

func (k *keyedContainer[T]) At(i int) (map[string]T, error) {
	for _, key := range k.keys {
		if n := k.members[key].NumObs(); n != k.count {
			return nil, fmt.Errorf("%w: member %q has %d observations, expected %d",
				ErrCountMismatch, key, n, k.count)
		}
	}
	if err := CheckIndex(i, k.count); err != nil {
		return nil, err
	}

	out := make(map[string]T, len(k.keys))
	for _, key := range k.keys {
		v, err := k.members[key].At(i)
		if err != nil {
			return nil, err
		}
		out[key] = v
	}

	return out, nil
}
