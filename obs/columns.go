package obs

import "fmt"

// ColumnMajor is a dense array bridge following the fixed convention that the
// last axis is the observation axis. Data is stored column-major, so each
// observation is one contiguous column of size values and access is a
// zero-copy sub-slice.
type ColumnMajor struct {
	data []float64
	size int
}

var (
	_ Container[[]float64]     = (*ColumnMajor)(nil)
	_ IntoContainer[[]float64] = (*ColumnMajor)(nil)
	_ Slicer[[]float64]        = (*ColumnMajor)(nil)
)

// Columns wraps a column-major array of len(data)/size observations, each a
// column of size elements. The backing slice is shared, not copied.
func Columns(data []float64, size int) (*ColumnMajor, error) {
	if size <= 0 {
		return nil, fmt.Errorf("observation size must be positive, got %d", size)
	}
	if len(data)%size != 0 {
		return nil, fmt.Errorf("array length %d is not a multiple of observation size %d", len(data), size)
	}

	return &ColumnMajor{data: data, size: size}, nil
}

// NumObs returns the number of columns.
func (c *ColumnMajor) NumObs() int {
	return len(c.data) / c.size
}

// Size returns the number of elements per observation.
func (c *ColumnMajor) Size() int {
	return c.size
}

// At returns column i as a zero-copy sub-slice of the backing array. The
// caller must not modify it.
func (c *ColumnMajor) At(i int) ([]float64, error) {
	if err := CheckIndex(i, c.NumObs()); err != nil {
		return nil, err
	}

	return c.data[i*c.size : (i+1)*c.size], nil
}

// AtInto copies column i into buf, growing it when needed.
func (c *ColumnMajor) AtInto(buf []float64, i int) ([]float64, error) {
	if err := CheckIndex(i, c.NumObs()); err != nil {
		return nil, err
	}

	if cap(buf) < c.size {
		buf = make([]float64, c.size)
	}
	buf = buf[:c.size]
	copy(buf, c.data[i*c.size:(i+1)*c.size])

	return buf, nil
}

// Slice returns a zero-copy handle for contiguous ascending column runs.
func (c *ColumnMajor) Slice(idxs []int) (Container[[]float64], bool) {
	start, ok := contiguousRun(idxs)
	if !ok || start < 0 || start+len(idxs) > c.NumObs() {
		return nil, false
	}

	return &ColumnMajor{
		data: c.data[start*c.size : (start+len(idxs))*c.size],
		size: c.size,
	}, true
}
