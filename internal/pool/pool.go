// Package pool provides sync.Pool-backed scratch slices for transient work:
// chunk serialization in the store package and the loader's per-pass index
// scratch. Every getter returns the slice plus a cleanup function that must
// be called (typically with defer) to recycle it.
package pool

import "sync"

var (
	bytePool = sync.Pool{
		New: func() any { return &[]byte{} },
	}
	intPool = sync.Pool{
		New: func() any { return &[]int{} },
	}
)

// GetByteSlice returns a []byte of the requested length from the pool.
// The contents are unspecified; callers must overwrite before reading.
func GetByteSlice(size int) ([]byte, func()) {
	ptr, _ := bytePool.Get().(*[]byte)
	s := (*ptr)[:0]

	if cap(s) < size {
		s = make([]byte, size)
	} else {
		s = s[:size]
	}
	*ptr = s

	return s, func() { bytePool.Put(ptr) }
}

// GetIntSlice returns a []int of the requested length from the pool.
func GetIntSlice(size int) ([]int, func()) {
	ptr, _ := intPool.Get().(*[]int)
	s := (*ptr)[:0]

	if cap(s) < size {
		s = make([]int, size)
	} else {
		s = s[:size]
	}
	*ptr = s

	return s, func() { intPool.Put(ptr) }
}
