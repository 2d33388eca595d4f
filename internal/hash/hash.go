package hash

import "github.com/cespare/xxhash/v2"

// Sum computes the xxHash64 of the given bytes. The store package uses it as a
// per-chunk integrity checksum verified after decompression.
func Sum(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// ID computes the xxHash64 of the given string.
func ID(name string) uint64 {
	return xxhash.Sum64String(name)
}
