// Package store provides Chunked, an append-only in-memory store for
// fixed-width float64 rows that keeps its data in compressed chunks.
//
// It exists for datasets that fit in memory compressed but not raw: rows are
// appended once, sealed into chunks (serialized, checksummed, compressed) and
// then read back through the standard observation contract. Because decoding
// a chunk is real work, a Chunked store is a natural source for the loader's
// parallel prefetch pipeline.
//
// Example:
//
//	s, err := store.New(4, store.WithCompression(compress.TypeLZ4))
//	if err != nil {
//		return err
//	}
//	for _, row := range rows {
//		if err := s.Append(row); err != nil {
//			return err
//		}
//	}
//	ld, err := loader.New[[]float64](s, loader.WithBatchSize(32), loader.WithParallel())
package store
