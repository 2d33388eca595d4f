// Package compress provides the compression codecs used by the chunked row
// store. Chunks are compressed when sealed and decompressed on first access,
// which is exactly the kind of materialization latency the loader's prefetch
// pipeline exists to hide.
//
// Four algorithms are supported:
//
//   - None: no compression, zero overhead
//   - Zstd: best ratio, moderate speed (gozstd under cgo, klauspost otherwise)
//   - S2: balanced ratio and speed, the store default
//   - LZ4: fastest decompression
//
// All codecs implement the Codec interface and are safe for concurrent use:
//
//	codec, err := compress.GetCodec(compress.TypeS2)
//	compressed, err := codec.Compress(chunkBytes)
//	original, err := codec.Decompress(compressed)
//
// Choose Zstd when chunks are cold and memory matters, LZ4 or S2 when access
// latency matters, and None when rows are incompressible anyway.
package compress
