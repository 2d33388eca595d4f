package compress

// ZstdCodec compresses chunks with Zstandard. It offers the best compression
// ratio of the built-in codecs and suits stores that are written once and
// read sparsely.
//
// Two implementations exist behind build tags: valyala/gozstd (cgo, wraps the
// reference C library) and klauspost/compress/zstd (pure Go). Both produce
// interchangeable zstd frames.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstd codec.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
