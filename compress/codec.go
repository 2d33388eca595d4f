package compress

import "fmt"

// Type identifies a compression algorithm for chunk payloads.
type Type uint8

const (
	TypeNone Type = 0x1 // TypeNone stores chunks uncompressed.
	TypeZstd Type = 0x2 // TypeZstd uses Zstandard (best ratio).
	TypeS2   Type = 0x3 // TypeS2 uses S2 (balanced speed and ratio).
	TypeLZ4  Type = 0x4 // TypeLZ4 uses LZ4 (fastest decompression).
)

func (t Type) String() string {
	switch t {
	case TypeNone:
		return "None"
	case TypeZstd:
		return "Zstd"
	case TypeS2:
		return "S2"
	case TypeLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Compressor compresses a chunk payload.
//
// Memory management:
//   - The returned slice is newly allocated and owned by the caller
//     (TypeNone returns the input unchanged).
//   - The input slice is never modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a chunk payload previously produced by the matching
// Compressor. It returns an error for corrupted or incompatible data.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines compression and decompression. All built-in codecs are
// stateless values and safe for concurrent use.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[Type]Codec{
	TypeNone: NewNoOpCodec(),
	TypeZstd: NewZstdCodec(),
	TypeS2:   NewS2Codec(),
	TypeLZ4:  NewLZ4Codec(),
}

// GetCodec returns the built-in Codec for the given type.
func GetCodec(t Type) (Codec, error) {
	if codec, ok := builtinCodecs[t]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", t)
}
