package store

import (
	"fmt"
	"math"
	"sync"

	"github.com/arloliu/dataview/compress"
	"github.com/arloliu/dataview/endian"
	"github.com/arloliu/dataview/internal/hash"
	"github.com/arloliu/dataview/internal/options"
	"github.com/arloliu/dataview/internal/pool"
	"github.com/arloliu/dataview/obs"
)

// chunk is a sealed group of rows: the serialized float64 payload after
// compression, plus the xxHash64 checksum of the uncompressed bytes.
type chunk struct {
	payload  []byte
	checksum uint64
}

// Chunked is an append-only in-memory row store holding fixed-width float64
// rows in compressed chunks. It implements obs.Container[[]float64] and
// obs.IntoContainer[[]float64], so it plugs directly into views, partitioning
// and the loader.
//
// Rows accumulate in an open chunk until it reaches the configured row count,
// then the chunk is sealed: serialized through the endian engine, checksummed
// with xxHash64 and compressed with the configured codec. Reads decode the
// owning chunk, verify its checksum and copy the row out; the most recently
// decoded chunk stays cached, so sequential and batched access decodes each
// chunk once.
//
// All methods are safe for concurrent use. Access under the loader's parallel
// prefetch pipeline serializes on the internal lock.
type Chunked struct {
	width     int
	chunkRows int
	ctype     compress.Type
	codec     compress.Codec
	engine    endian.EndianEngine

	mu     sync.Mutex
	chunks []chunk
	open   []float64

	cacheIdx int
	cache    []float64

	compressedSize int
}

var (
	_ obs.Container[[]float64]     = (*Chunked)(nil)
	_ obs.IntoContainer[[]float64] = (*Chunked)(nil)
)

// New creates an empty store for rows of width float64 values.
func New(width int, opts ...Option) (*Chunked, error) {
	if width <= 0 {
		return nil, fmt.Errorf("row width must be positive, got %d", width)
	}

	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}

	return &Chunked{
		width:     width,
		chunkRows: cfg.chunkRows,
		ctype:     cfg.compression,
		codec:     codec,
		engine:    cfg.engine,
		cacheIdx:  -1,
	}, nil
}

// Append adds one row. The row is copied; the caller keeps ownership of the
// slice. A full open chunk is sealed before Append returns.
func (s *Chunked) Append(row []float64) error {
	if len(row) != s.width {
		return fmt.Errorf("row has %d values, store width is %d", len(row), s.width)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.open = append(s.open, row...)
	if len(s.open) == s.chunkRows*s.width {
		return s.seal()
	}

	return nil
}

// seal compresses the open chunk. Caller holds the lock.
func (s *Chunked) seal() error {
	raw, release := pool.GetByteSlice(len(s.open) * 8)
	defer release()

	for i, v := range s.open {
		s.engine.PutUint64(raw[i*8:], math.Float64bits(v))
	}

	payload, err := s.codec.Compress(raw)
	if err != nil {
		return fmt.Errorf("failed to seal chunk %d: %w", len(s.chunks), err)
	}
	if s.ctype == compress.TypeNone {
		// The no-op codec returns its input, which aliases the pooled scratch
		// buffer; the sealed payload must own its bytes.
		payload = append([]byte(nil), raw...)
	}

	s.chunks = append(s.chunks, chunk{payload: payload, checksum: hash.Sum(raw)})
	s.compressedSize += len(payload)
	s.open = s.open[:0]

	return nil
}

// NumObs returns the total row count, sealed and open.
func (s *Chunked) NumObs() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.chunks)*s.chunkRows + len(s.open)/s.width
}

// Width returns the number of float64 values per row.
func (s *Chunked) Width() int {
	return s.width
}

// NumChunks returns the number of sealed chunks.
func (s *Chunked) NumChunks() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.chunks)
}

// CompressedSize returns the total byte size of all sealed chunk payloads.
func (s *Chunked) CompressedSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.compressedSize
}

// At returns a copy of row i. The result is owned by the caller.
func (s *Chunked) At(i int) ([]float64, error) {
	return s.AtInto(nil, i)
}

// AtInto copies row i into buf, growing it when needed.
func (s *Chunked) AtInto(buf []float64, i int) ([]float64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.chunks)*s.chunkRows + len(s.open)/s.width
	if err := obs.CheckIndex(i, n); err != nil {
		return nil, err
	}

	if cap(buf) < s.width {
		buf = make([]float64, s.width)
	}
	buf = buf[:s.width]

	ci, row := i/s.chunkRows, i%s.chunkRows
	if ci == len(s.chunks) {
		copy(buf, s.open[row*s.width:])

		return buf, nil
	}

	if err := s.loadChunk(ci); err != nil {
		return nil, err
	}
	copy(buf, s.cache[row*s.width:])

	return buf, nil
}

// loadChunk decodes sealed chunk ci into the cache unless it is already
// resident. Caller holds the lock.
func (s *Chunked) loadChunk(ci int) error {
	if ci == s.cacheIdx {
		return nil
	}

	raw, err := s.codec.Decompress(s.chunks[ci].payload)
	if err != nil {
		return fmt.Errorf("failed to decompress chunk %d: %w", ci, err)
	}
	if want := s.chunkRows * s.width * 8; len(raw) != want {
		return fmt.Errorf("chunk %d decoded to %d bytes, want %d", ci, len(raw), want)
	}
	if sum := hash.Sum(raw); sum != s.chunks[ci].checksum {
		return fmt.Errorf("chunk %d checksum mismatch: got %x, want %x", ci, sum, s.chunks[ci].checksum)
	}

	count := s.chunkRows * s.width
	if cap(s.cache) < count {
		s.cache = make([]float64, count)
	}
	s.cache = s.cache[:count]
	for j := range s.cache {
		s.cache[j] = math.Float64frombits(s.engine.Uint64(raw[j*8:]))
	}
	s.cacheIdx = ci

	return nil
}
