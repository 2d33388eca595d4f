package store

import (
	"fmt"

	"github.com/arloliu/dataview/compress"
	"github.com/arloliu/dataview/endian"
	"github.com/arloliu/dataview/internal/options"
)

const defaultChunkRows = 256

type config struct {
	chunkRows   int
	compression compress.Type
	engine      endian.EndianEngine
}

func defaultConfig() *config {
	return &config{
		chunkRows:   defaultChunkRows,
		compression: compress.TypeS2,
		engine:      endian.GetLittleEndianEngine(),
	}
}

// Option configures a Chunked store at construction time.
type Option = options.Option[*config]

// WithChunkRows sets how many rows a chunk holds before it is sealed and
// compressed. The default is 256. Larger chunks compress better; smaller
// chunks decode faster on random access.
func WithChunkRows(rows int) Option {
	return options.New(func(cfg *config) error {
		if rows <= 0 {
			return fmt.Errorf("chunk rows must be positive, got %d", rows)
		}
		cfg.chunkRows = rows

		return nil
	})
}

// WithCompression selects the chunk payload codec. The default is S2.
func WithCompression(t compress.Type) Option {
	return options.New(func(cfg *config) error {
		if _, err := compress.GetCodec(t); err != nil {
			return err
		}
		cfg.compression = t

		return nil
	})
}

// WithBigEndian serializes row data big-endian instead of the default
// little-endian layout.
func WithBigEndian() Option {
	return options.NoError(func(cfg *config) {
		cfg.engine = endian.GetBigEndianEngine()
	})
}
