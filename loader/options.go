package loader

import (
	"fmt"
	"math/rand/v2"
	"runtime"

	"github.com/arloliu/dataview/internal/options"
)

type config struct {
	batchSize int
	partial   bool
	shuffle   bool
	buffer    bool
	parallel  bool
	workers   int
	prefetch  int
	rng       *rand.Rand
}

func defaultConfig() *config {
	return &config{
		batchSize: 1,
		partial:   true,
		workers:   runtime.GOMAXPROCS(0),
	}
}

// Option configures a Loader at construction time.
type Option = options.Option[*config]

// WithBatchSize sets the number of observations per batch for Batches and
// BatchViews passes. The default is 1. A non-positive size selects
// per-observation mode, i.e. the Observations iterator.
func WithBatchSize(size int) Option {
	return options.NoError(func(cfg *config) {
		cfg.batchSize = size
	})
}

// WithPartial controls whether a trailing batch smaller than the batch size
// is delivered (true, the default) or dropped.
func WithPartial(partial bool) Option {
	return options.NoError(func(cfg *config) {
		cfg.partial = partial
	})
}

// WithShuffle permutes the observation order freshly on every pass. Two
// passes of the same loader see different orders because the random source
// advances; seed the source explicitly for reproducible runs.
func WithShuffle() Option {
	return options.NoError(func(cfg *config) {
		cfg.shuffle = true
	})
}

// WithRand supplies the loader's random source. The source is owned by the
// loader from then on; sharing it with a second concurrently-iterated loader
// is not supported.
func WithRand(rng *rand.Rand) Option {
	return options.New(func(cfg *config) error {
		if rng == nil {
			return fmt.Errorf("random source must not be nil")
		}
		cfg.rng = rng

		return nil
	})
}

// WithSeed is shorthand for WithRand over a PCG source seeded with seed.
// Loaders built with equal configuration and equal seeds produce identical
// serial sequences.
func WithSeed(seed uint64) Option {
	return options.NoError(func(cfg *config) {
		cfg.rng = rand.New(rand.NewPCG(seed, seed))
	})
}

// WithBuffer reuses one allocation across steps via the container's AtInto
// capability, falling back silently to plain access when the container does
// not implement it. Yielded values are only valid until the next step.
func WithBuffer() Option {
	return options.NoError(func(cfg *config) {
		cfg.buffer = true
	})
}

// WithParallel materializes observations through the concurrent prefetch
// pipeline instead of the serial path. Delivery order becomes unspecified.
func WithParallel() Option {
	return options.NoError(func(cfg *config) {
		cfg.parallel = true
	})
}

// WithWorkers sets the parallel worker count. The default is GOMAXPROCS.
func WithWorkers(n int) Option {
	return options.New(func(cfg *config) error {
		if n <= 0 {
			return fmt.Errorf("worker count must be positive, got %d", n)
		}
		cfg.workers = n

		return nil
	})
}

// WithPrefetch sets the capacity of the bounded prefetch queue. The default
// equals the worker count. A full queue blocks producing workers
// (backpressure); an empty one blocks the consumer.
func WithPrefetch(capacity int) Option {
	return options.New(func(cfg *config) error {
		if capacity <= 0 {
			return fmt.Errorf("prefetch capacity must be positive, got %d", capacity)
		}
		cfg.prefetch = capacity

		return nil
	})
}
