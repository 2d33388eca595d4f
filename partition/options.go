package partition

import (
	"fmt"
	"math/rand/v2"

	"github.com/arloliu/dataview/internal/options"
)

type config struct {
	shuffle  bool
	rng      *rand.Rand
	fraction float64
}

// Option configures a partitioning call.
type Option = options.Option[*config]

// WithShuffle permutes the produced index sequence (or, for Split, the input
// domain before slicing) instead of keeping positional order.
func WithShuffle() Option {
	return options.NoError(func(cfg *config) {
		cfg.shuffle = true
	})
}

// WithRand supplies the random source used for shuffling and sampling.
// Passing a seeded source makes the partition reproducible.
func WithRand(rng *rand.Rand) Option {
	return options.New(func(cfg *config) error {
		if rng == nil {
			return fmt.Errorf("random source must not be nil")
		}
		cfg.rng = rng

		return nil
	})
}

// WithFraction sets the oversampling target as a fraction of the largest
// group's size. The default is 1, i.e. every group is brought up to the
// largest group.
func WithFraction(fraction float64) Option {
	return options.New(func(cfg *config) error {
		if fraction <= 0 {
			return fmt.Errorf("fraction must be positive, got %v", fraction)
		}
		cfg.fraction = fraction

		return nil
	})
}

func newConfig(opts ...Option) (*config, error) {
	cfg := &config{fraction: 1}
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}

	return cfg, nil
}

// source returns the configured random source, creating a fresh one seeded
// from the process-wide generator when the caller did not pass any. The
// default lives here at the boundary; the algorithms only ever see an
// explicit source.
func (cfg *config) source() *rand.Rand {
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return cfg.rng
}
