package loader

import (
	"errors"
	"fmt"
	"iter"
	"math/rand/v2"

	"github.com/arloliu/dataview/internal/options"
	"github.com/arloliu/dataview/internal/pool"
	"github.com/arloliu/dataview/obs"
	"github.com/arloliu/dataview/view"
)

// ErrNoObservations reports a loader constructed over an empty container.
var ErrNoObservations = errors.New("container has no observations")

// Loader iterates a container in shuffled, batched and optionally
// parallel-prefetched form. Configuration is immutable after construction;
// the only state that advances between passes is the random source.
type Loader[T any] struct {
	src obs.Container[T]
	cfg config
}

// New creates a Loader over c. It fails fast on an empty container and on
// invalid configuration; nothing is deferred to iteration time that can be
// caught here.
func New[T any](c obs.Container[T], opts ...Option) (*Loader[T], error) {
	if c == nil {
		return nil, fmt.Errorf("container must not be nil")
	}
	if c.NumObs() == 0 {
		return nil, ErrNoObservations
	}

	cfg := defaultConfig()
	if err := options.Apply(cfg, opts...); err != nil {
		return nil, err
	}
	if cfg.prefetch == 0 {
		cfg.prefetch = cfg.workers
	}
	if cfg.shuffle && cfg.rng == nil {
		// Default source, created once at the boundary. The algorithms below
		// only ever see an explicit source.
		cfg.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	return &Loader[T]{src: c, cfg: *cfg}, nil
}

// NumObs returns the observation count of the underlying container.
func (l *Loader[T]) NumObs() int {
	return l.src.NumObs()
}

// Len returns the number of steps in one pass: the batch count when a batch
// size is configured, the observation count otherwise.
func (l *Loader[T]) Len() int {
	n := l.src.NumObs()
	if l.cfg.batchSize <= 0 {
		return n
	}
	if l.cfg.partial {
		return (n + l.cfg.batchSize - 1) / l.cfg.batchSize
	}

	return n / l.cfg.batchSize
}

// passView wraps the container in an observation view for this pass,
// permuting the index order when shuffling is enabled. Wrapping even the
// unshuffled case guarantees stable zero-copy composition regardless of the
// container type.
//
// The index scratch is pooled; view.New copies it, so it is safe to recycle
// as soon as the view exists.
func (l *Loader[T]) passView() (*view.View[T], error) {
	n := l.src.NumObs()
	idxs, release := pool.GetIntSlice(n)
	defer release()

	for i := range idxs {
		idxs[i] = i
	}
	if l.cfg.shuffle {
		l.cfg.rng.Shuffle(n, func(i, j int) {
			idxs[i], idxs[j] = idxs[j], idxs[i]
		})
	}

	return view.New(l.src, idxs)
}

// Observations starts a per-observation pass. The sequence yields each
// observation once; on the first error the pass stops after yielding it.
func (l *Loader[T]) Observations() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		v, err := l.passView()
		if err != nil {
			var zero T
			yield(zero, err)

			return
		}

		if l.cfg.parallel {
			streamParallel[T](v, l.cfg, yield)

			return
		}
		streamSerial[T](v, l.cfg, yield)
	}
}

// Batches starts a batched pass yielding lists of per-observation results.
// The loader must be configured with a positive batch size.
func (l *Loader[T]) Batches() iter.Seq2[[]T, error] {
	return func(yield func([]T, error) bool) {
		if l.cfg.batchSize <= 0 {
			yield(nil, fmt.Errorf("batch size is %d; use Observations for per-observation iteration", l.cfg.batchSize))

			return
		}

		v, err := l.passView()
		if err != nil {
			yield(nil, err)

			return
		}
		bv, err := view.Batches[T](v, l.cfg.batchSize, l.cfg.partial)
		if err != nil {
			yield(nil, err)

			return
		}

		if l.cfg.parallel {
			streamParallel[[]T](bv, l.cfg, yield)

			return
		}
		streamSerial[[]T](bv, l.cfg, yield)
	}
}

// BatchViews starts a batched pass yielding zero-copy batch containers
// instead of materialized lists: the raw multi-index access result.
// Materialization is deferred to the caller, so this path is always serial;
// there is no work for a prefetch pipeline to overlap.
func (l *Loader[T]) BatchViews() iter.Seq2[obs.Container[T], error] {
	return func(yield func(obs.Container[T], error) bool) {
		if l.cfg.batchSize <= 0 {
			yield(nil, fmt.Errorf("batch size is %d; use Observations for per-observation iteration", l.cfg.batchSize))

			return
		}

		v, err := l.passView()
		if err != nil {
			yield(nil, err)

			return
		}
		bv, err := view.Batches[T](v, l.cfg.batchSize, l.cfg.partial)
		if err != nil {
			yield(nil, err)

			return
		}

		for i := 0; i < bv.NumBatches(); i++ {
			raw, err := bv.ViewAt(i)
			if !yield(raw, err) {
				return
			}
			if err != nil {
				return
			}
		}
	}
}

// Collate runs a batched pass through a user aggregation function, turning
// each list of per-observation results into one batch value. It is a free
// function because Go methods cannot introduce the extra type parameter.
func Collate[T, B any](l *Loader[T], fn func([]T) (B, error)) iter.Seq2[B, error] {
	return func(yield func(B, error) bool) {
		var zero B
		if fn == nil {
			yield(zero, fmt.Errorf("collate function must not be nil"))

			return
		}

		for batch, err := range l.Batches() {
			if err != nil {
				yield(zero, err)

				return
			}
			collated, err := fn(batch)
			if !yield(collated, err) {
				return
			}
			if err != nil {
				return
			}
		}
	}
}

// Into starts a per-observation pass that materializes every step into the
// caller-supplied buffer via the container's AtInto capability, falling back
// to plain access (ignoring the buffer) when the capability is missing.
// The pass is serial: a single external buffer cannot be shared by workers.
// Yielded values alias buf and are only valid until the next step.
func Into[T any](l *Loader[T], buf T) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		v, err := l.passView()
		if err != nil {
			var zero T
			yield(zero, err)

			return
		}

		for i := 0; i < v.NumObs(); i++ {
			buf, err = v.AtInto(buf, i)
			if !yield(buf, err) {
				return
			}
			if err != nil {
				return
			}
		}
	}
}

// streamSerial drives one pass in index order, running each step to
// completion before yielding. With the buffer option it reuses a single
// allocation through AtInto when the container has the capability.
func streamSerial[U any](src obs.Container[U], cfg config, yield func(U, error) bool) {
	into, hasInto := src.(obs.IntoContainer[U])
	reuse := cfg.buffer && hasInto

	var buf U
	for i := 0; i < src.NumObs(); i++ {
		var (
			val U
			err error
		)
		if reuse {
			buf, err = into.AtInto(buf, i)
			val = buf
		} else {
			val, err = src.At(i)
		}
		if !yield(val, err) {
			return
		}
		if err != nil {
			return
		}
	}
}
