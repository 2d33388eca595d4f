// Package loader implements the iteration engine over observation
// containers: shuffling, batching, buffer reuse and optional parallel
// prefetching, composed from the obs and view layers.
//
// # Passes
//
// A Loader is configured once and then iterated any number of times. Each
// call to Observations, Batches or BatchViews starts a fresh pass: the
// container is wrapped in an observation view, the index order is reshuffled
// (when shuffling is enabled, with the loader's random source advancing
// between passes), the view is grouped into batches when a batch size is
// configured, and the resulting sequence is streamed.
//
//	ld, err := loader.New(container,
//	    loader.WithBatchSize(32),
//	    loader.WithShuffle(),
//	    loader.WithSeed(42),
//	)
//	for batch, err := range ld.Batches() {
//	    if err != nil {
//	        return err
//	    }
//	    // consume batch ([]T)
//	}
//
// Breaking out of the range at any point ends the pass cleanly; a parallel
// pass tears down its worker pool without leaking goroutines.
//
// # Ordering
//
// The serial path delivers observations strictly in the pass's index order;
// shuffling decides that order up front, not per step. The parallel path
// makes no ordering promise at all: workers complete concurrently and
// results are delivered as they arrive. Callers that need order must not
// enable parallelism. The multiset of delivered items is identical either
// way.
//
// # Buffers
//
// WithBuffer reuses a single allocation across steps through the container's
// AtInto capability, falling back silently to plain access when the
// capability is missing. Values yielded in buffered mode are only valid
// until the next step; callers must copy what they keep. Combining buffered
// and parallel mode switches to a small rotating pool of buffers so that a
// worker never writes into the buffer the consumer is reading.
package loader
