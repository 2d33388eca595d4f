package loader

import (
	"sync"

	"github.com/arloliu/dataview/obs"
)

// streamParallel drives one pass through the concurrent prefetch pipeline:
// a fixed worker pool materializes observations and pushes them into one
// bounded queue that the consumer pops from. The queue is the only
// coordination between workers and consumer; a full queue blocks producers
// and an empty open queue blocks the consumer.
//
// Delivery order is unspecified. The queue is closed once every index has
// been produced, or immediately when a worker fails; in the failure case the
// consumer observes the error after draining what was already queued, and
// everything it consumed before remains valid.
//
// With the buffer option and an in-place capable container, materialization
// rotates through a small fixed pool of buffers instead of allocating per
// item. The pool is sized so a worker can never be handed the buffer the
// consumer is still reading: queued items plus one per worker plus the one
// held by the consumer.
func streamParallel[U any](src obs.Container[U], cfg config, yield func(U, error) bool) {
	n := src.NumObs()

	into, hasInto := src.(obs.IntoContainer[U])
	ring := cfg.buffer && hasInto

	out := make(chan U, cfg.prefetch)
	done := make(chan struct{})
	cancel := sync.OnceFunc(func() { close(done) })
	defer cancel()

	var (
		errOnce   sync.Once
		workerErr error
	)
	fail := func(err error) {
		errOnce.Do(func() {
			workerErr = err
			cancel()
		})
	}

	var free chan U
	if ring {
		size := cfg.prefetch + cfg.workers + 1
		free = make(chan U, size)
		for i := 0; i < size; i++ {
			var zero U
			free <- zero
		}
	}

	// Feed indices of the already shuffled/batched domain.
	indices := make(chan int)
	go func() {
		defer close(indices)
		for i := 0; i < n; i++ {
			select {
			case indices <- i:
			case <-done:
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for w := 0; w < cfg.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range indices {
				var (
					val U
					err error
				)
				if ring {
					var buf U
					select {
					case buf = <-free:
					case <-done:
						return
					}
					val, err = into.AtInto(buf, idx)
				} else {
					val, err = src.At(idx)
				}
				if err != nil {
					fail(err)

					return
				}

				select {
				case out <- val:
				case <-done:
					return
				}
			}
		}()
	}

	// Supervisor: drives the pool to completion and closes the queue, once
	// per pass.
	go func() {
		wg.Wait()
		close(out)
	}()

	for val := range out {
		if !yield(val, nil) {
			return
		}
		if ring {
			// The consumer is done with this buffer; recycle it. The free
			// list is sized so this never blocks.
			select {
			case free <- val:
			case <-done:
				return
			}
		}
	}

	if workerErr != nil {
		var zero U
		yield(zero, workerErr)
	}
}
