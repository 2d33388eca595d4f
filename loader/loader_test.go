package loader

import (
	"testing"

	"github.com/arloliu/dataview/obs"
	"github.com/stretchr/testify/require"
)

func seqContainer(n int) obs.Container[int] {
	data := make([]int, n)
	for i := range data {
		data[i] = i
	}

	return obs.FromSlice(data)
}

func collectObs[T any](t *testing.T, ld *Loader[T]) []T {
	t.Helper()

	out := make([]T, 0, ld.NumObs())
	for v, err := range ld.Observations() {
		require.NoError(t, err)
		out = append(out, v)
	}

	return out
}

func TestNew(t *testing.T) {
	t.Run("empty container rejected", func(t *testing.T) {
		_, err := New(obs.FromSlice([]int{}))
		require.ErrorIs(t, err, ErrNoObservations)
	})

	t.Run("nil container rejected", func(t *testing.T) {
		_, err := New[int](nil)
		require.Error(t, err)
	})

	t.Run("invalid options rejected", func(t *testing.T) {
		_, err := New(seqContainer(4), WithWorkers(0))
		require.Error(t, err)

		_, err = New(seqContainer(4), WithPrefetch(-1))
		require.Error(t, err)

		_, err = New(seqContainer(4), WithRand(nil))
		require.Error(t, err)
	})
}

func TestObservationsSerialOrder(t *testing.T) {
	ld, err := New(seqContainer(10))
	require.NoError(t, err)

	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, collectObs(t, ld),
		"the serial path must preserve input index order strictly")
}

func TestObservationsRepeatedPasses(t *testing.T) {
	// The per-pass index scratch is recycled through a pool; repeated and
	// interleaved passes over differently sized loaders must stay correct.
	small, err := New(seqContainer(5))
	require.NoError(t, err)
	large, err := New(seqContainer(50))
	require.NoError(t, err)

	want := collectObs(t, large)
	for range 3 {
		require.Equal(t, []int{0, 1, 2, 3, 4}, collectObs(t, small))
		require.Equal(t, want, collectObs(t, large))
	}
}

func TestObservationsShuffle(t *testing.T) {
	t.Run("each pass is a permutation", func(t *testing.T) {
		ld, err := New(seqContainer(100), WithShuffle(), WithSeed(7))
		require.NoError(t, err)

		got := collectObs(t, ld)
		require.Len(t, got, 100)
		require.ElementsMatch(t, collectObs(t, ld), got)
	})

	t.Run("two passes differ in order", func(t *testing.T) {
		ld, err := New(seqContainer(100), WithShuffle(), WithSeed(7))
		require.NoError(t, err)

		first := collectObs(t, ld)
		second := collectObs(t, ld)
		require.NotEqual(t, first, second,
			"the source advances between passes, so a fresh permutation is drawn")
		require.ElementsMatch(t, first, second)
	})

	t.Run("identical seeds produce identical sequences", func(t *testing.T) {
		a, err := New(seqContainer(100), WithShuffle(), WithSeed(99))
		require.NoError(t, err)
		b, err := New(seqContainer(100), WithShuffle(), WithSeed(99))
		require.NoError(t, err)

		require.Equal(t, collectObs(t, a), collectObs(t, b))
	})

	t.Run("independent sources produce different orders", func(t *testing.T) {
		a, err := New(seqContainer(100), WithShuffle(), WithSeed(1))
		require.NoError(t, err)
		b, err := New(seqContainer(100), WithShuffle(), WithSeed(2))
		require.NoError(t, err)

		require.NotEqual(t, collectObs(t, a), collectObs(t, b))
	})
}

func TestBatches(t *testing.T) {
	t.Run("full batches in order", func(t *testing.T) {
		ld, err := New(seqContainer(10), WithBatchSize(4))
		require.NoError(t, err)
		require.Equal(t, 3, ld.Len())

		var batches [][]int
		for batch, err := range ld.Batches() {
			require.NoError(t, err)
			batches = append(batches, batch)
		}
		require.Equal(t, [][]int{{0, 1, 2, 3}, {4, 5, 6, 7}, {8, 9}}, batches)
	})

	t.Run("partial disabled drops the tail", func(t *testing.T) {
		ld, err := New(seqContainer(10), WithBatchSize(4), WithPartial(false))
		require.NoError(t, err)
		require.Equal(t, 2, ld.Len())

		count := 0
		for batch, err := range ld.Batches() {
			require.NoError(t, err)
			require.Len(t, batch, 4)
			count++
		}
		require.Equal(t, 2, count)
	})

	t.Run("unbatched configuration is an error", func(t *testing.T) {
		ld, err := New(seqContainer(10), WithBatchSize(0))
		require.NoError(t, err)

		for _, err := range ld.Batches() {
			require.Error(t, err)
			break
		}
	})

	t.Run("shuffled batches cover the domain", func(t *testing.T) {
		ld, err := New(seqContainer(20), WithBatchSize(6), WithShuffle(), WithSeed(5))
		require.NoError(t, err)

		seen := make(map[int]bool)
		for batch, err := range ld.Batches() {
			require.NoError(t, err)
			for _, v := range batch {
				require.False(t, seen[v])
				seen[v] = true
			}
		}
		require.Len(t, seen, 20)
	})

	t.Run("early termination is clean", func(t *testing.T) {
		ld, err := New(seqContainer(100), WithBatchSize(10))
		require.NoError(t, err)

		steps := 0
		for _, err := range ld.Batches() {
			require.NoError(t, err)
			steps++
			if steps == 2 {
				break
			}
		}
		require.Equal(t, 2, steps)
	})
}

func TestBatchViews(t *testing.T) {
	cols, err := obs.Columns([]float64{1, 2, 3, 4, 5, 6, 7, 8}, 2)
	require.NoError(t, err)

	ld, err := New[[]float64](cols, WithBatchSize(2))
	require.NoError(t, err)

	var counts []int
	for raw, err := range ld.BatchViews() {
		require.NoError(t, err)
		counts = append(counts, raw.NumObs())

		first, err := raw.At(0)
		require.NoError(t, err)
		require.Len(t, first, 2)
	}
	require.Equal(t, []int{2, 2}, counts)
}

func TestCollate(t *testing.T) {
	ld, err := New(seqContainer(10), WithBatchSize(5))
	require.NoError(t, err)

	t.Run("aggregates each batch", func(t *testing.T) {
		var sums []int
		for sum, err := range Collate(ld, func(batch []int) (int, error) {
			total := 0
			for _, v := range batch {
				total += v
			}
			return total, nil
		}) {
			require.NoError(t, err)
			sums = append(sums, sum)
		}
		require.Equal(t, []int{10, 35}, sums)
	})

	t.Run("nil function is an error", func(t *testing.T) {
		for _, err := range Collate[int, int](ld, nil) {
			require.Error(t, err)
			break
		}
	})
}

func TestInto(t *testing.T) {
	cols, err := obs.Columns([]float64{1, 2, 3, 4, 5, 6}, 2)
	require.NoError(t, err)

	ld, err := New[[]float64](cols)
	require.NoError(t, err)

	buf := make([]float64, 2)
	var first *float64
	steps := 0
	for v, err := range Into(ld, buf) {
		require.NoError(t, err)
		require.Len(t, v, 2)
		if first == nil {
			first = &v[0]
		} else {
			require.Same(t, first, &v[0], "every step must reuse the external buffer")
		}
		steps++
	}
	require.Equal(t, 3, steps)
}

func TestBufferSerial(t *testing.T) {
	cols, err := obs.Columns([]float64{1, 2, 3, 4, 5, 6}, 2)
	require.NoError(t, err)

	t.Run("reuses one allocation across steps", func(t *testing.T) {
		ld, err := New[[]float64](cols, WithBuffer())
		require.NoError(t, err)

		var first *float64
		for v, err := range ld.Observations() {
			require.NoError(t, err)
			if first == nil {
				first = &v[0]
			} else {
				require.Same(t, first, &v[0])
			}
		}
	})

	t.Run("falls back silently without the capability", func(t *testing.T) {
		ld, err := New(seqContainer(5), WithBuffer())
		require.NoError(t, err)

		require.Equal(t, []int{0, 1, 2, 3, 4}, collectObs(t, ld))
	})
}

func TestLoaderLen(t *testing.T) {
	ld, err := New(seqContainer(150), WithBatchSize(20), WithPartial(false))
	require.NoError(t, err)
	require.Equal(t, 7, ld.Len())
	require.Equal(t, 150, ld.NumObs())

	ld, err = New(seqContainer(150), WithBatchSize(20))
	require.NoError(t, err)
	require.Equal(t, 8, ld.Len())

	ld, err = New(seqContainer(150), WithBatchSize(0))
	require.NoError(t, err)
	require.Equal(t, 150, ld.Len())
}
