package dataview

import (
	"math/rand/v2"
	"testing"

	"github.com/arloliu/dataview/loader"
	"github.com/arloliu/dataview/obs"
	"github.com/arloliu/dataview/partition"
	"github.com/stretchr/testify/require"
)

func testColumns(t *testing.T, size, n int) *obs.ColumnMajor {
	t.Helper()

	data := make([]float64, size*n)
	for i := range data {
		data[i] = float64(i)
	}
	cols, err := obs.Columns(data, size)
	require.NoError(t, err)

	return cols
}

func TestNewLoader(t *testing.T) {
	cols := testColumns(t, 4, 32)

	ld, err := NewLoader[[]float64](cols, loader.WithShuffle(), loader.WithSeed(7))
	require.NoError(t, err)
	require.Equal(t, 32, ld.NumObs())

	seen := 0
	for row, err := range ld.Observations() {
		require.NoError(t, err)
		require.Len(t, row, 4)
		seen++
	}
	require.Equal(t, 32, seen)
}

func TestNewBatchLoader(t *testing.T) {
	cols := testColumns(t, 2, 50)

	t.Run("batched pass", func(t *testing.T) {
		ld, err := NewBatchLoader[[]float64](cols, 16)
		require.NoError(t, err)
		require.Equal(t, 4, ld.Len())

		sizes := []int{}
		for batch, err := range ld.Batches() {
			require.NoError(t, err)
			sizes = append(sizes, len(batch))
		}
		require.Equal(t, []int{16, 16, 16, 2}, sizes)
	})

	t.Run("invalid batch size", func(t *testing.T) {
		_, err := NewBatchLoader[[]float64](cols, 0)
		require.Error(t, err)
	})

	t.Run("options still apply", func(t *testing.T) {
		ld, err := NewBatchLoader[[]float64](cols, 16, loader.WithPartial(false))
		require.NoError(t, err)
		require.Equal(t, 3, ld.Len())
	})
}

func TestSubset(t *testing.T) {
	cols := testColumns(t, 2, 10)

	sub, err := Subset[[]float64](cols, []int{9, 0, 4})
	require.NoError(t, err)
	require.Equal(t, 3, sub.NumObs())

	row, err := sub.At(0)
	require.NoError(t, err)
	require.Equal(t, []float64{18, 19}, row)
}

func TestShuffled(t *testing.T) {
	cols := testColumns(t, 1, 100)

	t.Run("is a permutation", func(t *testing.T) {
		sh, err := Shuffled[[]float64](cols, rand.New(rand.NewPCG(1, 2)))
		require.NoError(t, err)
		require.Equal(t, 100, sh.NumObs())

		seen := make(map[float64]bool)
		for i := 0; i < 100; i++ {
			row, err := sh.At(i)
			require.NoError(t, err)
			seen[row[0]] = true
		}
		require.Len(t, seen, 100)
	})

	t.Run("nil source allowed", func(t *testing.T) {
		sh, err := Shuffled[[]float64](cols, nil)
		require.NoError(t, err)
		require.Equal(t, 100, sh.NumObs())
	})

	t.Run("nil container rejected", func(t *testing.T) {
		_, err := Shuffled[[]float64](nil, nil)
		require.Error(t, err)
	})
}

func TestTrainTestSplit(t *testing.T) {
	cols := testColumns(t, 2, 100)

	t.Run("fraction honored", func(t *testing.T) {
		train, test, err := TrainTestSplit[[]float64](cols, 0.2)
		require.NoError(t, err)
		require.Equal(t, 80, train.NumObs())
		require.Equal(t, 20, test.NumObs())
	})

	t.Run("shuffled split still covers the domain", func(t *testing.T) {
		train, test, err := TrainTestSplit[[]float64](cols, 0.25,
			partition.WithShuffle(), partition.WithRand(rand.New(rand.NewPCG(5, 5))))
		require.NoError(t, err)

		seen := make(map[float64]bool)
		for _, part := range []obs.Container[[]float64]{train, test} {
			for i := 0; i < part.NumObs(); i++ {
				row, err := part.At(i)
				require.NoError(t, err)
				require.False(t, seen[row[0]])
				seen[row[0]] = true
			}
		}
		require.Len(t, seen, 100)
	})

	t.Run("invalid fraction", func(t *testing.T) {
		_, _, err := TrainTestSplit[[]float64](cols, 0)
		require.Error(t, err)
		_, _, err = TrainTestSplit[[]float64](cols, 1)
		require.Error(t, err)
	})

	t.Run("nil container", func(t *testing.T) {
		_, _, err := TrainTestSplit[[]float64](nil, 0.2)
		require.Error(t, err)
	})
}

func TestKFold(t *testing.T) {
	folds, err := KFold(10, 5)
	require.NoError(t, err)

	count := 0
	for fold := range folds.All() {
		require.Len(t, fold.Val, 2)
		require.Len(t, fold.Train, 8)
		count++
	}
	require.Equal(t, 5, count)
}

func TestEndToEndTrainingLoop(t *testing.T) {
	cols := testColumns(t, 4, 64)

	train, test, err := TrainTestSplit[[]float64](cols, 0.25,
		partition.WithShuffle(), partition.WithRand(rand.New(rand.NewPCG(9, 9))))
	require.NoError(t, err)

	ld, err := NewBatchLoader[[]float64](train, 8,
		loader.WithShuffle(), loader.WithSeed(9))
	require.NoError(t, err)

	batches := 0
	for batch, err := range ld.Batches() {
		require.NoError(t, err)
		require.Len(t, batch, 8)
		batches++
	}
	require.Equal(t, 6, batches)

	rows := 0
	evalLd, err := NewLoader[[]float64](test)
	require.NoError(t, err)
	for _, err := range evalLd.Observations() {
		require.NoError(t, err)
		rows++
	}
	require.Equal(t, 16, rows)
}
