package crossval_test

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gridcv/crossval"
	"github.com/katalvlaran/gridcv/dataset"
)

// benchmarkSearch runs a full grid search over a 3-class cluster set with
// perClass samples per class. It resets the timer after data generation and
// fails on unexpected errors.
func benchmarkSearch(b *testing.B, perClass int, grid []float64, folds, workers int) {
	rng := rand.New(rand.NewSource(13))
	centers := [][]float64{{-1.5, -1}, {0, 1.5}, {1.5, -0.5}}

	x := mat.NewDense(3*perClass, 2, nil)
	labels := make([]int, 3*perClass)
	for class, center := range centers {
		for i := 0; i < perClass; i++ {
			row := class*perClass + i
			x.Set(row, 0, center[0]+rng.NormFloat64())
			x.Set(row, 1, center[1]+rng.NormFloat64())
			labels[row] = class
		}
	}
	ds, err := dataset.New(x, labels)
	if err != nil {
		b.Fatalf("dataset.New failed: %v", err)
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		_, err = crossval.Search(ds, grid,
			crossval.WithFolds(folds),
			crossval.WithWorkers(workers),
		)
		if err != nil {
			b.Fatalf("Search failed: %v", err)
		}
	}
}

// BenchmarkSearch_Sequential benchmarks a 3-candidate grid with sequential
// fold-fits.
func BenchmarkSearch_Sequential(b *testing.B) {
	benchmarkSearch(b, 20, []float64{0.1, 1, 10}, 3, 1)
}

// BenchmarkSearch_Parallel benchmarks the same grid with 4 fold workers.
func BenchmarkSearch_Parallel(b *testing.B) {
	benchmarkSearch(b, 20, []float64{0.1, 1, 10}, 3, 4)
}
