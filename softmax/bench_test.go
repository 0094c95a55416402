package softmax_test

import (
	"math/rand"
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gridcv/dataset"
	"github.com/katalvlaran/gridcv/softmax"
)

// benchmarkFit fits a 3-class Gaussian-cluster set of n samples per class and
// d features. It resets the timer after data generation and fails on
// unexpected errors.
func benchmarkFit(b *testing.B, n, d int, c float64) {
	rng := rand.New(rand.NewSource(11))
	total := 3 * n

	x := mat.NewDense(total, d, nil)
	labels := make([]int, total)
	for class := 0; class < 3; class++ {
		for i := 0; i < n; i++ {
			row := class*n + i
			for j := 0; j < d; j++ {
				x.Set(row, j, float64(class)+rng.NormFloat64())
			}
			labels[row] = class
		}
	}
	ds, err := dataset.New(x, labels)
	if err != nil {
		b.Fatalf("dataset.New failed: %v", err)
	}

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err = softmax.Fit(ds, softmax.WithC(c)); err != nil {
			b.Fatalf("Fit failed: %v", err)
		}
	}
}

// BenchmarkFit_Small benchmarks fitting 150 samples with 4 features.
func BenchmarkFit_Small(b *testing.B) {
	benchmarkFit(b, 50, 4, 1)
}

// BenchmarkFit_Medium benchmarks fitting 900 samples with 16 features.
func BenchmarkFit_Medium(b *testing.B) {
	benchmarkFit(b, 300, 16, 1)
}
