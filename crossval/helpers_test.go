package crossval_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gridcv/dataset"
)

// clusterSet builds a Gaussian-cluster dataset with one cluster per center,
// perClass samples each, and the given noise level. The seed fixes the draw,
// so every test sees the same data.
func clusterSet(t *testing.T, perClass int, centers [][]float64, sigma float64, seed int64) *dataset.Dataset {
	t.Helper()

	k := len(centers)
	d := len(centers[0])
	rng := rand.New(rand.NewSource(seed))

	x := mat.NewDense(k*perClass, d, nil)
	labels := make([]int, k*perClass)
	for class, center := range centers {
		for i := 0; i < perClass; i++ {
			row := class*perClass + i
			for j := 0; j < d; j++ {
				x.Set(row, j, center[j]+sigma*rng.NormFloat64())
			}
			labels[row] = class
		}
	}

	ds, err := dataset.New(x, labels)
	require.NoError(t, err)

	return ds
}

// centers2D are three moderately overlapping clusters in the plane.
var centers2D = [][]float64{{-1.5, -1}, {0, 1.5}, {1.5, -0.5}}

// centers4D are three overlapping clusters in 4-feature space, close enough
// that both extremes of the regularization grid hurt validation loss.
var centers4D = [][]float64{
	{0, 0, 0, 0},
	{1.0, 0.8, 0, 0.2},
	{0.3, 1.0, 0.9, 0},
}
