// Package softmax: the fitted Model value and its prediction surface.

package softmax

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gridcv/dataset"
)

// Model holds fitted softmax-regression parameters. Created by Fit, read-only
// afterwards; safe for concurrent prediction. The zero value is not usable.
type Model struct {
	weights     *mat.Dense // K×d, one row per class
	bias        []float64  // length K
	numClasses  int
	numFeatures int
	converged   bool
	iterations  int
}

// Weights returns the K×d fitted weight matrix. Read-only by contract.
func (m *Model) Weights() *mat.Dense { return m.weights }

// Bias returns the K fitted bias terms. Read-only by contract.
func (m *Model) Bias() []float64 { return m.bias }

// Classes returns K, the number of classes the model scores.
func (m *Model) Classes() int { return m.numClasses }

// Features returns d, the feature dimension the model was fitted on.
func (m *Model) Features() int { return m.numFeatures }

// Converged reports whether the optimizer met its tolerance within the
// iteration budget. A false value means the best iterate was kept.
func (m *Model) Converged() bool { return m.converged }

// Iterations returns the number of major optimizer iterations performed.
func (m *Model) Iterations() int { return m.iterations }

// Warning returns a wrapped ErrNotConverged when the iteration budget was
// exhausted, nil otherwise. The model remains usable either way.
func (m *Model) Warning() error {
	if m.converged {
		return nil
	}

	return fmt.Errorf("after %d iterations: %w", m.iterations, ErrNotConverged)
}

// PredictProba computes per-class probabilities for each row of x.
//
// Returns an n×K matrix whose rows sum to 1 with every entry in (0,1),
// computed via max-subtracted softmax for numerical stability.
//
// Errors: ErrNotFitted on a nil/unfitted model, dataset.ErrNilFeatures on a
// nil matrix, ErrDimensionMismatch if x is not n×d.
//
// Complexity: O(n·d·K) time, O(n·K) space.
func (m *Model) PredictProba(x *mat.Dense) (*mat.Dense, error) {
	if m == nil || m.weights == nil {
		return nil, ErrNotFitted
	}
	if x == nil {
		return nil, fmt.Errorf("PredictProba: %w", dataset.ErrNilFeatures)
	}
	n, cols := x.Dims()
	if cols != m.numFeatures {
		return nil, fmt.Errorf("PredictProba: got %d features, want %d: %w",
			cols, m.numFeatures, ErrDimensionMismatch)
	}

	out := mat.NewDense(n, m.numClasses, nil)
	for i := 0; i < n; i++ {
		row := x.RawRowView(i)
		probs := out.RawRowView(i)

		// Scores, tracking the row max for the stable softmax.
		maxScore := math.Inf(-1)
		for c := 0; c < m.numClasses; c++ {
			s := m.bias[c] + floats.Dot(m.weights.RawRowView(c), row)
			probs[c] = s
			if s > maxScore {
				maxScore = s
			}
		}

		// exp(s − max), then normalize in place.
		sum := 0.0
		for c, s := range probs {
			e := math.Exp(s - maxScore)
			probs[c] = e
			sum += e
		}
		floats.Scale(1/sum, probs)
	}

	return out, nil
}

// Predict returns the argmax class for each row of x.
//
// Errors: as PredictProba.
func (m *Model) Predict(x *mat.Dense) ([]int, error) {
	probs, err := m.PredictProba(x)
	if err != nil {
		return nil, fmt.Errorf("Predict: %w", err)
	}

	n, _ := probs.Dims()
	classes := make([]int, n)
	for i := 0; i < n; i++ {
		classes[i] = floats.MaxIdx(probs.RawRowView(i))
	}

	return classes, nil
}

// Accuracy returns the fraction of ds samples whose argmax prediction matches
// the true label.
//
// Errors: ErrNilDataset, plus anything Predict can return.
func (m *Model) Accuracy(ds *dataset.Dataset) (float64, error) {
	if ds == nil {
		return 0, ErrNilDataset
	}
	predicted, err := m.Predict(ds.X())
	if err != nil {
		return 0, fmt.Errorf("Accuracy: %w", err)
	}

	correct := 0
	for i, class := range predicted {
		if class == ds.Label(i) {
			correct++
		}
	}

	return float64(correct) / float64(ds.Len()), nil
}
