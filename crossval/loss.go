// Package crossval: log-loss computation and the standalone evaluator.

package crossval

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gridcv/dataset"
	"github.com/katalvlaran/gridcv/softmax"
)

// LogLoss computes the mean negative log-probability assigned to the true
// class: −(1/n) Σ log p_i[y_i], with probabilities clipped into
// [ClipEpsilon, 1−ClipEpsilon] so confidently wrong predictions stay finite.
//
// Errors: ErrNilProbabilities, ErrLengthMismatch when len(labels) differs
// from the row count, dataset.ErrBadLabel (wrapped) when a label falls
// outside the probability columns.
//
// Complexity: O(n).
func LogLoss(probs *mat.Dense, labels []int) (float64, error) {
	if probs == nil {
		return 0, ErrNilProbabilities
	}
	n, k := probs.Dims()
	if len(labels) != n {
		return 0, fmt.Errorf("LogLoss: %d labels for %d rows: %w", len(labels), n, ErrLengthMismatch)
	}

	sum := 0.0
	for i, y := range labels {
		if y < 0 || y >= k {
			return 0, fmt.Errorf("LogLoss: sample %d label %d outside [0,%d): %w",
				i, y, k, dataset.ErrBadLabel)
		}
		p := probs.At(i, y)
		if p < ClipEpsilon {
			p = ClipEpsilon
		} else if p > 1-ClipEpsilon {
			p = 1 - ClipEpsilon
		}
		sum -= math.Log(p)
	}

	return sum / float64(n), nil
}

// Evaluate is the evaluation reporter: the log loss of a fitted model against
// ds. Pure — no mutation of the model or the data — and usable on any fitted
// model, including out-of-sample holdout data never seen during search.
//
// Errors: ErrNilModel, ErrNilDataset, plus anything PredictProba can return.
func Evaluate(m *softmax.Model, ds *dataset.Dataset) (float64, error) {
	if m == nil {
		return 0, ErrNilModel
	}
	if ds == nil {
		return 0, ErrNilDataset
	}

	probs, err := m.PredictProba(ds.X())
	if err != nil {
		return 0, fmt.Errorf("Evaluate: %w", err)
	}

	loss, err := LogLoss(probs, ds.Labels())
	if err != nil {
		return 0, fmt.Errorf("Evaluate: %w", err)
	}

	return loss, nil
}
