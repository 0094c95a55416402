// Package softmax implements the estimator's Fit path: the regularized
// cross-entropy objective, its analytic gradient, and the L-BFGS drive.
//
// Parameter layout: the optimizer works on a flat vector
//
//	θ = [W_0 | W_1 | … | W_{K−1} | b]   (len = K·d + K)
//
// with W_k occupying θ[k·d : (k+1)·d] and the bias block starting at K·d.
// The L2 penalty covers the W blocks only.

package softmax

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/optimize"

	"github.com/katalvlaran/gridcv/dataset"
)

// Fit estimates per-class weight vectors and biases for ds by minimizing the
// mean regularized cross-entropy loss (see doc.go) with L-BFGS.
//
// Returns:
//
//   - *Model: read-only fitted weights. When the iteration budget was
//     exhausted the best iterate is returned with Converged()==false and
//     Warning() non-nil — this is NOT an error.
//   - err: ErrNilDataset, ErrBadInitial, or a wrapped ErrOptimizeFailed for
//     genuine optimizer failures (line-search collapse and the like).
//
// Determinism: zero initialization plus a deterministic optimizer means
// identical (ds, options) always produce identical weights.
//
// Complexity: O(iters·n·d·K) time, O(K·d) space.
func Fit(ds *dataset.Dataset, opts ...Option) (*Model, error) {
	// 1) Validate inputs and resolve options.
	if ds == nil {
		return nil, ErrNilDataset
	}
	o := gatherOptions(opts...)

	n, d := ds.Len(), ds.Dim()
	k := ds.NumClasses()
	wLen := k * d
	dim := wLen + k

	// 2) Build the starting point: zero by default, warm start if supplied.
	theta := make([]float64, dim)
	if err := applyInitial(theta, &o, k, d); err != nil {
		return nil, err
	}

	// 3) Assemble the objective and gradient over the flat parameter vector.
	x := ds.X()
	labels := ds.Labels()
	invN := 1.0 / float64(n)
	invC := 1.0 / o.C

	problem := optimize.Problem{
		Func: func(theta []float64) float64 {
			scores := make([]float64, k)
			loss := 0.0
			for i := 0; i < n; i++ {
				row := x.RawRowView(i)
				lse := logSumExp(theta, row, scores, k, d, wLen)
				loss += lse - scores[labels[i]]
			}
			loss *= invN

			// L2 penalty on weights only; bias block excluded.
			w := theta[:wLen]

			return loss + 0.5*invC*floats.Dot(w, w)
		},
		Grad: func(grad, theta []float64) {
			for j := range grad {
				grad[j] = 0
			}
			scores := make([]float64, k)
			for i := 0; i < n; i++ {
				row := x.RawRowView(i)
				lse := logSumExp(theta, row, scores, k, d, wLen)
				for c := 0; c < k; c++ {
					diff := math.Exp(scores[c] - lse)
					if c == labels[i] {
						diff--
					}
					floats.AddScaled(grad[c*d:(c+1)*d], diff, row)
					grad[wLen+c] += diff
				}
			}
			floats.Scale(invN, grad)
			// Penalty gradient W/C, weights only.
			floats.AddScaled(grad[:wLen], invC, theta[:wLen])
		},
	}

	// 4) Run L-BFGS bounded by tolerance and iteration budget.
	settings := &optimize.Settings{
		GradientThreshold: o.Tolerance,
		MajorIterations:   o.MaxIterations,
	}
	result, err := optimize.Minimize(problem, theta, settings, &optimize.LBFGS{})

	// 5) Triage the outcome. Budget exhaustion keeps the best iterate and is
	//    surfaced as a warning on the Model, not as an error.
	if result == nil || len(result.X) != dim {
		return nil, fmt.Errorf("Fit: %w: %v", ErrOptimizeFailed, err)
	}
	budgetHit := result.Status == optimize.IterationLimit ||
		result.Status == optimize.FunctionEvaluationLimit
	if err != nil && !budgetHit {
		return nil, fmt.Errorf("Fit: %w: %v", ErrOptimizeFailed, err)
	}

	// 6) Materialize the read-only model from the flat solution.
	weights := mat.NewDense(k, d, append([]float64(nil), result.X[:wLen]...))
	bias := append([]float64(nil), result.X[wLen:]...)

	return &Model{
		weights:     weights,
		bias:        bias,
		numClasses:  k,
		numFeatures: d,
		converged:   !budgetHit,
		iterations:  result.Stats.MajorIterations,
	}, nil
}

// applyInitial copies a warm start into theta after shape-checking it.
// A nil warm start leaves theta at zero (the default, reproducible start).
func applyInitial(theta []float64, o *Options, k, d int) error {
	if o.InitialWeights == nil && o.InitialBias == nil {
		return nil
	}
	if o.InitialWeights == nil || o.InitialBias == nil {
		return fmt.Errorf("Fit: initial weights and bias must be supplied together: %w", ErrBadInitial)
	}
	wr, wc := o.InitialWeights.Dims()
	if wr != k || wc != d || len(o.InitialBias) != k {
		return fmt.Errorf("Fit: initial weights %dx%d bias %d, want %dx%d bias %d: %w",
			wr, wc, len(o.InitialBias), k, d, k, ErrBadInitial)
	}

	for c := 0; c < k; c++ {
		copy(theta[c*d:(c+1)*d], o.InitialWeights.RawRowView(c))
	}
	copy(theta[k*d:], o.InitialBias)

	return nil
}

// logSumExp fills scores[c] = W_c·row + b_c for every class and returns
// log Σ exp(scores) computed against the row max for stability.
func logSumExp(theta, row, scores []float64, k, d, wLen int) float64 {
	maxScore := math.Inf(-1)
	for c := 0; c < k; c++ {
		s := theta[wLen+c] + floats.Dot(theta[c*d:(c+1)*d], row)
		scores[c] = s
		if s > maxScore {
			maxScore = s
		}
	}

	sum := 0.0
	for c := 0; c < k; c++ {
		sum += math.Exp(scores[c] - maxScore)
	}

	return maxScore + math.Log(sum)
}
