// Package softmax: sentinel errors, configuration options and defaults.

package softmax

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Sentinel errors returned by Fit and the Model prediction methods.
var (
	// ErrNilDataset indicates that a nil *dataset.Dataset was passed to Fit.
	ErrNilDataset = errors.New("softmax: dataset is nil")

	// ErrBadInitial indicates that the initial weights or bias supplied via
	// WithInitialWeights do not match the data's class/feature dimensions.
	ErrBadInitial = errors.New("softmax: initial weights shape mismatch")

	// ErrOptimizeFailed indicates that the optimizer failed for a reason other
	// than exhausting its iteration budget (which is non-fatal).
	ErrOptimizeFailed = errors.New("softmax: optimization failed")

	// ErrNotFitted indicates a prediction call on a nil or unfitted Model.
	ErrNotFitted = errors.New("softmax: model is not fitted")

	// ErrDimensionMismatch indicates that prediction features do not match the
	// fitted feature dimension.
	ErrDimensionMismatch = errors.New("softmax: feature dimension mismatch")

	// ErrNotConverged is the advisory sentinel wrapped by Model.Warning when
	// the optimizer exhausted its iteration budget. It is never returned as a
	// Fit error: the best iterate is still returned.
	ErrNotConverged = errors.New("softmax: optimizer exhausted iteration budget")
)

// Defaults — single source of truth for zero-value behavior.
const (
	// DefaultC is the inverse regularization strength (λ = 1/C).
	DefaultC = 1.0

	// DefaultTolerance is the convergence threshold on the gradient inf-norm.
	DefaultTolerance = 1e-6

	// DefaultMaxIterations bounds the optimizer's major iterations.
	DefaultMaxIterations = 10_000
)

// Internal panic messages for option constructors (programmer errors).
const (
	panicBadC       = "softmax: WithC: C must be finite and positive"
	panicBadTol     = "softmax: WithTolerance: tolerance must be finite and positive"
	panicBadMaxIter = "softmax: WithMaxIterations: budget must be at least 1"
)

// Options configures Fit.
//
// C             – inverse L2 penalty strength; larger C = weaker penalty.
// Tolerance     – gradient inf-norm threshold for convergence.
// MaxIterations – optimizer major-iteration budget; exhaustion is non-fatal.
// InitialWeights / InitialBias – optional warm start; default zero start
//
//	keeps fits independent of prior calls.
type Options struct {
	C             float64
	Tolerance     float64
	MaxIterations int

	InitialWeights *mat.Dense // K×d or nil (zero start)
	InitialBias    []float64  // length K or nil (zero start)
}

// Option represents a functional option for configuring Fit.
type Option func(*Options)

// WithC sets the inverse regularization strength C (must be finite and > 0).
// Panics on nonsensical values (programmer error).
func WithC(c float64) Option {
	if math.IsNaN(c) || math.IsInf(c, 0) || c <= 0 {
		panic(panicBadC)
	}

	return func(o *Options) { o.C = c }
}

// WithTolerance sets the convergence threshold ε on the gradient inf-norm.
// Panics on nonsensical values (programmer error).
func WithTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicBadTol)
	}

	return func(o *Options) { o.Tolerance = eps }
}

// WithMaxIterations sets the optimizer's major-iteration budget.
// Panics on budgets below 1 (programmer error).
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicBadMaxIter)
	}

	return func(o *Options) { o.MaxIterations = n }
}

// WithInitialWeights supplies a warm-start weight matrix (K×d) and bias
// (length K). Shapes are validated inside Fit against the actual data
// (ErrBadInitial), since they are unknown here. The values are copied at fit
// time; the caller's matrix is not retained.
func WithInitialWeights(w *mat.Dense, bias []float64) Option {
	return func(o *Options) {
		o.InitialWeights = w
		o.InitialBias = bias
	}
}

// DefaultOptions returns the documented defaults: C=1, tolerance 1e-6,
// 10_000 iterations, zero-initialized weights.
func DefaultOptions() Options {
	return Options{
		C:             DefaultC,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

// gatherOptions applies user setters on top of defaults (last-writer-wins).
func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, set := range opts {
		set(&o)
	}

	return o
}
