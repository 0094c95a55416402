// Package crossval: sentinel errors, score records, progress hooks, options.

package crossval

import (
	"errors"
	"math"

	"github.com/katalvlaran/gridcv/softmax"
)

// Sentinel errors returned by Score, Search, LogLoss and Evaluate.
var (
	// ErrNilDataset indicates that a nil *dataset.Dataset was supplied.
	ErrNilDataset = errors.New("crossval: dataset is nil")

	// ErrNilModel indicates that a nil fitted model was passed to Evaluate.
	ErrNilModel = errors.New("crossval: model is nil")

	// ErrNilProbabilities indicates that a nil probability matrix was passed
	// to LogLoss.
	ErrNilProbabilities = errors.New("crossval: probability matrix is nil")

	// ErrEmptyGrid indicates that Search received an empty candidate grid.
	ErrEmptyGrid = errors.New("crossval: candidate grid is empty")

	// ErrBadCandidate indicates a candidate C that is not finite and positive.
	ErrBadCandidate = errors.New("crossval: candidate C must be finite and positive")

	// ErrDegenerateFold indicates that a training fold is missing a class
	// entirely, making the multinomial fit ill-posed. Fatal for the
	// candidate being scored.
	ErrDegenerateFold = errors.New("crossval: training fold is missing a class")

	// ErrLengthMismatch indicates that a fold assignment or label vector does
	// not match the dataset/probability dimensions.
	ErrLengthMismatch = errors.New("crossval: length mismatch")
)

// ClipEpsilon bounds predicted probabilities away from 0 and 1 inside
// LogLoss, so a perfectly confident wrong prediction yields a large finite
// loss instead of +Inf.
const ClipEpsilon = 1e-15

// Defaults — single source of truth for zero-value behavior.
const (
	// DefaultFolds is the fold count used by Search.
	DefaultFolds = 5

	// DefaultSeed seeds the stratified split inside Search.
	DefaultSeed int64 = 1

	// DefaultWorkers keeps fold-fits sequential unless WithWorkers raises it.
	DefaultWorkers = 1
)

// Internal panic messages for option constructors (programmer errors).
const (
	panicBadFolds   = "crossval: WithFolds: fold count must be at least 2"
	panicBadWorkers = "crossval: WithWorkers: worker count must be at least 1"
	panicBadTol     = "crossval: WithTolerance: tolerance must be finite and positive"
	panicBadMaxIter = "crossval: WithMaxIterations: budget must be at least 1"
)

// Stage identifies a grid-search phase, in execution order.
type Stage int

const (
	// StageScoring: a candidate (and possibly a specific fold) is being scored.
	StageScoring Stage = iota

	// StageAggregating: the per-candidate score table is complete.
	StageAggregating

	// StageSelecting: the minimum-mean candidate is being chosen.
	StageSelecting

	// StageRefitting: the winner is being refitted on the full dataset.
	StageRefitting

	// StageDone: the Result is fully assembled.
	StageDone
)

// String returns the lowercase stage name.
func (s Stage) String() string {
	switch s {
	case StageScoring:
		return "scoring"
	case StageAggregating:
		return "aggregating"
	case StageSelecting:
		return "selecting"
	case StageRefitting:
		return "refitting"
	case StageDone:
		return "done"
	default:
		return "unknown"
	}
}

// ProgressEvent reports a grid-search transition to a WithProgress hook.
// CandidateIndex and Fold are −1 when not applicable to the stage.
type ProgressEvent struct {
	Stage          Stage
	Candidate      float64
	CandidateIndex int
	Fold           int
}

// ProgressFunc observes ProgressEvents. Hooks are invoked synchronously from
// the dispatching goroutine, never concurrently.
type ProgressFunc func(ProgressEvent)

// FoldScore is the validation log loss of one fold-fit for one candidate.
type FoldScore struct {
	Fold      int     // fold index held out as validation
	LogLoss   float64 // clipped mean negative log-probability
	Converged bool    // false when the fit hit its iteration budget
}

// CandidateScore aggregates one candidate's per-fold validation losses.
type CandidateScore struct {
	C     float64     // the candidate (inverse regularization strength)
	Folds []FoldScore // one entry per fold, fold-indexed
	Mean  float64     // mean validation log loss across folds
	Std   float64     // sample standard deviation across folds (0 for k=1)
}

// PerFold returns the per-fold log losses in fold order.
func (cs CandidateScore) PerFold() []float64 {
	losses := make([]float64, len(cs.Folds))
	for i, f := range cs.Folds {
		losses[i] = f.LogLoss
	}

	return losses
}

// Result is the terminal state of a grid search: the winner, the full score
// table (never truncated — kept for diagnostics), the refit model, and any
// non-fatal convergence warnings gathered along the way.
type Result struct {
	BestC     float64
	BestIndex int
	Scores    []CandidateScore
	Model     *softmax.Model
	Warnings  []string
}

// Options configures Score and Search.
//
// Folds / Seed    – stratified-split shape and determinism (Search only).
// Workers         – fold-fit fan-out; 1 means sequential.
// Tolerance / MaxIterations – passed through to every estimator fit.
// Progress        – optional stage-transition hook.
type Options struct {
	Folds         int
	Seed          int64
	Workers       int
	Tolerance     float64
	MaxIterations int
	Progress      ProgressFunc
}

// Option represents a functional option for configuring Score and Search.
type Option func(*Options)

// WithFolds sets the fold count k used by Search's stratified split.
// Panics on k < 2 (programmer error).
func WithFolds(k int) Option {
	if k < 2 {
		panic(panicBadFolds)
	}

	return func(o *Options) { o.Folds = k }
}

// WithSeed sets the seed for Search's stratified split.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithWorkers bounds the number of concurrent fold-fits.
// Panics on n < 1 (programmer error).
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicBadWorkers)
	}

	return func(o *Options) { o.Workers = n }
}

// WithTolerance sets the estimator convergence threshold for every fit.
// Panics on nonsensical values (programmer error).
func WithTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
		panic(panicBadTol)
	}

	return func(o *Options) { o.Tolerance = eps }
}

// WithMaxIterations sets the estimator iteration budget for every fit.
// Panics on budgets below 1 (programmer error).
func WithMaxIterations(n int) Option {
	if n < 1 {
		panic(panicBadMaxIter)
	}

	return func(o *Options) { o.MaxIterations = n }
}

// WithProgress attaches a stage-transition hook. A nil hook is ignored.
func WithProgress(hook ProgressFunc) Option {
	return func(o *Options) { o.Progress = hook }
}

// DefaultOptions returns the documented defaults: 5 folds, seed 1, sequential
// fold-fits, and the softmax package's tolerance and iteration budget.
func DefaultOptions() Options {
	return Options{
		Folds:         DefaultFolds,
		Seed:          DefaultSeed,
		Workers:       DefaultWorkers,
		Tolerance:     softmax.DefaultTolerance,
		MaxIterations: softmax.DefaultMaxIterations,
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

// emit invokes the progress hook when one is attached.
func (o *Options) emit(ev ProgressEvent) {
	if o.Progress != nil {
		o.Progress(ev)
	}
}
