// Package crossval: per-candidate scoring — k independent fold-fits and
// their aggregation.

package crossval

import (
	"fmt"
	"math"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/gridcv/dataset"
	"github.com/katalvlaran/gridcv/softmax"
	"github.com/katalvlaran/gridcv/stratify"
)

// Score cross-validates one candidate C over a precomputed fold assignment.
//
// For each fold i: a fresh zero-initialized estimator is fitted on every
// sample outside fold i, fold i is scored with clipped log loss, and no state
// crosses fold boundaries. Aggregation reports the mean and the sample
// standard deviation across folds.
//
// Returns: the candidate's score record, or a fatal error wrapped with the
// candidate value and fold index (ErrDegenerateFold, estimator failures,
// stratify.ErrBadFoldCount for a degenerate assignment, ErrLengthMismatch
// when the assignment does not cover ds).
//
// Complexity: k fold-fits, each O(iters·n·d·K); fan-out bounded by
// WithWorkers.
func Score(ds *dataset.Dataset, folds stratify.Folds, c float64, opts ...Option) (CandidateScore, error) {
	o := gatherOptions(opts...)

	return scoreCandidate(ds, folds, c, -1, &o)
}

// scoreCandidate is the shared engine behind Score and Search.
// candidateIndex is −1 when called outside a grid.
func scoreCandidate(ds *dataset.Dataset, folds stratify.Folds, c float64, candidateIndex int, o *Options) (CandidateScore, error) {
	// 1) Validate inputs.
	if ds == nil {
		return CandidateScore{}, ErrNilDataset
	}
	if err := validateCandidate(c); err != nil {
		return CandidateScore{}, err
	}
	k := folds.NumFolds()
	if k < 2 {
		return CandidateScore{}, fmt.Errorf("Score: %d folds: %w", k, stratify.ErrBadFoldCount)
	}
	if folds.Len() != ds.Len() {
		return CandidateScore{}, fmt.Errorf("Score: fold assignment covers %d of %d samples: %w",
			folds.Len(), ds.Len(), ErrLengthMismatch)
	}

	// 2) Degeneracy pre-check: training side of fold i misses class cl iff
	//    every sample of cl sits inside fold i. Checked before any fitting so
	//    the candidate aborts cleanly.
	if err := checkDegenerate(ds, folds, c); err != nil {
		return CandidateScore{}, err
	}

	// 3) Fold-fits: sequential by default, WaitGroup fan-out when requested.
	//    Results land in fold-indexed slots, so ordering never depends on
	//    scheduling.
	scores := make([]FoldScore, k)
	errs := make([]error, k)
	if o.Workers <= 1 {
		for i := 0; i < k; i++ {
			o.emit(ProgressEvent{Stage: StageScoring, Candidate: c, CandidateIndex: candidateIndex, Fold: i})
			scores[i], errs[i] = scoreFold(ds, folds, i, c, o)
		}
	} else {
		var wg sync.WaitGroup
		sem := make(chan struct{}, o.Workers)
		for i := 0; i < k; i++ {
			o.emit(ProgressEvent{Stage: StageScoring, Candidate: c, CandidateIndex: candidateIndex, Fold: i})
			wg.Add(1)
			sem <- struct{}{}
			go func(fold int) {
				defer wg.Done()
				defer func() { <-sem }()
				scores[fold], errs[fold] = scoreFold(ds, folds, fold, c, o)
			}(i)
		}
		wg.Wait()
	}

	// 4) First failing fold (lowest index) wins the error report.
	for i, err := range errs {
		if err != nil {
			return CandidateScore{}, fmt.Errorf("Score: candidate C=%g fold %d: %w", c, i, err)
		}
	}

	// 5) Aggregate.
	losses := make([]float64, k)
	for i, fs := range scores {
		losses[i] = fs.LogLoss
	}
	mean := stat.Mean(losses, nil)
	std := 0.0
	if k > 1 {
		std = stat.StdDev(losses, nil)
	}

	return CandidateScore{C: c, Folds: scores, Mean: mean, Std: std}, nil
}

// scoreFold runs one independent fold-fit: train on everything outside fold i,
// score fold i with clipped log loss.
func scoreFold(ds *dataset.Dataset, folds stratify.Folds, i int, c float64, o *Options) (FoldScore, error) {
	train, val := folds.TrainValidation(i)

	trainDS, err := ds.Subset(train)
	if err != nil {
		return FoldScore{}, err
	}
	valDS, err := ds.Subset(val)
	if err != nil {
		return FoldScore{}, err
	}

	model, err := softmax.Fit(trainDS,
		softmax.WithC(c),
		softmax.WithTolerance(o.Tolerance),
		softmax.WithMaxIterations(o.MaxIterations),
	)
	if err != nil {
		return FoldScore{}, err
	}

	probs, err := model.PredictProba(valDS.X())
	if err != nil {
		return FoldScore{}, err
	}
	loss, err := LogLoss(probs, valDS.Labels())
	if err != nil {
		return FoldScore{}, err
	}

	return FoldScore{Fold: i, LogLoss: loss, Converged: model.Converged()}, nil
}

// checkDegenerate returns a wrapped ErrDegenerateFold when some fold holds
// every sample of some class, leaving that class absent from the training
// side of that fold.
func checkDegenerate(ds *dataset.Dataset, folds stratify.Folds, c float64) error {
	total := ds.ClassCounts()
	labels := ds.Labels()

	for i, fold := range folds {
		inFold := make([]int, len(total))
		for _, s := range fold {
			inFold[labels[s]]++
		}
		for class, cnt := range inFold {
			if cnt > 0 && cnt == total[class] {
				return fmt.Errorf("Score: candidate C=%g fold %d class %d: %w",
					c, i, class, ErrDegenerateFold)
			}
		}
	}

	return nil
}

// validateCandidate enforces the finite-positive contract on a candidate C.
func validateCandidate(c float64) error {
	if math.IsNaN(c) || math.IsInf(c, 0) || c <= 0 {
		return fmt.Errorf("candidate C=%v: %w", c, ErrBadCandidate)
	}

	return nil
}
