// Package crossval: the grid-search controller.
//
// Search is a straight-line rendition of the state machine
// Idle → Scoring(candidate) → Aggregating → Selecting → Refitting → Done;
// each transition is observable through WithProgress.

package crossval

import (
	"fmt"

	"github.com/katalvlaran/gridcv/dataset"
	"github.com/katalvlaran/gridcv/softmax"
	"github.com/katalvlaran/gridcv/stratify"
)

// Search cross-validates every candidate in grid order, selects the candidate
// with minimum mean validation log loss (ties break toward the earliest grid
// position), and refits a fresh estimator on the full dataset with the
// winning C.
//
// The stratified split is computed once from (ds, WithFolds, WithSeed) and
// shared by all candidates, so score differences reflect the candidates
// alone. The complete score table survives in the Result regardless of the
// winner; optimizer-budget incidents are collected into Result.Warnings and
// never abort the search.
//
// Returns:
//
//   - *Result: winner, full table, refit model, warnings.
//   - err: ErrNilDataset, ErrEmptyGrid, ErrBadCandidate (wrapped with the
//     grid index), stratify errors from the split, or any fatal scoring/refit
//     error (wrapped with candidate value and fold index).
//
// Determinism: identical (ds, grid, options) produce an identical Result,
// including the refit weights.
//
// Complexity: |grid|·k fold-fits plus one full refit.
func Search(ds *dataset.Dataset, grid []float64, opts ...Option) (*Result, error) {
	// 1) Validate inputs and resolve options.
	if ds == nil {
		return nil, ErrNilDataset
	}
	if len(grid) == 0 {
		return nil, ErrEmptyGrid
	}
	for i, c := range grid {
		if err := validateCandidate(c); err != nil {
			return nil, fmt.Errorf("Search: grid[%d]: %w", i, err)
		}
	}
	o := gatherOptions(opts...)

	// 2) One split for the whole search.
	folds, err := stratify.Split(ds, o.Folds, o.Seed)
	if err != nil {
		return nil, fmt.Errorf("Search: %w", err)
	}

	// 3) Score every candidate in grid order, accumulating the table and any
	//    convergence warnings.
	scores := make([]CandidateScore, len(grid))
	var warnings []string
	for idx, c := range grid {
		o.emit(ProgressEvent{Stage: StageScoring, Candidate: c, CandidateIndex: idx, Fold: -1})

		cs, err := scoreCandidate(ds, folds, c, idx, &o)
		if err != nil {
			return nil, fmt.Errorf("Search: %w", err)
		}
		scores[idx] = cs

		for _, fs := range cs.Folds {
			if !fs.Converged {
				warnings = append(warnings,
					fmt.Sprintf("C=%g fold %d: %v", c, fs.Fold, softmax.ErrNotConverged))
			}
		}
	}
	o.emit(ProgressEvent{Stage: StageAggregating, CandidateIndex: -1, Fold: -1})

	// 4) Select: minimum mean, strict < keeps the earliest candidate on ties.
	o.emit(ProgressEvent{Stage: StageSelecting, CandidateIndex: -1, Fold: -1})
	best := 0
	for i := 1; i < len(scores); i++ {
		if scores[i].Mean < scores[best].Mean {
			best = i
		}
	}

	// 5) Refit on the entire dataset with the winning candidate.
	o.emit(ProgressEvent{Stage: StageRefitting, Candidate: grid[best], CandidateIndex: best, Fold: -1})
	model, err := softmax.Fit(ds,
		softmax.WithC(grid[best]),
		softmax.WithTolerance(o.Tolerance),
		softmax.WithMaxIterations(o.MaxIterations),
	)
	if err != nil {
		return nil, fmt.Errorf("Search: refit C=%g: %w", grid[best], err)
	}
	if !model.Converged() {
		warnings = append(warnings,
			fmt.Sprintf("refit C=%g: %v", grid[best], softmax.ErrNotConverged))
	}

	o.emit(ProgressEvent{Stage: StageDone, Candidate: grid[best], CandidateIndex: best, Fold: -1})

	return &Result{
		BestC:     grid[best],
		BestIndex: best,
		Scores:    scores,
		Model:     model,
		Warnings:  warnings,
	}, nil
}
