package crossval_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridcv/crossval"
	"github.com/katalvlaran/gridcv/softmax"
	"github.com/katalvlaran/gridcv/stratify"
)

// TestSearch_Validation covers the fatal input checks.
func TestSearch_Validation(t *testing.T) {
	ds := clusterSet(t, 10, centers2D, 0.8, 41)

	_, err := crossval.Search(nil, []float64{1})
	assert.ErrorIs(t, err, crossval.ErrNilDataset)

	_, err = crossval.Search(ds, nil)
	assert.ErrorIs(t, err, crossval.ErrEmptyGrid)

	_, err = crossval.Search(ds, []float64{1, -2, 3})
	assert.ErrorIs(t, err, crossval.ErrBadCandidate)
	assert.ErrorContains(t, err, "grid[1]", "error must carry the grid index")

	// 10 samples per class cannot be stratified 12 ways.
	_, err = crossval.Search(ds, []float64{1}, crossval.WithFolds(12))
	assert.ErrorIs(t, err, stratify.ErrInsufficientSamples)
}

// TestSearch_SingleCandidate checks the boundary case: a one-element grid
// degenerates to a plain cross-validated fit-and-refit.
func TestSearch_SingleCandidate(t *testing.T) {
	ds := clusterSet(t, 15, centers2D, 1.0, 42)

	res, err := crossval.Search(ds, []float64{5}, crossval.WithFolds(3), crossval.WithSeed(1))
	require.NoError(t, err)

	assert.Equal(t, 5.0, res.BestC)
	assert.Equal(t, 0, res.BestIndex)
	require.Len(t, res.Scores, 1)
	assert.Len(t, res.Scores[0].Folds, 3)
	require.NotNil(t, res.Model)
	assert.True(t, res.Model.Converged())
}

// TestSearch_Deterministic runs the same search twice and demands identical
// selection, score table and refit weights.
func TestSearch_Deterministic(t *testing.T) {
	ds := clusterSet(t, 15, centers2D, 1.0, 43)
	grid := []float64{0.01, 1, 100}

	a, err := crossval.Search(ds, grid, crossval.WithFolds(3), crossval.WithSeed(7))
	require.NoError(t, err)
	b, err := crossval.Search(ds, grid, crossval.WithFolds(3), crossval.WithSeed(7))
	require.NoError(t, err)

	assert.Equal(t, a.BestC, b.BestC)
	assert.Equal(t, a.BestIndex, b.BestIndex)
	assert.Equal(t, a.Scores, b.Scores)
	assert.Equal(t, a.Model.Weights().RawMatrix().Data, b.Model.Weights().RawMatrix().Data)
	assert.Equal(t, a.Model.Bias(), b.Model.Bias())
}

// TestSearch_RefitIdempotence verifies that the controller's refit equals a
// direct fit on the full set with the selected candidate.
func TestSearch_RefitIdempotence(t *testing.T) {
	ds := clusterSet(t, 15, centers2D, 1.0, 44)

	res, err := crossval.Search(ds, []float64{0.1, 1, 10}, crossval.WithFolds(3), crossval.WithSeed(2))
	require.NoError(t, err)

	direct, err := softmax.Fit(ds, softmax.WithC(res.BestC))
	require.NoError(t, err)

	assert.Equal(t, direct.Weights().RawMatrix().Data, res.Model.Weights().RawMatrix().Data,
		"refit must match a direct full-set fit")
	assert.Equal(t, direct.Bias(), res.Model.Bias())
}

// TestSearch_TieBreaksToEarliest scores the same candidate twice; identical
// means must select the earlier grid position.
func TestSearch_TieBreaksToEarliest(t *testing.T) {
	ds := clusterSet(t, 12, centers2D, 1.0, 45)

	res, err := crossval.Search(ds, []float64{1, 1}, crossval.WithFolds(3), crossval.WithSeed(3))
	require.NoError(t, err)

	require.Len(t, res.Scores, 2)
	assert.Equal(t, res.Scores[0].Mean, res.Scores[1].Mean, "identical candidates must score identically")
	assert.Equal(t, 0, res.BestIndex, "tie must break toward the earliest candidate")
}

// TestSearch_CollectsConvergenceWarnings starves the optimizer and expects
// non-fatal warnings plus a usable result.
func TestSearch_CollectsConvergenceWarnings(t *testing.T) {
	ds := clusterSet(t, 15, centers2D, 1.5, 46)

	res, err := crossval.Search(ds, []float64{1},
		crossval.WithFolds(3),
		crossval.WithMaxIterations(2),
	)
	require.NoError(t, err, "budget exhaustion must not abort the search")

	assert.NotEmpty(t, res.Warnings, "starved fits must be reported")
	require.NotNil(t, res.Model)
	assert.False(t, res.Model.Converged())
}

// TestSearch_ProgressStages observes the state machine through the hook:
// scoring first, then aggregating, selecting, refitting, done — in order.
func TestSearch_ProgressStages(t *testing.T) {
	ds := clusterSet(t, 12, centers2D, 1.0, 47)

	var stages []crossval.Stage
	_, err := crossval.Search(ds, []float64{0.1, 10},
		crossval.WithFolds(3),
		crossval.WithProgress(func(ev crossval.ProgressEvent) {
			stages = append(stages, ev.Stage)
		}),
	)
	require.NoError(t, err)
	require.NotEmpty(t, stages)

	assert.Equal(t, crossval.StageScoring, stages[0])
	assert.Equal(t, crossval.StageDone, stages[len(stages)-1])
	assert.Equal(t, "done", crossval.StageDone.String())

	idx := func(want crossval.Stage) int {
		for i, s := range stages {
			if s == want {
				return i
			}
		}

		return -1
	}
	agg, sel, refit, done := idx(crossval.StageAggregating), idx(crossval.StageSelecting),
		idx(crossval.StageRefitting), idx(crossval.StageDone)
	assert.True(t, agg < sel && sel < refit && refit < done,
		"stages must advance in order: agg=%d sel=%d refit=%d done=%d", agg, sel, refit, done)
}

// TestSearch_Scenario reproduces the reference scenario: 150 samples, 3
// classes, 4 features; 15 held out via a 10-way stratified split (5 per
// class); an 8-value grid 1e-3…1e4 scored with 5-fold CV on the remaining
// 135. The winner must beat both grid endpoints — the qualitative U-shape.
func TestSearch_Scenario(t *testing.T) {
	full := clusterSet(t, 50, centers4D, 1.0, 48)

	holdoutFolds, err := stratify.Split(full, 10, 42)
	require.NoError(t, err)
	trainIdx, testIdx := holdoutFolds.TrainValidation(0)

	train, err := full.Subset(trainIdx)
	require.NoError(t, err)
	holdout, err := full.Subset(testIdx)
	require.NoError(t, err)

	require.Equal(t, 135, train.Len())
	require.Equal(t, 15, holdout.Len())
	require.Equal(t, []int{5, 5, 5}, holdout.ClassCounts(), "10-way stratified holdout is 5 per class")

	grid := []float64{1e-3, 1e-2, 1e-1, 1, 1e1, 1e2, 1e3, 1e4}
	res, err := crossval.Search(train, grid, crossval.WithFolds(5), crossval.WithSeed(99))
	require.NoError(t, err)
	require.Len(t, res.Scores, len(grid))

	best := res.Scores[res.BestIndex]
	assert.Less(t, best.Mean, res.Scores[0].Mean,
		"winner must beat the strongest regularization endpoint")
	assert.Less(t, best.Mean, res.Scores[len(grid)-1].Mean,
		"winner must beat the weakest regularization endpoint")
	assert.Greater(t, res.BestIndex, 0, "winner should sit inside the grid")
	assert.Less(t, res.BestIndex, len(grid)-1, "winner should sit inside the grid")

	// The refit model generalizes to the untouched holdout.
	loss, err := crossval.Evaluate(res.Model, holdout)
	require.NoError(t, err)
	assert.Positive(t, loss)
	assert.False(t, math.IsNaN(loss) || math.IsInf(loss, 0))
	assert.Less(t, loss, 2.0, "holdout loss should stay in a sane range")
}
