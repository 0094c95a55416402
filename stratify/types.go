// Package stratify: fold types and sentinel errors.

package stratify

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Split.
var (
	// ErrNilDataset indicates that a nil *dataset.Dataset was passed to Split.
	ErrNilDataset = errors.New("stratify: dataset is nil")

	// ErrBadFoldCount indicates that the requested fold count is below 2.
	ErrBadFoldCount = errors.New("stratify: fold count must be at least 2")

	// ErrInsufficientSamples indicates that some class has fewer samples than
	// the requested fold count, so class proportions cannot be preserved.
	ErrInsufficientSamples = errors.New("stratify: class has fewer samples than folds")
)

// panicFoldIndex is the stable message used when a fold index is out of range
// (programmer error; fold indices are produced by this package).
const panicFoldIndex = "stratify: fold index out of range"

// Folds is a stratified k-fold assignment: k disjoint, ascending-sorted index
// sets whose union covers every sample of the source dataset.
//
// Fold i plays two roles downstream: held out as the validation set, and
// merged with the remaining k−1 folds as the training set.
type Folds [][]int

// NumFolds returns k.
func (f Folds) NumFolds() int { return len(f) }

// Len returns the total number of assigned samples across all folds.
func (f Folds) Len() int {
	total := 0
	for _, fold := range f {
		total += len(fold)
	}

	return total
}

// Validation returns fold i's index set (the held-out samples).
// Panics with a stable message on out-of-range i (programmer error).
func (f Folds) Validation(i int) []int {
	if i < 0 || i >= len(f) {
		panic(panicFoldIndex)
	}

	return f[i]
}

// TrainValidation splits the assignment around fold i: train is the ascending
// concatenation of every fold except i, val is fold i itself. Both slices are
// fresh and safe to mutate. Panics on out-of-range i (programmer error).
func (f Folds) TrainValidation(i int) (train, val []int) {
	if i < 0 || i >= len(f) {
		panic(panicFoldIndex)
	}

	val = append([]int(nil), f[i]...)
	train = make([]int, 0, f.Len()-len(f[i]))
	for j, fold := range f {
		if j == i {
			continue
		}
		train = append(train, fold...)
	}
	// Per-fold slices are ascending but interleaved across folds; a merge
	// keeps training-row order stable for deterministic fits.
	sortInts(train)

	return train, val
}

// Assignment returns the inverse mapping: a slice of length Len() where entry
// s is the fold id of sample s.
func (f Folds) Assignment() []int {
	assignment := make([]int, f.Len())
	for foldID, fold := range f {
		for _, s := range fold {
			assignment[s] = foldID
		}
	}

	return assignment
}

// String renders a compact per-fold size summary, e.g. "5 folds [30 30 30 30 30]".
func (f Folds) String() string {
	sizes := make([]int, len(f))
	for i, fold := range f {
		sizes[i] = len(fold)
	}

	return fmt.Sprintf("%d folds %v", len(f), sizes)
}
