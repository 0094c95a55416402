// Package dataset: single, canonical source of truth for input validation.
// Downstream packages delegate their shape/label/index checks here instead of
// duplicating guard logic. All checks are pure, deterministic and return
// wrapped sentinel errors so call sites can match with errors.Is.

package dataset

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// validatorErrorf wraps an underlying sentinel with the given validator tag,
// keeping error labeling consistent across the package.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateFeatures ensures x is non-nil, non-empty and fully finite.
//
// Errors: ErrNilFeatures, ErrNoSamples, ErrNaNInf (with row/col context).
// Complexity: O(n·d).
func ValidateFeatures(x *mat.Dense) error {
	if x == nil {
		return validatorErrorf("ValidateFeatures", ErrNilFeatures)
	}

	rows, cols := x.Dims()
	if rows == 0 || cols == 0 {
		return validatorErrorf("ValidateFeatures", ErrNoSamples)
	}

	// Scan via raw row views to avoid per-element bounds checks in At.
	for i := 0; i < rows; i++ {
		row := x.RawRowView(i)
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("ValidateFeatures: row %d col %d: %w", i, j, ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateLabels ensures labels has exactly n entries, all non-negative, and
// that the class space [0, max+1) has no empty class.
//
// Returns the inferred number of classes (max label + 1) on success.
// Errors: ErrLengthMismatch, ErrBadLabel, ErrEmptyClass.
// Complexity: O(n).
func ValidateLabels(labels []int, n int) (int, error) {
	if len(labels) != n {
		return 0, fmt.Errorf("ValidateLabels: got %d labels for %d samples: %w",
			len(labels), n, ErrLengthMismatch)
	}

	maxLabel := -1
	for i, y := range labels {
		if y < 0 {
			return 0, fmt.Errorf("ValidateLabels: sample %d label %d: %w", i, y, ErrBadLabel)
		}
		if y > maxLabel {
			maxLabel = y
		}
	}

	numClasses := maxLabel + 1
	counts := make([]int, numClasses)
	for _, y := range labels {
		counts[y]++
	}
	for c, cnt := range counts {
		if cnt == 0 {
			return 0, fmt.Errorf("ValidateLabels: class %d: %w", c, ErrEmptyClass)
		}
	}

	return numClasses, nil
}

// ValidateIndices ensures every index lies in [0, n). Duplicates are allowed;
// callers that need disjointness enforce it themselves.
//
// Errors: ErrIndexOutOfRange (with offending index).
// Complexity: O(len(indices)).
func ValidateIndices(indices []int, n int) error {
	for _, idx := range indices {
		if idx < 0 || idx >= n {
			return fmt.Errorf("ValidateIndices: index %d outside [0,%d): %w", idx, n, ErrIndexOutOfRange)
		}
	}

	return nil
}
