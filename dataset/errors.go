// Package dataset: sentinel error set.
// All constructors and validators MUST return these sentinels (optionally
// wrapped with context via fmt.Errorf("...: %w", ErrX)) and tests MUST match
// them via errors.Is. Panics are reserved for programmer errors.

package dataset

import "errors"

var (
	// ErrNilFeatures indicates that a nil feature matrix was supplied.
	ErrNilFeatures = errors.New("dataset: feature matrix is nil")

	// ErrNoSamples indicates a feature matrix with zero rows or zero columns.
	ErrNoSamples = errors.New("dataset: feature matrix has no samples or no features")

	// ErrNaNInf signals a NaN or ±Inf feature value where finite values are required.
	ErrNaNInf = errors.New("dataset: NaN or Inf feature value encountered")

	// ErrLengthMismatch indicates that the label vector length does not match
	// the number of feature rows.
	ErrLengthMismatch = errors.New("dataset: label count does not match sample count")

	// ErrBadLabel indicates a negative class label.
	ErrBadLabel = errors.New("dataset: class label must be non-negative")

	// ErrEmptyClass indicates that some class in [0, max(label)+1) has no
	// samples, leaving a hole in the class space.
	ErrEmptyClass = errors.New("dataset: class has no samples")

	// ErrIndexOutOfRange indicates that a subset index is outside [0, Len()).
	ErrIndexOutOfRange = errors.New("dataset: sample index out of range")
)
