// Package dataset provides the sample-set primitives shared by every other
// gridcv package: an immutable pairing of a dense feature matrix with integer
// class labels, plus centralized validators.
//
// A Dataset is constructed once via New, validated eagerly, and never mutated
// afterwards. All downstream packages (stratify, softmax, crossval) treat it
// as read-only shared state, which is what makes fold fits safe to run
// concurrently without locking.
//
// Conventions:
//
//   - Features live in a gonum *mat.Dense of shape n×d (one row per sample).
//   - Labels are integers in [0, K); K is inferred as max(label)+1 at
//     construction and every class in that range must be observed at least
//     once (a gap would make multinomial fitting ill-posed from the start).
//   - Subset carries the parent's class space: a subset missing some class
//     still reports the parent's NumClasses, so estimators fitted on folds
//     keep a consistent weight-matrix shape.
//
// Errors (sentinel):
//
//	– ErrNilFeatures     if the feature matrix is nil.
//	– ErrNoSamples       if the feature matrix has zero rows or columns.
//	– ErrNaNInf          if any feature value is NaN or ±Inf.
//	– ErrLengthMismatch  if len(labels) != rows(X).
//	– ErrBadLabel        if a label is negative.
//	– ErrEmptyClass      if some class in [0, max+1) has no samples.
//	– ErrIndexOutOfRange if a subset index is outside [0, Len()).
package dataset
