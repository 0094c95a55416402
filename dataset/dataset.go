// Package dataset implements the immutable sample set used across gridcv.
//
// Construction validates eagerly; accessors after that never fail. The
// internal feature matrix and label slice are shared, not copied — the
// read-only contract is what makes concurrent fold fits safe, so callers
// must not mutate what the accessors return.

package dataset

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Dataset pairs an n×d feature matrix with n integer class labels in [0, K).
// Immutable once constructed. The zero value is not usable; build via New.
type Dataset struct {
	x          *mat.Dense // n×d features, read-only after New
	labels     []int      // n labels in [0, numClasses)
	numClasses int        // K; inherited by subsets
	byClass    [][]int    // ascending sample indices grouped by class
}

// New builds a Dataset from an n×d feature matrix and n labels.
//
// Validation (in order):
//  1. x non-nil, non-empty, all values finite
//     (ErrNilFeatures / ErrNoSamples / ErrNaNInf).
//  2. len(labels) == n, labels ≥ 0 (ErrLengthMismatch / ErrBadLabel).
//  3. every class in [0, max+1) observed at least once (ErrEmptyClass).
//
// The matrix and slice are retained, not copied; callers must not mutate
// them afterwards.
//
// Complexity: O(n·d) time, O(n) extra space.
func New(x *mat.Dense, labels []int) (*Dataset, error) {
	if err := ValidateFeatures(x); err != nil {
		return nil, err
	}

	rows, _ := x.Dims()
	numClasses, err := ValidateLabels(labels, rows)
	if err != nil {
		return nil, err
	}

	return &Dataset{
		x:          x,
		labels:     labels,
		numClasses: numClasses,
		byClass:    groupByClass(labels, numClasses),
	}, nil
}

// groupByClass buckets sample indices by label; each bucket is ascending
// because indices are visited in order.
func groupByClass(labels []int, numClasses int) [][]int {
	byClass := make([][]int, numClasses)
	for i, y := range labels {
		byClass[y] = append(byClass[y], i)
	}

	return byClass
}

// Len returns the number of samples n.
func (d *Dataset) Len() int {
	n, _ := d.x.Dims()

	return n
}

// Dim returns the feature dimension d.
func (d *Dataset) Dim() int {
	_, cols := d.x.Dims()

	return cols
}

// NumClasses returns K, the size of the class space. For a Subset this is the
// parent's K even when some class is absent from the subset.
func (d *Dataset) NumClasses() int { return d.numClasses }

// X returns the underlying n×d feature matrix. Read-only by contract.
func (d *Dataset) X() *mat.Dense { return d.x }

// Labels returns the underlying label slice. Read-only by contract.
func (d *Dataset) Labels() []int { return d.labels }

// Label returns the class label of sample i. Panics on out-of-range i
// (programmer error; use ValidateIndices for untrusted input).
func (d *Dataset) Label(i int) int { return d.labels[i] }

// ClassCounts returns the number of samples per class, indexed by class id.
func (d *Dataset) ClassCounts() []int {
	counts := make([]int, d.numClasses)
	for _, y := range d.labels {
		counts[y]++
	}

	return counts
}

// ByClass returns sample indices grouped by class, ascending within each
// class. The outer and inner slices are fresh copies and safe to mutate.
func (d *Dataset) ByClass() [][]int {
	out := make([][]int, len(d.byClass))
	for c, idx := range d.byClass {
		out[c] = append([]int(nil), idx...)
	}

	return out
}

// Subset gathers the given sample rows into a new Dataset, preserving
// feature/label alignment and inheriting the parent's class space.
//
// Indices may arrive in any order; rows appear in the returned Dataset in the
// given order. Indices are validated but deliberately NOT required to cover
// every class — a training fold may legitimately miss one, and the caller
// (crossval) decides whether that is fatal.
//
// Errors: ErrNoSamples on an empty index list, ErrIndexOutOfRange.
// Complexity: O(m·d) for m indices.
func (d *Dataset) Subset(indices []int) (*Dataset, error) {
	if len(indices) == 0 {
		return nil, fmt.Errorf("Subset: empty index list: %w", ErrNoSamples)
	}
	if err := ValidateIndices(indices, d.Len()); err != nil {
		return nil, fmt.Errorf("Subset: %w", err)
	}

	_, cols := d.x.Dims()
	x := mat.NewDense(len(indices), cols, nil)
	labels := make([]int, len(indices))
	for row, idx := range indices {
		x.SetRow(row, d.x.RawRowView(idx))
		labels[row] = d.labels[idx]
	}

	return &Dataset{
		x:          x,
		labels:     labels,
		numClasses: d.numClasses, // class space travels with the subset
		byClass:    groupByClass(labels, d.numClasses),
	}, nil
}

// ObservedClasses returns the ascending list of class ids that actually occur
// in this Dataset. Equal to [0..K) for a Dataset built via New; may be a
// strict subset for a Subset.
func (d *Dataset) ObservedClasses() []int {
	observed := make([]int, 0, d.numClasses)
	for c, idx := range d.byClass {
		if len(idx) > 0 {
			observed = append(observed, c)
		}
	}
	sort.Ints(observed) // byClass is already ordered; keep the guarantee explicit

	return observed
}
