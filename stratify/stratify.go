// Package stratify implements stratified k-fold partitioning.
//
// See doc.go for the algorithm outline and guarantees; the numbered steps
// below mirror it.

package stratify

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/katalvlaran/gridcv/dataset"
)

// Split partitions ds into k disjoint folds preserving per-class proportions.
//
// The assignment is a pure function of (ds, k, seed): one rand source seeded
// with seed shuffles each class's indices in ascending class order, then each
// class is dealt round-robin across the folds.
//
// Returns:
//
//   - Folds: k ascending-sorted, disjoint index sets covering all samples.
//   - err:   ErrNilDataset, ErrBadFoldCount, or ErrInsufficientSamples
//     (wrapped with the offending class id and its sample count).
//
// Complexity: O(n log n) time, O(n) space.
func Split(ds *dataset.Dataset, k int, seed int64) (Folds, error) {
	// 1) Validate inputs.
	if ds == nil {
		return nil, ErrNilDataset
	}
	if k < 2 {
		return nil, fmt.Errorf("Split: k=%d: %w", k, ErrBadFoldCount)
	}

	// 2) Group indices by class and fail fast if any class cannot be spread
	//    across k folds.
	byClass := ds.ByClass()
	for c, idx := range byClass {
		if len(idx) < k {
			return nil, fmt.Errorf("Split: class %d has %d samples, need at least %d: %w",
				c, len(idx), k, ErrInsufficientSamples)
		}
	}

	// 3) Shuffle each class with one shared deterministic source, consumed in
	//    ascending class order so the draw sequence is reproducible.
	rng := rand.New(rand.NewSource(seed))
	folds := make(Folds, k)

	// 4) Deal each class round-robin. The rotation offset advances by the
	//    previous class's size so remainder samples rotate across folds
	//    instead of always landing on fold 0.
	offset := 0
	for _, idx := range byClass {
		rng.Shuffle(len(idx), func(i, j int) { idx[i], idx[j] = idx[j], idx[i] })

		for j, sample := range idx {
			fold := (offset + j) % k
			folds[fold] = append(folds[fold], sample)
		}
		offset = (offset + len(idx)) % k
	}

	// 5) Sort each fold ascending for stable downstream iteration.
	for i := range folds {
		sortInts(folds[i])
	}

	return folds, nil
}

// sortInts sorts s ascending in place.
func sortInts(s []int) { sort.Ints(s) }
