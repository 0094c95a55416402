// Package stratify partitions a labeled dataset into k disjoint folds that
// preserve per-class proportions, for use in cross-validation.
//
// Algorithm outline:
//
//  1. Group sample indices by class label (ascending within each class).
//  2. Shuffle each class's indices with a single deterministic source seeded
//     by the caller; classes are consumed in ascending class order, so the
//     whole assignment is a pure function of (dataset, k, seed).
//  3. Deal each class's shuffled indices round-robin across the k folds.
//     The rotation offset advances from class to class by the size of the
//     previous class, so the ⌈n_c/k⌉ "extra" samples do not pile up on
//     fold 0 and total fold sizes stay within 1 of each other.
//  4. Sort each fold ascending for stable downstream iteration.
//
// Guarantees (tested):
//
//   - Folds are pairwise disjoint and their union is the full index set.
//   - For every class, per-fold counts differ by at most 1.
//   - Identical (dataset, k, seed) inputs yield identical folds.
//
// Complexity: O(n log n) time (the per-fold sorts dominate), O(n) space.
//
// Errors (sentinel):
//
//	– ErrNilDataset          if the dataset is nil.
//	– ErrBadFoldCount        if k < 2.
//	– ErrInsufficientSamples if some class has fewer than k samples
//	                         (stratification is impossible).
package stratify
