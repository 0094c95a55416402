// Package crossval scores regularization candidates for softmax regression by
// stratified k-fold cross-validation, runs the grid search that selects the
// best candidate and refits it, and evaluates fitted models with log loss.
//
// 🚀 Pipeline
//
//	stratify.Split ─▶ Score (one candidate, k fold-fits)
//	                   └▶ Search (every candidate, then select + refit)
//	                        └▶ Evaluate (log loss on any held-out data)
//
// Search walks the stages Scoring → Aggregating → Selecting → Refitting →
// Done; attach WithProgress to observe the transitions. The full score table
// is retained in the Result regardless of which candidate wins.
//
// Selection rule: minimum mean validation log loss across folds; ties break
// toward the earliest candidate in grid order, so a run is fully
// deterministic for fixed (dataset, grid, folds, seed).
//
// Concurrency: fold-fits within one candidate are independent pure
// computations over disjoint weight matrices and a read-only dataset, so
// WithWorkers(n) fans them out across goroutines. Results land in
// fold-indexed slots — parallel and sequential runs produce byte-identical
// scores. The default is sequential (workers=1).
//
// Error policy (fatal, wrapped with candidate value and fold index):
//
//	– ErrDegenerateFold  a training fold misses a class entirely, making the
//	                     multinomial fit ill-posed; aborts that candidate.
//	– ErrBadCandidate    a candidate C is not finite and positive.
//	– ErrEmptyGrid       Search received no candidates.
//
// Optimizer budget exhaustion is NOT fatal: the fold still scores with the
// best iterate and the incident is recorded in Result.Warnings.
package crossval
