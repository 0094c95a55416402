// Package gridcv is your in-memory toolkit for choosing a regularization
// strength for multinomial (softmax) logistic regression via cross-validated
// grid search, then refitting and evaluating the final model.
//
// 🚀 What is gridcv?
//
//	A small, deterministic library that brings together:
//		• Dataset primitives: an immutable feature matrix + integer labels
//		• Stratified k-fold splitting that preserves per-class proportions
//		• A softmax estimator fitted by L-BFGS under L2 regularization
//		• A cross-validated grid-search controller with a full score table
//		• A pure log-loss evaluator for any held-out data
//
// ✨ Why choose gridcv?
//
//   - Reproducible by construction – fixed seeds, zero-initialized fits,
//     deterministic tie-breaks; two identical runs give identical answers
//   - No hidden state – an estimator is a value (weight matrix + bias),
//     created by Fit and read-only afterwards
//   - Honest diagnostics – every (candidate, fold) score is retained,
//     convergence trouble surfaces as warnings, never silent
//   - Built on gonum – dense matrices and a quasi-Newton optimizer,
//     not hand-rolled numerics
//
// Everything is organized under four subpackages:
//
//	dataset/  — sample-set primitives shared by all other packages
//	stratify/ — stratified k-fold partitioning
//	softmax/  — multinomial logistic-regression estimator (fit + predict)
//	crossval/ — per-candidate CV scoring, grid search, log-loss evaluation
//
// Quick sketch:
//
//	ds, _ := dataset.New(X, labels)
//	res, _ := crossval.Search(ds, []float64{0.01, 0.1, 1, 10},
//	    crossval.WithFolds(5), crossval.WithSeed(42))
//	holdoutLoss, _ := crossval.Evaluate(res.Model, holdout)
//
// Dive into each package's doc.go for contracts, invariants and complexity.
package gridcv
