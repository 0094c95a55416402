// Package softmax implements multinomial logistic regression (softmax
// regression) fitted by the L-BFGS quasi-Newton method under L2
// regularization, plus probability prediction.
//
// 🚀 Model
//
//	For a sample x with true class y, the model scores each class k as
//	    s_k = W_k·x + b_k
//	and predicts p = softmax(s). Fit minimizes the mean regularized
//	cross-entropy
//	    loss = −(1/n) Σ log p_i[y_i] + (1/(2·C))·‖W‖²
//	where C is the INVERSE regularization strength (larger C = weaker
//	penalty). Bias terms are excluded from the penalty.
//
// ✨ Key properties:
//
//   - Numerically stable: softmax subtracts the row-wise max logit before
//     exponentiating; the loss uses the log-sum-exp form.
//   - Deterministic: weights start at zero unless WithInitialWeights is
//     given, and L-BFGS is deterministic, so identical inputs produce
//     identical fitted weights.
//   - Value semantics: Fit returns a read-only Model (weight matrix + bias);
//     there is no hidden mutable estimator state between calls.
//   - Bounded: the optimizer stops when the gradient inf-norm drops below
//     the tolerance (default 1e-6) or the iteration budget (default 10_000)
//     is exhausted. Budget exhaustion is non-fatal — the best iterate is
//     returned with Converged()==false and Warning() non-nil.
//
// ⚙️ Usage:
//
//	model, err := softmax.Fit(ds, softmax.WithC(10))
//	if err != nil { ... }
//	if warn := model.Warning(); warn != nil {
//	    // iteration budget exhausted; best iterate still usable
//	}
//	probs, err := model.PredictProba(holdoutX)
//
// Complexity per optimizer iteration: O(n·d·K) time for the objective and
// gradient, O(K·d) space for the parameter and gradient vectors.
//
// Errors (sentinel):
//
//	– ErrNilDataset        if a nil dataset is passed to Fit.
//	– ErrBadInitial        if WithInitialWeights shapes do not match the data.
//	– ErrOptimizeFailed    if the optimizer fails for a reason other than the
//	                       iteration budget (e.g. line-search collapse).
//	– ErrNotFitted         if PredictProba/Predict is called on a nil Model.
//	– ErrDimensionMismatch if prediction features have the wrong width.
//	– ErrNotConverged      advisory sentinel wrapped by Model.Warning().
package softmax
