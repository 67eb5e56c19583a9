// Package solo contains single-value, synchronous primitives that operate
// on Result[T]. Checks and the fluent chain are built from them.
//
// Highlights:
// - Succeed: construct Result[T]
// - Validate/AndValidate: turn a (valid, errMsg) predicate into a result
// - Switch: move from Result[In] to Result[Out]
// - Map: transform successful values
// - Tee: side effect on success
// - Finally: reduce to a concrete value via success/error handlers
// - Join: fold steps over a result, stopping at the first failure or not
package solo
